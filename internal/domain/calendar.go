package domain

import "time"

// EventType enumerates calendar event kinds.
type EventType string

const (
	EventTypeCourt    EventType = "COURT"
	EventTypeMeeting  EventType = "MEETING"
	EventTypeDeadline EventType = "DEADLINE"
	EventTypeOther    EventType = "OTHER"
)

// CalendarEvent is a scheduled firm event, optionally linked to a case
// or client.
type CalendarEvent struct {
	ID          string
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Type        EventType
	CaseID      *string
	ClientID    *string
	Attendees   []string
	Location    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
