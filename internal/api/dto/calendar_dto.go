package dto

import (
	"time"

	"github.com/firmdesk/practice-service/internal/domain"
)

// CalendarEventRequest payload for scheduling or updating an event.
type CalendarEventRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Start       time.Time        `json:"start"`
	End         time.Time        `json:"end"`
	Type        domain.EventType `json:"type"`
	CaseID      *string          `json:"case_id"`
	ClientID    *string          `json:"client_id"`
	Attendees   []string         `json:"attendees"`
	Location    string           `json:"location"`
}

// ToDomain converts the request into a domain calendar event.
func (r CalendarEventRequest) ToDomain() *domain.CalendarEvent {
	return &domain.CalendarEvent{
		Title:       r.Title,
		Description: r.Description,
		Start:       r.Start,
		End:         r.End,
		Type:        r.Type,
		CaseID:      r.CaseID,
		ClientID:    r.ClientID,
		Attendees:   r.Attendees,
		Location:    r.Location,
	}
}

// CalendarEventResponse response.
type CalendarEventResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Start       time.Time        `json:"start"`
	End         time.Time        `json:"end"`
	Type        domain.EventType `json:"type"`
	CaseID      *string          `json:"case_id,omitempty"`
	ClientID    *string          `json:"client_id,omitempty"`
	Attendees   []string         `json:"attendees"`
	Location    string           `json:"location"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// NewCalendarEventResponse maps a domain calendar event.
func NewCalendarEventResponse(event *domain.CalendarEvent) CalendarEventResponse {
	return CalendarEventResponse{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		Start:       event.Start,
		End:         event.End,
		Type:        event.Type,
		CaseID:      event.CaseID,
		ClientID:    event.ClientID,
		Attendees:   event.Attendees,
		Location:    event.Location,
		CreatedAt:   event.CreatedAt,
		UpdatedAt:   event.UpdatedAt,
	}
}
