package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/firmdesk/practice-service/internal/domain"
	"github.com/firmdesk/practice-service/internal/events"
	"github.com/firmdesk/practice-service/internal/repository"
	apperrors "github.com/firmdesk/practice-service/pkg/util"
)

// CalendarService coordinates firm calendar workflows.
type CalendarService struct {
	eventsRepo repository.CalendarEventRepository
	dispatcher events.Dispatcher
}

// NewCalendarService constructs the service.
func NewCalendarService(eventsRepo repository.CalendarEventRepository, dispatcher events.Dispatcher) *CalendarService {
	return &CalendarService{eventsRepo: eventsRepo, dispatcher: dispatcher}
}

// ScheduleEvent validates and stores a new calendar event.
func (s *CalendarService) ScheduleEvent(ctx context.Context, event *domain.CalendarEvent, actorID string) error {
	if strings.TrimSpace(event.Title) == "" {
		return apperrors.NewValidationError("event title required", nil)
	}
	if !event.End.After(event.Start) {
		return apperrors.NewValidationError("event end must be after start", nil)
	}
	if event.Type == "" {
		event.Type = domain.EventTypeOther
	}
	if err := s.eventsRepo.Create(ctx, event); err != nil {
		return err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventCalendarEventScheduled,
			EntityID:  event.ID,
			ActorID:   actorID,
			Timestamp: time.Now(),
			Payload: events.CalendarEventScheduledPayload{
				Title: event.Title,
				Type:  event.Type,
				Start: event.Start,
			},
		})
	}
	return nil
}

// UpdateEvent replaces a calendar event.
func (s *CalendarService) UpdateEvent(ctx context.Context, event *domain.CalendarEvent) error {
	if !event.End.After(event.Start) {
		return apperrors.NewValidationError("event end must be after start", nil)
	}
	if err := s.eventsRepo.Update(ctx, event); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("event", map[string]any{"id": event.ID})
		}
		return err
	}
	return nil
}

// DeleteEvent removes a calendar event.
func (s *CalendarService) DeleteEvent(ctx context.Context, id string) error {
	if err := s.eventsRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("event", map[string]any{"id": id})
		}
		return err
	}
	return nil
}

// GetEvent loads one calendar event.
func (s *CalendarService) GetEvent(ctx context.Context, id string) (*domain.CalendarEvent, error) {
	event, err := s.eventsRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("event", map[string]any{"id": id})
		}
		return nil, err
	}
	return event, nil
}

// ListEvents returns events starting within [from, to). Omitted bounds
// leave that side of the range open.
func (s *CalendarService) ListEvents(ctx context.Context, from, to time.Time) ([]domain.CalendarEvent, error) {
	from, to = openRange(from, to)
	return s.eventsRepo.ListRange(ctx, from, to)
}
