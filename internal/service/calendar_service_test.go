package service

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firmdesk/practice-service/internal/domain"
	"github.com/firmdesk/practice-service/internal/events"
)

type fakeCalendarEventRepo struct {
	events map[string]*domain.CalendarEvent
	seq    int
}

func newFakeCalendarEventRepo() *fakeCalendarEventRepo {
	return &fakeCalendarEventRepo{events: make(map[string]*domain.CalendarEvent)}
}

func (r *fakeCalendarEventRepo) Create(_ context.Context, event *domain.CalendarEvent) error {
	r.seq++
	event.ID = fmt.Sprintf("event-%d", r.seq)
	copied := *event
	r.events[event.ID] = &copied
	return nil
}

func (r *fakeCalendarEventRepo) Update(_ context.Context, event *domain.CalendarEvent) error {
	if _, ok := r.events[event.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *event
	r.events[event.ID] = &copied
	return nil
}

func (r *fakeCalendarEventRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.events[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.events, id)
	return nil
}

func (r *fakeCalendarEventRepo) GetByID(_ context.Context, id string) (*domain.CalendarEvent, error) {
	event, ok := r.events[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *event
	return &copied, nil
}

func (r *fakeCalendarEventRepo) ListRange(_ context.Context, from, to time.Time) ([]domain.CalendarEvent, error) {
	var out []domain.CalendarEvent
	for _, event := range r.events {
		if event.Start.Before(from) || !event.Start.Before(to) {
			continue
		}
		out = append(out, *event)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

func newCalendarTestService(repo *fakeCalendarEventRepo) *CalendarService {
	return NewCalendarService(repo, events.NewInMemoryDispatcher())
}

func TestScheduleEventValidation(t *testing.T) {
	svc := newCalendarTestService(newFakeCalendarEventRepo())
	start := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	err := svc.ScheduleEvent(context.Background(), &domain.CalendarEvent{
		Title: "  ",
		Start: start,
		End:   start.Add(time.Hour),
	}, "acct-1")
	assert.Error(t, err)

	err = svc.ScheduleEvent(context.Background(), &domain.CalendarEvent{
		Title: "Status hearing",
		Start: start,
		End:   start,
	}, "acct-1")
	assert.Error(t, err)
}

func TestScheduleEventDefaultsType(t *testing.T) {
	repo := newFakeCalendarEventRepo()
	svc := newCalendarTestService(repo)
	start := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	event := &domain.CalendarEvent{
		Title: "Intake call",
		Start: start,
		End:   start.Add(30 * time.Minute),
	}
	require.NoError(t, svc.ScheduleEvent(context.Background(), event, "acct-1"))
	assert.Equal(t, domain.EventTypeOther, event.Type)
}

func TestListEventsWithoutRangeReturnsAll(t *testing.T) {
	repo := newFakeCalendarEventRepo()
	svc := newCalendarTestService(repo)

	base := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, svc.ScheduleEvent(context.Background(), &domain.CalendarEvent{
			Title: fmt.Sprintf("Hearing %d", i+1),
			Type:  domain.EventTypeCourt,
			Start: base.AddDate(0, i, 0),
			End:   base.AddDate(0, i, 0).Add(time.Hour),
		}, "acct-1"))
	}

	listed, err := svc.ListEvents(context.Background(), time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Len(t, listed, 3)
}

func TestListEventsBoundedRange(t *testing.T) {
	repo := newFakeCalendarEventRepo()
	svc := newCalendarTestService(repo)

	base := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, svc.ScheduleEvent(context.Background(), &domain.CalendarEvent{
			Title: fmt.Sprintf("Deposition %d", i+1),
			Type:  domain.EventTypeMeeting,
			Start: base.AddDate(0, i, 0),
			End:   base.AddDate(0, i, 0).Add(time.Hour),
		}, "acct-1"))
	}

	listed, err := svc.ListEvents(context.Background(), base.AddDate(0, 1, -1), base.AddDate(0, 2, -1))
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Deposition 2", listed[0].Title)
}
