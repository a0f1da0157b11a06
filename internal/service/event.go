package service

import (
	"context"
	"errors"

	"github.com/amaldanavina3112/chennai-evento-connect/internal/model"
	"github.com/amaldanavina3112/chennai-evento-connect/internal/repository"
	"github.com/rs/zerolog"
)

type EventService struct {
	events   *repository.EventRepository
	bookings *repository.BookingRepository
}

func NewEventService(events *repository.EventRepository, bookings *repository.BookingRepository) *EventService {
	return &EventService{events: events, bookings: bookings}
}

// List returns all events, or the search results when term is not empty.
func (s *EventService) List(ctx context.Context, term string) ([]model.Event, error) {
	if term != "" {
		return s.events.Search(ctx, term)
	}
	return s.events.List(ctx)
}

func (s *EventService) Get(ctx context.Context, id string) (*model.Event, error) {
	if !validID(id) {
		return nil, notFound("Event", "EVENT_NOT_FOUND")
	}

	event, err := s.events.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("Event", "EVENT_NOT_FOUND")
	}
	return event, err
}

func (s *EventService) Create(ctx context.Context, params model.CreateEventParams) (*model.Event, error) {
	event, err := s.events.Create(ctx, params)
	if errors.Is(err, repository.ErrNoFields) {
		return nil, noFields()
	}
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Str("event_id", event.ID).Msg("event created")
	return event, nil
}

func (s *EventService) Update(ctx context.Context, id string, params model.UpdateEventParams) (*model.Event, error) {
	if !validID(id) {
		return nil, notFound("Event", "EVENT_NOT_FOUND")
	}

	event, err := s.events.Update(ctx, id, params)
	switch {
	case errors.Is(err, repository.ErrNoFields):
		return nil, noFields()
	case errors.Is(err, repository.ErrNotFound):
		return nil, notFound("Event", "EVENT_NOT_FOUND")
	}
	return event, err
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return notFound("Event", "EVENT_NOT_FOUND")
	}

	deleted, err := s.events.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return notFound("Event", "EVENT_NOT_FOUND")
	}

	zerolog.Ctx(ctx).Info().Str("event_id", id).Msg("event deleted")
	return nil
}

func (s *EventService) Availability(ctx context.Context, id string) (*model.Availability, error) {
	if !validID(id) {
		return nil, notFound("Event", "EVENT_NOT_FOUND")
	}

	availability, err := s.events.Availability(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("Event", "EVENT_NOT_FOUND")
	}
	return availability, err
}

// Revenue never reports not-found: an unknown event has earned nothing.
func (s *EventService) Revenue(ctx context.Context, id string) (*model.EventRevenue, error) {
	revenue := &model.EventRevenue{EventID: id}
	if !validID(id) {
		return revenue, nil
	}

	total, err := s.bookings.EventRevenue(ctx, id)
	if err != nil {
		return nil, err
	}
	revenue.TotalRevenue = total
	return revenue, nil
}
