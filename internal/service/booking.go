package service

import (
	"context"

	"github.com/amaldanavina3112/chennai-evento-connect/internal/lib/job"
	"github.com/amaldanavina3112/chennai-evento-connect/internal/model"
	"github.com/amaldanavina3112/chennai-evento-connect/internal/repository"
	"github.com/rs/zerolog"
)

type BookingService struct {
	bookings *repository.BookingRepository
	users    *repository.UserRepository
	events   *repository.EventRepository
	tasks    TaskEnqueuer
}

// NewBookingService builds the service. tasks may be nil, in which case no
// confirmation emails are scheduled.
func NewBookingService(repos *repository.Repositories, tasks TaskEnqueuer) *BookingService {
	return &BookingService{
		bookings: repos.Bookings,
		users:    repos.Users,
		events:   repos.Events,
		tasks:    tasks,
	}
}

// Create stores the booking and schedules its confirmation email. A failure
// to schedule is logged and does not fail the booking.
func (s *BookingService) Create(ctx context.Context, params model.CreateBookingParams) (*model.Booking, error) {
	booking, err := s.bookings.Create(ctx, params)
	if err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(ctx).With().Str("booking_id", booking.ID).Logger()
	logger.Info().
		Str("event_id", booking.EventID).
		Int("quantity", booking.Quantity).
		Msg("booking created")

	if s.tasks != nil {
		if err := s.enqueueConfirmation(ctx, booking); err != nil {
			logger.Error().Err(err).Msg("failed to enqueue booking confirmation email")
		}
	}

	return booking, nil
}

func (s *BookingService) enqueueConfirmation(ctx context.Context, booking *model.Booking) error {
	user, err := s.users.GetByID(ctx, booking.UserID)
	if err != nil {
		return err
	}
	event, err := s.events.GetByID(ctx, booking.EventID)
	if err != nil {
		return err
	}

	payload := job.BookingConfirmationPayload{
		BookingID:  booking.ID,
		To:         user.Email,
		EventTitle: event.Title,
		EventDate:  event.Date,
		Quantity:   booking.Quantity,
		TotalPrice: booking.TotalPrice,
	}
	if user.Name != nil {
		payload.UserName = *user.Name
	}
	if event.Location != nil {
		payload.EventLocation = *event.Location
	}

	task, err := job.NewBookingConfirmationTask(payload)
	if err != nil {
		return err
	}
	_, err = s.tasks.EnqueueContext(ctx, task)
	return err
}

// ListForUser returns the user's bookings, newest first. Unknown users have
// no bookings.
func (s *BookingService) ListForUser(ctx context.Context, userID string) ([]model.UserBooking, error) {
	if !validID(userID) {
		return []model.UserBooking{}, nil
	}
	return s.bookings.ListByUser(ctx, userID)
}
