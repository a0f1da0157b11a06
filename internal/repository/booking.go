package repository

import (
	"context"
	"fmt"

	"github.com/amaldanavina3112/chennai-evento-connect/internal/database"
	"github.com/amaldanavina3112/chennai-evento-connect/internal/model"
	"github.com/amaldanavina3112/chennai-evento-connect/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

const (
	bookingColumns = "id, event_id, user_id, quantity, total_price, payment_status, created_at"

	userBookingColumns = "b.id, b.event_id, b.user_id, b.quantity, b.total_price, b.payment_status, b.created_at, " +
		"e.title AS event_title, e.date::text AS event_date, e.time::text AS event_time, " +
		"e.location AS event_location, e.image_url AS event_image_url"
)

type BookingRepository struct {
	db DBTX
}

func NewBookingRepository(db DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create records a booking. It is a single insert: the event's
// current_attendees is not changed and capacity is not checked.
func (r *BookingRepository) Create(ctx context.Context, params model.CreateBookingParams) (*model.Booking, error) {
	paymentStatus := model.PaymentStatusPending
	if params.PaymentStatus != nil {
		paymentStatus = *params.PaymentStatus
	}

	var booking *model.Booking
	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `
			INSERT INTO bookings (event_id, user_id, quantity, total_price, payment_status)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+bookingColumns,
			params.EventID, params.UserID, params.Quantity, params.TotalPrice, paymentStatus,
		)
		if err != nil {
			return err
		}
		booking, err = pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[model.Booking])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", sqlerr.WithTable("bookings", err))
	}
	return booking, nil
}

// ListByUser returns the user's bookings with their event summary, newest
// first. An unknown user simply has no bookings.
func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]model.UserBooking, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+userBookingColumns+`
		FROM bookings b
		JOIN events e ON b.event_id = e.id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for user %s: %w", userID, err)
	}

	bookings, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.UserBooking])
	if err != nil {
		return nil, fmt.Errorf("failed to collect bookings for user %s: %w", userID, err)
	}
	return bookings, nil
}

// EventRevenue sums total_price over the event's completed bookings. An
// event without any, or an unknown event, earns 0.
func (r *BookingRepository) EventRevenue(ctx context.Context, eventID string) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(total_price), 0)::float8 AS total_revenue
		FROM bookings
		WHERE event_id = $1 AND payment_status = 'completed'`,
		eventID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to compute revenue for event %s: %w", eventID, err)
	}
	return total, nil
}
