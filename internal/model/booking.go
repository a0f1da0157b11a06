package model

import "time"

// Payment statuses. They are stored as given and never validated.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

type Booking struct {
	ID            string    `json:"id" db:"id"`
	EventID       string    `json:"event_id" db:"event_id"`
	UserID        string    `json:"user_id" db:"user_id"`
	Quantity      int       `json:"quantity" db:"quantity"`
	TotalPrice    float64   `json:"total_price" db:"total_price"`
	PaymentStatus string    `json:"payment_status" db:"payment_status"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// CreateBookingParams is the booking payload. A nil PaymentStatus is stored
// as "pending".
type CreateBookingParams struct {
	EventID       *string  `json:"event_id"`
	UserID        *string  `json:"user_id"`
	Quantity      *int     `json:"quantity"`
	TotalPrice    *float64 `json:"total_price"`
	PaymentStatus *string  `json:"payment_status"`
}

// UserBooking is a booking joined with a summary of its event.
type UserBooking struct {
	Booking
	EventTitle    string  `json:"event_title" db:"event_title"`
	EventDate     string  `json:"event_date" db:"event_date"`
	EventTime     *string `json:"event_time" db:"event_time"`
	EventLocation *string `json:"event_location" db:"event_location"`
	EventImageURL *string `json:"event_image_url" db:"event_image_url"`
}

// EventRevenue is the sum of completed bookings for one event.
type EventRevenue struct {
	EventID      string  `json:"event_id"`
	TotalRevenue float64 `json:"total_revenue"`
}
