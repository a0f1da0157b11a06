package model

import "time"

const (
	EventStatusActive = "active"
)

// Event is a scheduled happening that users can book.
//
// Date is "YYYY-MM-DD" and Time is "HH:MM:SS", both as returned by postgres.
// CurrentAttendees is informational; nothing keeps it in step with bookings.
type Event struct {
	ID               string    `json:"id" db:"id"`
	Title            string    `json:"title" db:"title"`
	Description      *string   `json:"description" db:"description"`
	Date             string    `json:"date" db:"date"`
	Time             *string   `json:"time" db:"time"`
	Location         *string   `json:"location" db:"location"`
	Address          *string   `json:"address" db:"address"`
	Price            float64   `json:"price" db:"price"`
	ImageURL         *string   `json:"image_url" db:"image_url"`
	Category         *string   `json:"category" db:"category"`
	UserID           *string   `json:"user_id" db:"user_id"`
	MaxAttendees     int       `json:"max_attendees" db:"max_attendees"`
	CurrentAttendees int       `json:"current_attendees" db:"current_attendees"`
	Status           string    `json:"status" db:"status"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

// CreateEventParams inserts only the fields that were sent, so column
// defaults apply to the rest.
type CreateEventParams struct {
	Title        Optional[string]  `json:"title"`
	Description  Optional[string]  `json:"description"`
	Date         Optional[string]  `json:"date"`
	Time         Optional[string]  `json:"time"`
	Location     Optional[string]  `json:"location"`
	Address      Optional[string]  `json:"address"`
	Price        Optional[float64] `json:"price"`
	ImageURL     Optional[string]  `json:"image_url"`
	Category     Optional[string]  `json:"category"`
	UserID       Optional[string]  `json:"user_id"`
	MaxAttendees Optional[int]     `json:"max_attendees"`
	Status       Optional[string]  `json:"status"`
}

// UpdateEventParams is CreateEventParams plus current_attendees.
type UpdateEventParams struct {
	Title            Optional[string]  `json:"title"`
	Description      Optional[string]  `json:"description"`
	Date             Optional[string]  `json:"date"`
	Time             Optional[string]  `json:"time"`
	Location         Optional[string]  `json:"location"`
	Address          Optional[string]  `json:"address"`
	Price            Optional[float64] `json:"price"`
	ImageURL         Optional[string]  `json:"image_url"`
	Category         Optional[string]  `json:"category"`
	UserID           Optional[string]  `json:"user_id"`
	MaxAttendees     Optional[int]     `json:"max_attendees"`
	Status           Optional[string]  `json:"status"`
	CurrentAttendees Optional[int]     `json:"current_attendees"`
}

// Availability is the seat summary of an event. AvailableSpots is not
// clamped and goes negative when an event is oversold.
type Availability struct {
	MaxAttendees     int `json:"max_attendees" db:"max_attendees"`
	CurrentAttendees int `json:"current_attendees" db:"current_attendees"`
	AvailableSpots   int `json:"available_spots" db:"available_spots"`
}
