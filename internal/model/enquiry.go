package model

import "time"

// Enquiry is a contact-form submission. Enquiries are only ever created.
type Enquiry struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     *string   `json:"phone" db:"phone"`
	Message   string    `json:"message" db:"message"`
	EventType *string   `json:"event_type" db:"event_type"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CreateEnquiryParams struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Message   *string `json:"message"`
	EventType *string `json:"event_type"`
}
