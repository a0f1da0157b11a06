package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	TaskBookingConfirmation    = "email:booking_confirmation"
	TaskEnquiryAcknowledgement = "email:enquiry_acknowledgement"
)

type BookingConfirmationPayload struct {
	BookingID     string  `json:"booking_id"`
	To            string  `json:"to"`
	UserName      string  `json:"user_name"`
	EventTitle    string  `json:"event_title"`
	EventDate     string  `json:"event_date"`
	EventLocation string  `json:"event_location"`
	Quantity      int     `json:"quantity"`
	TotalPrice    float64 `json:"total_price"`
}

// NewBookingConfirmationTask builds a confirmation email task. The booking
// id doubles as the task id so a booking is confirmed at most once.
func NewBookingConfirmationTask(p BookingConfirmationPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskBookingConfirmation,
		payload,
		asynq.TaskID("booking-confirmation:"+p.BookingID),
		asynq.MaxRetry(5),
		asynq.Queue("critical"),
		asynq.Timeout(30*time.Second),
	), nil
}

type EnquiryAcknowledgementPayload struct {
	EnquiryID string `json:"enquiry_id"`
	To        string `json:"to"`
	Name      string `json:"name"`
	EventType string `json:"event_type"`
}

func NewEnquiryAcknowledgementTask(p EnquiryAcknowledgementPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskEnquiryAcknowledgement,
		payload,
		asynq.TaskID("enquiry-ack:"+p.EnquiryID),
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}
