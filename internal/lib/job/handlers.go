package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/amaldanavina3112/chennai-evento-connect/internal/config"
	"github.com/amaldanavina3112/chennai-evento-connect/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// Mailer sends the emails behind the job handlers.
type Mailer interface {
	SendBookingConfirmation(b email.BookingConfirmation) error
	SendEnquiryAcknowledgement(to, name, eventType string) error
}

// InitHandlers wires the Resend client used by the email tasks. Without an
// API key the tasks are acknowledged and dropped.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger) {
	if !cfg.Integration.EmailEnabled() {
		logger.Warn().Msg("resend API key not set, email tasks will be skipped")
		return
	}
	j.mailer = email.NewClient(cfg, logger)
}

// SetMailer replaces the mailer, mainly for tests.
func (j *JobService) SetMailer(m Mailer) {
	j.mailer = m
}

func (j *JobService) handleBookingConfirmationTask(ctx context.Context, t *asynq.Task) error {
	var p BookingConfirmationPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal booking confirmation payload: %w: %w", err, asynq.SkipRetry)
	}

	log := j.logger.With().
		Str("type", "booking_confirmation").
		Str("booking_id", p.BookingID).
		Logger()

	if j.mailer == nil {
		log.Warn().Msg("email disabled, skipping booking confirmation")
		return nil
	}

	log.Info().Msg("processing booking confirmation email task")

	err := j.mailer.SendBookingConfirmation(email.BookingConfirmation{
		To:            p.To,
		UserName:      p.UserName,
		EventTitle:    p.EventTitle,
		EventDate:     p.EventDate,
		EventLocation: p.EventLocation,
		Quantity:      p.Quantity,
		TotalPrice:    p.TotalPrice,
		BookingID:     p.BookingID,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to send booking confirmation email")
		return err
	}

	log.Info().Msg("sent booking confirmation email")
	return nil
}

func (j *JobService) handleEnquiryAcknowledgementTask(ctx context.Context, t *asynq.Task) error {
	var p EnquiryAcknowledgementPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal enquiry acknowledgement payload: %w: %w", err, asynq.SkipRetry)
	}

	log := j.logger.With().
		Str("type", "enquiry_acknowledgement").
		Str("enquiry_id", p.EnquiryID).
		Logger()

	if j.mailer == nil {
		log.Warn().Msg("email disabled, skipping enquiry acknowledgement")
		return nil
	}

	log.Info().Msg("processing enquiry acknowledgement email task")

	if err := j.mailer.SendEnquiryAcknowledgement(p.To, p.Name, p.EventType); err != nil {
		log.Error().Err(err).Msg("failed to send enquiry acknowledgement email")
		return err
	}

	log.Info().Msg("sent enquiry acknowledgement email")
	return nil
}
