package service

import (
	"context"

	"github.com/amaldanavina3112/chennai-evento-connect/internal/lib/job"
	"github.com/amaldanavina3112/chennai-evento-connect/internal/model"
	"github.com/amaldanavina3112/chennai-evento-connect/internal/repository"
	"github.com/rs/zerolog"
)

type EnquiryService struct {
	enquiries *repository.EnquiryRepository
	tasks     TaskEnqueuer
}

func NewEnquiryService(enquiries *repository.EnquiryRepository, tasks TaskEnqueuer) *EnquiryService {
	return &EnquiryService{enquiries: enquiries, tasks: tasks}
}

// Submit stores the enquiry and schedules an acknowledgement to the sender.
func (s *EnquiryService) Submit(ctx context.Context, params model.CreateEnquiryParams) (*model.Enquiry, error) {
	enquiry, err := s.enquiries.Create(ctx, params)
	if err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(ctx).With().Str("enquiry_id", enquiry.ID).Logger()
	logger.Info().Msg("enquiry submitted")

	if s.tasks == nil {
		return enquiry, nil
	}

	payload := job.EnquiryAcknowledgementPayload{
		EnquiryID: enquiry.ID,
		To:        enquiry.Email,
		Name:      enquiry.Name,
	}
	if enquiry.EventType != nil {
		payload.EventType = *enquiry.EventType
	}

	task, err := job.NewEnquiryAcknowledgementTask(payload)
	if err == nil {
		_, err = s.tasks.EnqueueContext(ctx, task)
	}
	if err != nil {
		logger.Error().Err(err).Msg("failed to enqueue enquiry acknowledgement email")
	}

	return enquiry, nil
}
