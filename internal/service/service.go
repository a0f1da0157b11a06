// Package service contains the business logic.
//
// It sits between the handler and repository layers. It turns
// repository outcomes into API errors and schedules the email
// jobs that follow a booking or an enquiry.
package service

import (
	"context"

	"github.com/amaldanavina3112/chennai-evento-connect/internal/errs"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// TaskEnqueuer is satisfied by *asynq.Client.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// validID reports whether id can address a row. Ids are UUIDs, so anything
// else cannot exist.
func validID(id string) bool {
	return uuid.Validate(id) == nil
}

func notFound(entity, code string) *errs.HTTPError {
	return errs.NewNotFoundError(entity+" not found", false, &code)
}

func noFields() *errs.HTTPError {
	code := "NO_VALID_FIELDS"
	return errs.NewBadRequestError("No valid fields provided", true, &code, nil, nil)
}
