package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/amaldanavina3112/chennai-evento-connect/internal/errs"
	"github.com/amaldanavina3112/chennai-evento-connect/internal/repository"
	"github.com/hibiken/asynq"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	userID    = "7b0d6c1e-2f5a-4a8e-9d1c-3e4f5a6b7c8d"
	eventID   = "1c2d3e4f-5a6b-4c7d-8e9f-0a1b2c3d4e5f"
	bookingID = "9f8e7d6c-5b4a-4392-8170-6f5e4d3c2b1a"
	enquiryID = "0a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d"
)

var createdAt = time.Date(2026, 10, 1, 9, 30, 0, 0, time.UTC)

type fakeEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (f *fakeEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	f.tasks = append(f.tasks, task)
	if f.err != nil {
		return nil, f.err
	}
	return &asynq.TaskInfo{ID: "task-1"}, nil
}

func newMockRepos(t *testing.T) (pgxmock.PgxPoolIface, *repository.Repositories) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, repository.NewRepositoriesWithDB(mock)
}

func ptr[T any](v T) *T {
	return &v
}

func requireHTTPError(t *testing.T, err error, status int, code string) {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %v", err)
	assert.Equal(t, status, httpErr.Status)
	assert.Equal(t, code, httpErr.Code)
}

func TestValidID(t *testing.T) {
	assert.True(t, validID(userID))
	assert.False(t, validID("42"))
	assert.False(t, validID(""))
}

func TestNoFields(t *testing.T) {
	requireHTTPError(t, noFields(), http.StatusBadRequest, "NO_VALID_FIELDS")
}
