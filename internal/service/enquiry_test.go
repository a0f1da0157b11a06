package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/amaldanavina3112/chennai-evento-connect/internal/lib/job"
	"github.com/amaldanavina3112/chennai-evento-connect/internal/model"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnquiryService_Submit(t *testing.T) {
	mock, repos := newMockRepos(t)
	tasks := &fakeEnqueuer{}
	svc := NewEnquiryService(repos.Enquiries, tasks)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO enquiries").
		WithArgs(ptr("Kavya"), ptr("kavya@example.com"), (*string)(nil), ptr("Venue for 200 guests"), ptr("wedding")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "phone", "message", "event_type", "created_at"}).
			AddRow(enquiryID, "Kavya", "kavya@example.com", (*string)(nil), "Venue for 200 guests", ptr("wedding"), createdAt))
	mock.ExpectCommit()

	enquiry, err := svc.Submit(context.Background(), model.CreateEnquiryParams{
		Name:      ptr("Kavya"),
		Email:     ptr("kavya@example.com"),
		Message:   ptr("Venue for 200 guests"),
		EventType: ptr("wedding"),
	})
	require.NoError(t, err)
	assert.Equal(t, enquiryID, enquiry.ID)

	require.Len(t, tasks.tasks, 1)
	assert.Equal(t, job.TaskEnquiryAcknowledgement, tasks.tasks[0].Type())

	var payload job.EnquiryAcknowledgementPayload
	require.NoError(t, json.Unmarshal(tasks.tasks[0].Payload(), &payload))
	assert.Equal(t, "kavya@example.com", payload.To)
	assert.Equal(t, "wedding", payload.EventType)
}
