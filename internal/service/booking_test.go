package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/amaldanavina3112/chennai-evento-connect/internal/lib/job"
	"github.com/amaldanavina3112/chennai-evento-connect/internal/model"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookingCols = []string{"id", "event_id", "user_id", "quantity", "total_price", "payment_status", "created_at"}

func expectBookingInsert(mock pgxmock.PgxPoolIface) {
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(ptr(eventID), ptr(userID), ptr(2), ptr(500.0), model.PaymentStatusPending).
		WillReturnRows(pgxmock.NewRows(bookingCols).
			AddRow(bookingID, eventID, userID, 2, 500.0, model.PaymentStatusPending, createdAt))
	mock.ExpectCommit()
}

func bookingParams() model.CreateBookingParams {
	return model.CreateBookingParams{
		EventID:    ptr(eventID),
		UserID:     ptr(userID),
		Quantity:   ptr(2),
		TotalPrice: ptr(500.0),
	}
}

func TestBookingService_Create_EnqueuesConfirmation(t *testing.T) {
	mock, repos := newMockRepos(t)
	tasks := &fakeEnqueuer{}
	svc := NewBookingService(repos, tasks)

	expectBookingInsert(mock)
	mock.ExpectQuery("FROM users WHERE id").
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows(userCols).
			AddRow(userID, "asha@example.com", ptr("Asha"), (*string)(nil), createdAt))
	mock.ExpectQuery("FROM events WHERE id").
		WithArgs(eventID).
		WillReturnRows(addEventRow(pgxmock.NewRows(eventCols), "Margazhi Concert"))

	booking, err := svc.Create(context.Background(), bookingParams())
	require.NoError(t, err)
	assert.Equal(t, bookingID, booking.ID)
	assert.NoError(t, mock.ExpectationsWereMet())

	require.Len(t, tasks.tasks, 1)
	assert.Equal(t, job.TaskBookingConfirmation, tasks.tasks[0].Type())

	var payload job.BookingConfirmationPayload
	require.NoError(t, json.Unmarshal(tasks.tasks[0].Payload(), &payload))
	assert.Equal(t, "asha@example.com", payload.To)
	assert.Equal(t, "Asha", payload.UserName)
	assert.Equal(t, "Margazhi Concert", payload.EventTitle)
	assert.Equal(t, "Mylapore", payload.EventLocation)
	assert.Equal(t, 500.0, payload.TotalPrice)
}

func TestBookingService_Create_EnqueueFailureIsNotFatal(t *testing.T) {
	mock, repos := newMockRepos(t)
	svc := NewBookingService(repos, &fakeEnqueuer{err: errors.New("redis down")})

	expectBookingInsert(mock)
	mock.ExpectQuery("FROM users WHERE id").
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows(userCols).
			AddRow(userID, "asha@example.com", (*string)(nil), (*string)(nil), createdAt))
	mock.ExpectQuery("FROM events WHERE id").
		WithArgs(eventID).
		WillReturnRows(addEventRow(pgxmock.NewRows(eventCols), "Margazhi Concert"))

	booking, err := svc.Create(context.Background(), bookingParams())
	require.NoError(t, err)
	assert.Equal(t, bookingID, booking.ID)
}

func TestBookingService_Create_WithoutJobs(t *testing.T) {
	mock, repos := newMockRepos(t)
	svc := NewBookingService(repos, nil)

	expectBookingInsert(mock)

	_, err := svc.Create(context.Background(), bookingParams())
	require.NoError(t, err)
	// only the insert, no lookups for the email
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingService_ListForUser_InvalidID(t *testing.T) {
	mock, repos := newMockRepos(t)
	svc := NewBookingService(repos, nil)

	bookings, err := svc.ListForUser(context.Background(), "nope")
	require.NoError(t, err)
	assert.NotNil(t, bookings)
	assert.Empty(t, bookings)
	assert.NoError(t, mock.ExpectationsWereMet())
}
