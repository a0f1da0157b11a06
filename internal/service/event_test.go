package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/amaldanavina3112/chennai-evento-connect/internal/model"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var eventCols = []string{
	"id", "title", "description", "date", "time", "location", "address", "price",
	"image_url", "category", "user_id", "max_attendees", "current_attendees", "status", "created_at",
}

func addEventRow(rows *pgxmock.Rows, title string) *pgxmock.Rows {
	return rows.AddRow(
		eventID, title, (*string)(nil), "2026-12-01", ptr("18:30:00"), ptr("Mylapore"), (*string)(nil), 250.0,
		(*string)(nil), (*string)(nil), (*string)(nil), 100, 0, model.EventStatusActive, createdAt,
	)
}

func TestEventService_List(t *testing.T) {
	t.Run("without a term lists everything", func(t *testing.T) {
		mock, repos := newMockRepos(t)
		svc := NewEventService(repos.Events, repos.Bookings)

		mock.ExpectQuery("FROM events ORDER BY date ASC").
			WillReturnRows(addEventRow(pgxmock.NewRows(eventCols), "Margazhi Concert"))

		events, err := svc.List(context.Background(), "")
		require.NoError(t, err)
		assert.Len(t, events, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("with a term searches", func(t *testing.T) {
		mock, repos := newMockRepos(t)
		svc := NewEventService(repos.Events, repos.Bookings)

		mock.ExpectQuery("ILIKE").
			WithArgs("%concert%").
			WillReturnRows(addEventRow(pgxmock.NewRows(eventCols), "Margazhi Concert"))

		events, err := svc.List(context.Background(), "concert")
		require.NoError(t, err)
		assert.Len(t, events, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEventService_Create_NoFields(t *testing.T) {
	_, repos := newMockRepos(t)
	svc := NewEventService(repos.Events, repos.Bookings)

	_, err := svc.Create(context.Background(), model.CreateEventParams{})
	requireHTTPError(t, err, http.StatusBadRequest, "NO_VALID_FIELDS")
}

func TestEventService_Update_Missing(t *testing.T) {
	mock, repos := newMockRepos(t)
	svc := NewEventService(repos.Events, repos.Bookings)

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE events SET status").
		WithArgs("cancelled", eventID).
		WillReturnRows(pgxmock.NewRows(eventCols))
	mock.ExpectRollback()

	_, err := svc.Update(context.Background(), eventID, model.UpdateEventParams{Status: model.Some("cancelled")})
	requireHTTPError(t, err, http.StatusNotFound, "EVENT_NOT_FOUND")
}

func TestEventService_Availability_InvalidID(t *testing.T) {
	mock, repos := newMockRepos(t)
	svc := NewEventService(repos.Events, repos.Bookings)

	_, err := svc.Availability(context.Background(), "abc")
	requireHTTPError(t, err, http.StatusNotFound, "EVENT_NOT_FOUND")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventService_Revenue(t *testing.T) {
	t.Run("sums completed bookings", func(t *testing.T) {
		mock, repos := newMockRepos(t)
		svc := NewEventService(repos.Events, repos.Bookings)

		mock.ExpectQuery("total_revenue").
			WithArgs(eventID).
			WillReturnRows(pgxmock.NewRows([]string{"total_revenue"}).AddRow(50.0))

		revenue, err := svc.Revenue(context.Background(), eventID)
		require.NoError(t, err)
		assert.Equal(t, eventID, revenue.EventID)
		assert.Equal(t, 50.0, revenue.TotalRevenue)
	})

	t.Run("malformed id earns nothing", func(t *testing.T) {
		mock, repos := newMockRepos(t)
		svc := NewEventService(repos.Events, repos.Bookings)

		revenue, err := svc.Revenue(context.Background(), "abc")
		require.NoError(t, err)
		assert.Equal(t, "abc", revenue.EventID)
		assert.Zero(t, revenue.TotalRevenue)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failure is surfaced", func(t *testing.T) {
		mock, repos := newMockRepos(t)
		svc := NewEventService(repos.Events, repos.Bookings)

		mock.ExpectQuery("total_revenue").
			WithArgs(eventID).
			WillReturnError(errors.New("connection refused"))

		_, err := svc.Revenue(context.Background(), eventID)
		assert.Error(t, err)
	})
}
