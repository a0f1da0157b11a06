package repository

import (
	"context"
	"regexp"
	"sync"
	"testing"

	"github.com/amaldanavina3112/chennai-evento-connect/internal/model"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookingCols = []string{"id", "event_id", "user_id", "quantity", "total_price", "payment_status", "created_at"}

func TestBookingRepository_Create_DefaultsToPending(t *testing.T) {
	mock := newMockPool(t)
	repo := NewBookingRepository(mock)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings (event_id, user_id, quantity, total_price, payment_status)")).
		WithArgs(ptr("e-1"), ptr("u-1"), ptr(2), ptr(500.0), model.PaymentStatusPending).
		WillReturnRows(pgxmock.NewRows(bookingCols).
			AddRow("b-1", "e-1", "u-1", 2, 500.0, model.PaymentStatusPending, testCreatedAt))
	mock.ExpectCommit()

	booking, err := repo.Create(context.Background(), model.CreateBookingParams{
		EventID:    ptr("e-1"),
		UserID:     ptr("u-1"),
		Quantity:   ptr(2),
		TotalPrice: ptr(500.0),
	})
	require.NoError(t, err)
	assert.Equal(t, "b-1", booking.ID)
	assert.Equal(t, model.PaymentStatusPending, booking.PaymentStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Create_KeepsGivenStatus(t *testing.T) {
	mock := newMockPool(t)
	repo := NewBookingRepository(mock)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(ptr("e-1"), ptr("u-1"), ptr(1), ptr(50.0), "refunded").
		WillReturnRows(pgxmock.NewRows(bookingCols).
			AddRow("b-1", "e-1", "u-1", 1, 50.0, "refunded", testCreatedAt))
	mock.ExpectCommit()

	booking, err := repo.Create(context.Background(), model.CreateBookingParams{
		EventID:       ptr("e-1"),
		UserID:        ptr("u-1"),
		Quantity:      ptr(1),
		TotalPrice:    ptr(50.0),
		PaymentStatus: ptr("refunded"),
	})
	require.NoError(t, err)
	assert.Equal(t, "refunded", booking.PaymentStatus)
}

// Bookings never touch the events table, so parallel creates are two plain
// inserts with no locking between them.
func TestBookingRepository_Create_Concurrent(t *testing.T) {
	mock := newMockPool(t)
	mock.MatchExpectationsInOrder(false)
	repo := NewBookingRepository(mock)

	for _, id := range []string{"b-1", "b-2"} {
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO bookings").
			WithArgs(ptr("e-1"), ptr("u-"+id), ptr(1), ptr(100.0), model.PaymentStatusPending).
			WillReturnRows(pgxmock.NewRows(bookingCols).
				AddRow(id, "e-1", "u-"+id, 1, 100.0, model.PaymentStatusPending, testCreatedAt))
		mock.ExpectCommit()
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, id := range []string{"b-1", "b-2"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = repo.Create(context.Background(), model.CreateBookingParams{
				EventID:    ptr("e-1"),
				UserID:     ptr("u-" + id),
				Quantity:   ptr(1),
				TotalPrice: ptr(100.0),
			})
		}()
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_ListByUser(t *testing.T) {
	mock := newMockPool(t)
	repo := NewBookingRepository(mock)

	cols := append(append([]string{}, bookingCols...),
		"event_title", "event_date", "event_time", "event_location", "event_image_url")

	mock.ExpectQuery(`e\.title AS event_title, e\.date::text AS event_date, e\.time::text AS event_time, ` +
		`e\.location AS event_location, e\.image_url AS event_image_url\s+` +
		`FROM bookings b\s+JOIN events e ON b\.event_id = e\.id\s+` +
		`WHERE b\.user_id = \$1\s+ORDER BY b\.created_at DESC`).
		WithArgs("u-1").
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow("b-2", "e-2", "u-1", 1, 100.0, "completed", testCreatedAt,
				"Beach Run", "2026-12-15", (*string)(nil), ptr("Marina"), (*string)(nil)).
			AddRow("b-1", "e-1", "u-1", 2, 500.0, "pending", testCreatedAt,
				"Margazhi Concert", "2026-12-01", ptr("18:30:00"), ptr("Mylapore"), ptr("https://img/e1.png")))

	bookings, err := repo.ListByUser(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, bookings, 2)

	assert.Equal(t, "b-2", bookings[0].ID)
	assert.Equal(t, "Beach Run", bookings[0].EventTitle)
	assert.Nil(t, bookings[0].EventTime)
	assert.Equal(t, "2026-12-01", bookings[1].EventDate)
	assert.Equal(t, "18:30:00", *bookings[1].EventTime)
	assert.Equal(t, "https://img/e1.png", *bookings[1].EventImageURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_ListByUser_Unknown(t *testing.T) {
	mock := newMockPool(t)
	repo := NewBookingRepository(mock)

	mock.ExpectQuery("FROM bookings b").
		WithArgs("nobody").
		WillReturnRows(pgxmock.NewRows(bookingCols))

	bookings, err := repo.ListByUser(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestBookingRepository_EventRevenue(t *testing.T) {
	tests := []struct {
		name string
		sum  float64
	}{
		{name: "completed bookings only", sum: 50.0},
		{name: "no completed bookings", sum: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockPool(t)
			repo := NewBookingRepository(mock)

			// The sum is computed by postgres; the mock only returns it. The
			// query must filter on payment_status = 'completed' so pending or
			// refunded bookings (a completed 50 plus a pending 30 sums to 50,
			// not 80) never count, and COALESCE turns "no rows" into 0.
			mock.ExpectQuery(regexp.QuoteMeta("COALESCE(SUM(total_price), 0)::float8") + `[\s\S]+` +
				regexp.QuoteMeta("WHERE event_id = $1 AND payment_status = 'completed'")).
				WithArgs("e-1").
				WillReturnRows(pgxmock.NewRows([]string{"total_revenue"}).AddRow(tt.sum))

			total, err := repo.EventRevenue(context.Background(), "e-1")
			require.NoError(t, err)
			assert.Equal(t, tt.sum, total)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
