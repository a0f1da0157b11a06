package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/amaldanavina3112/chennai-evento-connect/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "booking for unknown event",
			err:        &pgconn.PgError{Code: "23503", TableName: "bookings", ConstraintName: "bookings_event_id_fkey"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "EVENT_NOT_FOUND",
		},
		{
			name:       "duplicate email",
			err:        &pgconn.PgError{Code: "23505", TableName: "users", ConstraintName: "users_email_key"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "USER_ALREADY_EXISTS",
		},
		{
			name:       "missing enquiry message",
			err:        &pgconn.PgError{Code: "23502", TableName: "enquiries", ColumnName: "message"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "ENQUIRY_REQUIRED",
		},
		{
			name:       "malformed uuid",
			err:        WithTable("bookings", &pgconn.PgError{Code: "22P02"}),
			wantStatus: http.StatusBadRequest,
			wantCode:   "BOOKING_INVALID",
		},
		{
			name:       "wrapped by a repository",
			err:        fmt.Errorf("failed to create booking: %w", WithTable("bookings", &pgconn.PgError{Code: "23503", TableName: "bookings", ConstraintName: "bookings_user_id_fkey"})),
			wantStatus: http.StatusBadRequest,
			wantCode:   "USER_NOT_FOUND",
		},
		{
			name:       "event owner foreign key",
			err:        &pgconn.PgError{Code: "23503", TableName: "events", ConstraintName: "events_user_id_fkey"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "USER_NOT_FOUND",
		},
		{
			name:       "invalid date",
			err:        fmt.Errorf("failed to create event: %w", WithTable("events", &pgconn.PgError{Code: "22007"})),
			wantStatus: http.StatusBadRequest,
			wantCode:   "EVENT_INVALID",
		},
		{
			name:       "date out of range",
			err:        WithTable("events", &pgconn.PgError{Code: "22008"}),
			wantStatus: http.StatusBadRequest,
			wantCode:   "EVENT_INVALID",
		},
		{
			name:       "price overflow",
			err:        WithTable("events", &pgconn.PgError{Code: "22003"}),
			wantStatus: http.StatusBadRequest,
			wantCode:   "EVENT_INVALID",
		},
		{
			name:       "data exception without a table",
			err:        &pgconn.PgError{Code: "22001"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "RECORD_INVALID",
		},
		{
			name:       "stray no rows",
			err:        pgx.ErrNoRows,
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "unknown postgres error",
			err:        &pgconn.PgError{Code: "40P01"},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
		},
		{
			name:       "anything else",
			err:        errors.New("dial tcp: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var httpErr *errs.HTTPError
			require.ErrorAs(t, HandleError(tt.err), &httpErr)
			assert.Equal(t, tt.wantStatus, httpErr.Status)
			assert.Equal(t, tt.wantCode, httpErr.Code)
		})
	}
}

func TestHandleError_Messages(t *testing.T) {
	var httpErr *errs.HTTPError

	require.ErrorAs(t, HandleError(&pgconn.PgError{Code: "23505", TableName: "users", ConstraintName: "users_email_key"}), &httpErr)
	assert.Equal(t, "A User with this Email already exists", httpErr.Message)

	require.ErrorAs(t, HandleError(&pgconn.PgError{Code: "23503", TableName: "bookings", ConstraintName: "bookings_event_id_fkey"}), &httpErr)
	assert.Equal(t, "The referenced Event does not exist", httpErr.Message)

	require.ErrorAs(t, HandleError(WithTable("events", &pgconn.PgError{Code: "22007"})), &httpErr)
	assert.Equal(t, "One or more values are malformed or out of range", httpErr.Message)

	require.ErrorAs(t, HandleError(&pgconn.PgError{Code: "23502", TableName: "events", ColumnName: "title"}), &httpErr)
	assert.Equal(t, "The Title is required", httpErr.Message)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "title", httpErr.Errors[0].Field)
}

func TestHandleError_PassesHTTPErrorThrough(t *testing.T) {
	in := errs.NewNotFoundError("Event not found", true, nil)
	assert.Same(t, in, HandleError(in))
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	assert.Equal(t, "email", extractColumnForUniqueViolation("users_email_key"))
	assert.Equal(t, "email", extractColumnForUniqueViolation("unique_users_email"))
	assert.Equal(t, "", extractColumnForUniqueViolation("users_pkey"))
	assert.Equal(t, "", extractColumnForUniqueViolation(""))
}

func TestExtractColumnForForeignKey(t *testing.T) {
	assert.Equal(t, "event_id", extractColumnForForeignKey("bookings", "bookings_event_id_fkey"))
	assert.Equal(t, "user_id", extractColumnForForeignKey("", "bookings_user_id_fkey"))
	assert.Equal(t, "", extractColumnForForeignKey("bookings", "bookings_pkey"))
	assert.Equal(t, "", extractColumnForForeignKey("bookings", ""))
}

func TestWithTable(t *testing.T) {
	assert.NoError(t, WithTable("events", nil))

	cause := &pgconn.PgError{Code: "22007"}
	err := WithTable("events", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, cause.Error(), err.Error())
}

func TestConvertPgError(t *testing.T) {
	converted := ConvertPgError(&pgconn.PgError{Code: "23514", Severity: "ERROR", ColumnName: "quantity"})
	assert.Equal(t, CheckViolation, converted.Code)
	assert.Equal(t, SeverityError, converted.Severity)
	assert.Equal(t, "The Quantity value does not meet required conditions", formatUserFriendlyMessage(converted))

	var pgErr *pgconn.PgError
	assert.ErrorAs(t, converted, &pgErr)
}

func TestMapCode(t *testing.T) {
	assert.Equal(t, ConnectionFailure, MapCode("08006"))
	assert.Equal(t, Other, MapCode("XX000"))
	assert.Equal(t, InvalidText, MapCode("22P02"))
	for _, code := range []string{"22003", "22007", "22008", "22001"} {
		assert.Equal(t, DataException, MapCode(code), code)
	}
}
