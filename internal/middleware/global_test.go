package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/amaldanavina3112/chennai-evento-connect/internal/errs"
	"github.com/amaldanavina3112/chennai-evento-connect/internal/sqlerr"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseStatus(t *testing.T) {
	assert.Equal(t, http.StatusOK, responseStatus(http.StatusOK, nil))
	assert.Equal(t, http.StatusNotFound, responseStatus(http.StatusOK, errs.NewNotFoundError("Event not found", false, nil)))
	assert.Equal(t, http.StatusMethodNotAllowed, responseStatus(http.StatusOK, echo.ErrMethodNotAllowed))
	assert.Equal(t, http.StatusOK, responseStatus(http.StatusOK, errors.New("boom")))
}

func TestToHTTPError(t *testing.T) {
	t.Run("http error passes through", func(t *testing.T) {
		in := errs.NewNotFoundError("Event not found", false, nil)
		assert.Same(t, in, toHTTPError(fmt.Errorf("wrapped: %w", in)))
	})

	t.Run("unknown route", func(t *testing.T) {
		got := toHTTPError(echo.ErrNotFound)
		assert.Equal(t, http.StatusNotFound, got.Status)
		assert.Equal(t, "Route not found", got.Message)
	})

	t.Run("other echo error", func(t *testing.T) {
		got := toHTTPError(echo.ErrMethodNotAllowed)
		assert.Equal(t, http.StatusMethodNotAllowed, got.Status)
		assert.Equal(t, "METHOD_NOT_ALLOWED", got.Code)
	})

	t.Run("postgres data exception", func(t *testing.T) {
		got := toHTTPError(sqlerr.WithTable("events", &pgconn.PgError{Code: "22007"}))
		assert.Equal(t, http.StatusBadRequest, got.Status)
		assert.Equal(t, "EVENT_INVALID", got.Code)
	})

	t.Run("anything else", func(t *testing.T) {
		got := toHTTPError(errors.New("dial tcp: connection refused"))
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, "INTERNAL_SERVER_ERROR", got.Code)
	})
}

func TestGlobalErrorHandler(t *testing.T) {
	e := echo.New()
	global := &GlobalMiddlewares{}

	t.Run("json body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/events/x", nil), rec)

		global.GlobalErrorHandler(errs.NewNotFoundError("Event not found", false, nil), c)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t,
			`{"code":"NOT_FOUND","message":"Event not found","status":404,"override":false,"errors":null,"action":null}`,
			rec.Body.String())
	})

	t.Run("head has no body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodHead, "/api/events/x", nil), rec)

		global.GlobalErrorHandler(errors.New("boom"), c)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}
