package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	code := "EVENT_NOT_FOUND"

	assert.Equal(t, "NOT_FOUND", NewNotFoundError("x", false, nil).Code)
	assert.Equal(t, code, NewNotFoundError("x", false, &code).Code)
	assert.Equal(t, "BAD_REQUEST", NewBadRequestError("x", false, nil, nil, nil).Code)

	internal := NewInternalServerError()
	assert.Equal(t, http.StatusInternalServerError, internal.Status)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", internal.Code)
	assert.Equal(t, "Internal Server Error", internal.Message)

	tooMany := NewTooManyRequestsError("slow down")
	assert.Equal(t, "TOO_MANY_REQUESTS", tooMany.Code)
	assert.Equal(t, ActionTypeRetry, tooMany.Action.Type)
}

func TestHTTPError_Is(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NewNotFoundError("User not found", false, nil))
	assert.True(t, errors.Is(err, &HTTPError{}))
	assert.False(t, errors.Is(errors.New("plain"), &HTTPError{}))
}
