package handler

import (
	"testing"

	"github.com/amaldanavina3112/chennai-evento-connect/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestNewRequest(t *testing.T) {
	prototype := &UpdateUserRequest{ID: "stale"}
	prototype.Name = model.Some("stale")

	req := newRequest(prototype)

	assert.NotSame(t, prototype, req)
	assert.Empty(t, req.ID)
	assert.False(t, req.Name.IsSet())
}

func TestJSONResponseHandler(t *testing.T) {
	h := JSONResponseHandler{status: 201}
	assert.Equal(t, "handler", h.GetOperation())
	// nil transactions are ignored
	h.AddAttributes(nil, []model.User{})
}
