package handler

import (
	"github.com/amaldanavina3112/chennai-evento-connect/internal/model"
	"github.com/amaldanavina3112/chennai-evento-connect/internal/validation"
)

// Request bodies are decoded into the model params they embed; keys outside
// the allow-list are ignored by the JSON decoder. Path ids are excluded from
// the body so a payload cannot redirect a write.

type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error { return nil }

type ResourceIDRequest struct {
	ID string `param:"id" json:"-" validate:"required"`
}

func (r *ResourceIDRequest) Validate() error { return validation.Struct(r) }

type ListEventsRequest struct {
	Search string `query:"search" json:"-"`
}

func (r *ListEventsRequest) Validate() error { return nil }

type CreateUserRequest struct {
	model.CreateUserParams
}

func (r *CreateUserRequest) Validate() error { return nil }

type UpdateUserRequest struct {
	ID string `param:"id" json:"-" validate:"required"`
	model.UpdateUserParams
}

func (r *UpdateUserRequest) Validate() error { return validation.Struct(r) }

type CreateEventRequest struct {
	model.CreateEventParams
}

func (r *CreateEventRequest) Validate() error { return nil }

type UpdateEventRequest struct {
	ID string `param:"id" json:"-" validate:"required"`
	model.UpdateEventParams
}

func (r *UpdateEventRequest) Validate() error { return validation.Struct(r) }

type CreateBookingRequest struct {
	model.CreateBookingParams
}

func (r *CreateBookingRequest) Validate() error { return nil }

type CreateEnquiryRequest struct {
	model.CreateEnquiryParams
}

func (r *CreateEnquiryRequest) Validate() error { return nil }

// MessageResponse is the body of a successful delete.
type MessageResponse struct {
	Message string `json:"message"`
}
