// Package handler is the HTTP layer that sits right after the router.
//
// It binds and validates requests, calls the service layer
// and writes the JSON responses.
package handler

import (
	"github.com/amaldanavina3112/chennai-evento-connect/internal/server"
	"github.com/amaldanavina3112/chennai-evento-connect/internal/service"
)

// Handlers groups all HTTP handlers so the router receives a single value.
type Handlers struct {
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
	Users    *UserHandler
	Events   *EventHandler
	Bookings *BookingHandler
	Enquiry  *EnquiryHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		OpenAPI:  NewOpenAPIHandler(s),
		Users:    NewUserHandler(s, services.Users, services.Bookings),
		Events:   NewEventHandler(s, services.Events),
		Bookings: NewBookingHandler(s, services.Bookings),
		Enquiry:  NewEnquiryHandler(s, services.Enquiries),
	}
}
