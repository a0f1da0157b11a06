package handler

import (
	"github.com/amaldanavina3112/chennai-evento-connect/internal/model"
	"github.com/amaldanavina3112/chennai-evento-connect/internal/server"
	"github.com/amaldanavina3112/chennai-evento-connect/internal/service"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	Handler
	bookings *service.BookingService
}

func NewBookingHandler(s *server.Server, bookings *service.BookingService) *BookingHandler {
	return &BookingHandler{
		Handler:  NewHandler(s),
		bookings: bookings,
	}
}

func (h *BookingHandler) CreateBooking(c echo.Context, req *CreateBookingRequest) (*model.Booking, error) {
	return h.bookings.Create(c.Request().Context(), req.CreateBookingParams)
}

type EnquiryHandler struct {
	Handler
	enquiries *service.EnquiryService
}

func NewEnquiryHandler(s *server.Server, enquiries *service.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{
		Handler:   NewHandler(s),
		enquiries: enquiries,
	}
}

func (h *EnquiryHandler) SubmitEnquiry(c echo.Context, req *CreateEnquiryRequest) (*model.Enquiry, error) {
	return h.enquiries.Submit(c.Request().Context(), req.CreateEnquiryParams)
}
