package handler

import (
	"github.com/amaldanavina3112/chennai-evento-connect/internal/model"
	"github.com/amaldanavina3112/chennai-evento-connect/internal/server"
	"github.com/amaldanavina3112/chennai-evento-connect/internal/service"
	"github.com/labstack/echo/v4"
)

type EventHandler struct {
	Handler
	events *service.EventService
}

func NewEventHandler(s *server.Server, events *service.EventService) *EventHandler {
	return &EventHandler{
		Handler: NewHandler(s),
		events:  events,
	}
}

// ListEvents serves both the full listing and ?search=.
func (h *EventHandler) ListEvents(c echo.Context, req *ListEventsRequest) ([]model.Event, error) {
	return h.events.List(c.Request().Context(), req.Search)
}

func (h *EventHandler) GetEvent(c echo.Context, req *ResourceIDRequest) (*model.Event, error) {
	return h.events.Get(c.Request().Context(), req.ID)
}

func (h *EventHandler) CreateEvent(c echo.Context, req *CreateEventRequest) (*model.Event, error) {
	return h.events.Create(c.Request().Context(), req.CreateEventParams)
}

func (h *EventHandler) UpdateEvent(c echo.Context, req *UpdateEventRequest) (*model.Event, error) {
	return h.events.Update(c.Request().Context(), req.ID, req.UpdateEventParams)
}

func (h *EventHandler) DeleteEvent(c echo.Context, req *ResourceIDRequest) (*MessageResponse, error) {
	if err := h.events.Delete(c.Request().Context(), req.ID); err != nil {
		return nil, err
	}
	return &MessageResponse{Message: "Event deleted successfully"}, nil
}

func (h *EventHandler) GetAvailability(c echo.Context, req *ResourceIDRequest) (*model.Availability, error) {
	return h.events.Availability(c.Request().Context(), req.ID)
}

func (h *EventHandler) GetRevenue(c echo.Context, req *ResourceIDRequest) (*model.EventRevenue, error) {
	return h.events.Revenue(c.Request().Context(), req.ID)
}
