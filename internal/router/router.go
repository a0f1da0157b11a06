// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"net/http"

	"github.com/amaldanavina3112/chennai-evento-connect/internal/handler"
	"github.com/amaldanavina3112/chennai-evento-connect/internal/middleware"
	"github.com/amaldanavina3112/chennai-evento-connect/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the echo instance with the global middleware chain and
// every route.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.Recover(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
	)

	registerSystemRoutes(router, h)

	api := router.Group("/api")
	api.GET("/health", h.Health.CheckHealth)
	registerAPIRoutes(api, h, middlewares.RateLimit.Limit())

	return router
}

// registerAPIRoutes mounts the resource routes. Writes go through the rate
// limiter; reads do not.
func registerAPIRoutes(api *echo.Group, h *handler.Handlers, limit echo.MiddlewareFunc) {
	users := api.Group("/users")
	users.GET("", handler.Handle(h.Users.Handler, h.Users.ListUsers, http.StatusOK, &handler.EmptyRequest{}))
	users.POST("", handler.Handle(h.Users.Handler, h.Users.CreateUser, http.StatusCreated, &handler.CreateUserRequest{}), limit)
	users.GET("/:id", handler.Handle(h.Users.Handler, h.Users.GetUser, http.StatusOK, &handler.ResourceIDRequest{}))
	users.PUT("/:id", handler.Handle(h.Users.Handler, h.Users.UpdateUser, http.StatusOK, &handler.UpdateUserRequest{}), limit)
	users.DELETE("/:id", handler.Handle(h.Users.Handler, h.Users.DeleteUser, http.StatusOK, &handler.ResourceIDRequest{}), limit)
	users.GET("/:id/bookings", handler.Handle(h.Users.Handler, h.Users.ListUserBookings, http.StatusOK, &handler.ResourceIDRequest{}))

	events := api.Group("/events")
	events.GET("", handler.Handle(h.Events.Handler, h.Events.ListEvents, http.StatusOK, &handler.ListEventsRequest{}))
	events.POST("", handler.Handle(h.Events.Handler, h.Events.CreateEvent, http.StatusCreated, &handler.CreateEventRequest{}), limit)
	events.GET("/:id", handler.Handle(h.Events.Handler, h.Events.GetEvent, http.StatusOK, &handler.ResourceIDRequest{}))
	events.PUT("/:id", handler.Handle(h.Events.Handler, h.Events.UpdateEvent, http.StatusOK, &handler.UpdateEventRequest{}), limit)
	events.DELETE("/:id", handler.Handle(h.Events.Handler, h.Events.DeleteEvent, http.StatusOK, &handler.ResourceIDRequest{}), limit)
	events.GET("/:id/availability", handler.Handle(h.Events.Handler, h.Events.GetAvailability, http.StatusOK, &handler.ResourceIDRequest{}))
	events.GET("/:id/revenue", handler.Handle(h.Events.Handler, h.Events.GetRevenue, http.StatusOK, &handler.ResourceIDRequest{}))

	api.POST("/bookings", handler.Handle(h.Bookings.Handler, h.Bookings.CreateBooking, http.StatusCreated, &handler.CreateBookingRequest{}), limit)
	api.POST("/enquiries", handler.Handle(h.Enquiry.Handler, h.Enquiry.SubmitEnquiry, http.StatusCreated, &handler.CreateEnquiryRequest{}), limit)
}
