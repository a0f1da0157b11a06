package handler

import (
	"github.com/amaldanavina3112/chennai-evento-connect/internal/model"
	"github.com/amaldanavina3112/chennai-evento-connect/internal/server"
	"github.com/amaldanavina3112/chennai-evento-connect/internal/service"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	Handler
	users    *service.UserService
	bookings *service.BookingService
}

func NewUserHandler(s *server.Server, users *service.UserService, bookings *service.BookingService) *UserHandler {
	return &UserHandler{
		Handler:  NewHandler(s),
		users:    users,
		bookings: bookings,
	}
}

func (h *UserHandler) ListUsers(c echo.Context, _ *EmptyRequest) ([]model.User, error) {
	return h.users.List(c.Request().Context())
}

func (h *UserHandler) GetUser(c echo.Context, req *ResourceIDRequest) (*model.User, error) {
	return h.users.Get(c.Request().Context(), req.ID)
}

func (h *UserHandler) CreateUser(c echo.Context, req *CreateUserRequest) (*model.User, error) {
	return h.users.Create(c.Request().Context(), req.CreateUserParams)
}

func (h *UserHandler) UpdateUser(c echo.Context, req *UpdateUserRequest) (*model.User, error) {
	return h.users.Update(c.Request().Context(), req.ID, req.UpdateUserParams)
}

func (h *UserHandler) DeleteUser(c echo.Context, req *ResourceIDRequest) (*MessageResponse, error) {
	if err := h.users.Delete(c.Request().Context(), req.ID); err != nil {
		return nil, err
	}
	return &MessageResponse{Message: "User deleted successfully"}, nil
}

func (h *UserHandler) ListUserBookings(c echo.Context, req *ResourceIDRequest) ([]model.UserBooking, error) {
	return h.bookings.ListForUser(c.Request().Context(), req.ID)
}
