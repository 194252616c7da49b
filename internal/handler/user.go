package handler // handler package contains the HTTP handlers for the booking API

import (
	"net/http" // http provides status code constants

	"github.com/labstack/echo/v4" // echo is the web framework used for handlers

	"github.com/iliyamo/room-reservation/internal/repository" // repository holds the in-memory stores
)

// UserHandler exposes the read-only user catalog over HTTP.
type UserHandler struct {
	UserRepo *repository.UserRepo // access to the seeded user set
}

// NewUserHandler constructs a UserHandler.  The repository must be non-nil.
func NewUserHandler(userRepo *repository.UserRepo) *UserHandler {
	if userRepo == nil {
		panic("nil repository passed to NewUserHandler")
	}
	return &UserHandler{UserRepo: userRepo}
}

// ListUsers handles GET /users and returns the seeded users in
// insertion order.
func (h *UserHandler) ListUsers(c echo.Context) error {
	return c.JSON(http.StatusOK, h.UserRepo.List())
}
