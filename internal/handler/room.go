package handler // handler package contains the HTTP handlers for the booking API

import (
	"net/http" // http provides status code constants
	"strings"  // strings offers trimming utilities

	"github.com/labstack/echo/v4" // echo is the web framework used for handlers

	"github.com/iliyamo/room-reservation/internal/model"      // model defines the wire structs
	"github.com/iliyamo/room-reservation/internal/repository" // repository holds the in-memory stores
)

// RoomHandler exposes the room catalog over HTTP.  Rooms can be listed
// and added; there is no update or delete endpoint because the catalog
// is append-only.
type RoomHandler struct {
	RoomRepo *repository.RoomRepo // access to the room catalog
}

// NewRoomHandler constructs a RoomHandler.  The repository must be non-nil.
func NewRoomHandler(roomRepo *repository.RoomRepo) *RoomHandler {
	if roomRepo == nil {
		panic("nil repository passed to NewRoomHandler")
	}
	return &RoomHandler{RoomRepo: roomRepo}
}

// ListRooms handles GET /rooms and returns every catalog room in
// insertion order.
func (h *RoomHandler) ListRooms(c echo.Context) error {
	return c.JSON(http.StatusOK, h.RoomRepo.List()) // the store returns a copy, safe to serialize directly
}

// CreateRoom handles POST /rooms.  The body must carry a non-empty
// "name" and a positive "capacity"; the capacity may arrive as a JSON
// number or a numeric string and is coerced to an integer.  On success
// the created room is returned with a 201 status.
func (h *RoomHandler) CreateRoom(c echo.Context) error {
	var body struct { // anonymous struct to bind incoming JSON
		Name     string        `json:"name"`     // room name, required
		Capacity model.FlexInt `json:"capacity"` // seat capacity, required and positive
	}
	if err := c.Bind(&body); err != nil { // a malformed body or a non-numeric capacity fails the bind
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name et capacity requis"})
	}
	name := strings.TrimSpace(body.Name) // trim spaces around the room name

	room, err := h.RoomRepo.Add(name, body.Capacity.Int64())
	if err != nil { // the store only rejects invalid input; catalogs cannot conflict
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name et capacity requis"})
	}
	return c.JSON(http.StatusCreated, room) // return 201 and the created room on success
}
