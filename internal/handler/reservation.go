package handler // handler package contains the HTTP handlers for the booking API

import (
	"context"  // context carries cancellation for the fire-and-forget publishes
	"errors"   // errors.Is maps store sentinels to HTTP responses
	"net/http" // http provides status code constants
	"strconv"  // strconv parses the id path parameter
	"time"     // timestamps for the published events

	"github.com/labstack/echo/v4" // echo is the web framework used for handlers

	"github.com/iliyamo/room-reservation/internal/model"      // model defines the wire structs
	"github.com/iliyamo/room-reservation/internal/queue"      // queue defines the broker event payloads
	"github.com/iliyamo/room-reservation/internal/repository" // repository holds the in-memory stores
	queue_publisher "github.com/iliyamo/room-reservation/internal/service"
)

// ReservationHandler exposes the reservation ledger over HTTP.  All
// validation lives in the repository layer; the handler only binds the
// request, maps sentinel errors to responses and emits broker events
// on successful mutations.
type ReservationHandler struct {
	ReservationRepo *repository.ReservationRepo // access to the ledger
	RoomRepo        *repository.RoomRepo        // room lookups for event payloads
	UserRepo        *repository.UserRepo        // user lookups for event payloads
}

// NewReservationHandler constructs a ReservationHandler.  All
// dependencies must be non-nil.
func NewReservationHandler(reservationRepo *repository.ReservationRepo, roomRepo *repository.RoomRepo, userRepo *repository.UserRepo) *ReservationHandler {
	if reservationRepo == nil || roomRepo == nil || userRepo == nil {
		panic("nil repository passed to NewReservationHandler")
	}
	return &ReservationHandler{
		ReservationRepo: reservationRepo,
		RoomRepo:        roomRepo,
		UserRepo:        userRepo,
	}
}

// CreateReservation handles POST /reservations.  The body must carry
// "roomId", "userId" and "date"; the ids may arrive as JSON numbers or
// numeric strings and are coerced to integers before any comparison.
// The ledger rejects the request when a field is missing, the room or
// user is unknown, or the room is already booked for that date.
func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	var body struct { // anonymous struct to bind incoming JSON
		RoomID model.FlexInt `json:"roomId"` // room to book, required
		UserID model.FlexInt `json:"userId"` // booking user, required
		Date   string        `json:"date"`   // opaque date string, required
	}
	if err := c.Bind(&body); err != nil { // malformed bodies and non-numeric ids count as missing input
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "roomId, userId, date requis"})
	}

	res, err := h.ReservationRepo.Create(body.RoomID.Int64(), body.UserID.Int64(), body.Date)
	if err != nil {
		switch { // the check order inside the ledger decides which error surfaces
		case errors.Is(err, repository.ErrInvalidInput):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "roomId, userId, date requis"})
		case errors.Is(err, repository.ErrRoomNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Salle introuvable"})
		case errors.Is(err, repository.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Utilisateur introuvable"})
		case errors.Is(err, repository.ErrConflict):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Salle déjà réservée à cette date"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create reservation"})
	}

	// Publish the created event off the request path; a broker outage
	// must never fail the booking itself.
	event := queue.ReservationCreatedEvent{
		ReservationID: res.ID,
		RoomID:        res.RoomID,
		UserID:        res.UserID,
		Date:          res.Date,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	if room, ok := h.RoomRepo.GetByID(res.RoomID); ok {
		event.RoomName = room.Name
	}
	if user, ok := h.UserRepo.GetByID(res.UserID); ok {
		event.UserName = user.Name
	}
	go func() { _ = queue_publisher.PublishReservationCreated(context.Background(), event) }()

	return c.JSON(http.StatusCreated, res) // return 201 and the created reservation on success
}

// ListReservations handles GET /reservations and returns every live
// reservation in insertion order.
func (h *ReservationHandler) ListReservations(c echo.Context) error {
	return c.JSON(http.StatusOK, h.ReservationRepo.List())
}

// DeleteReservation handles DELETE /reservations/:id.  Deletion is
// idempotent and always answers 200: the message tells the caller
// whether a reservation was actually removed.  An unparsable id simply
// matches nothing, the same way a numeric id that was never issued
// does.
func (h *ReservationHandler) DeleteReservation(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64) // parse the reservation id from the URL
	if err != nil {
		return c.JSON(http.StatusOK, echo.Map{"message": "Aucune réservation trouvée"})
	}

	if !h.ReservationRepo.DeleteByID(id) {
		return c.JSON(http.StatusOK, echo.Map{"message": "Aucune réservation trouvée"})
	}

	event := queue.ReservationCancelledEvent{
		ReservationID: id,
		CancelledAt:   time.Now().UTC().Format(time.RFC3339),
	}
	go func() { _ = queue_publisher.PublishReservationCancelled(context.Background(), event) }()

	return c.JSON(http.StatusOK, echo.Map{"message": "Réservation supprimée"})
}
