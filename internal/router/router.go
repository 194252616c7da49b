package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iliyamo/room-reservation/internal/handler" // import the handlers that implement the API
)

// RegisterRoutes registers the operational endpoints on the provided
// Echo instance: the health check used by load balancers, the
// Prometheus scrape endpoint and the static front page.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
	// Expose the default Prometheus registry (request metrics plus the
	// Go and process collectors) for scraping.
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	// Serve the static front page (public/index.html) at the root.
	e.Static("/", "public")
}

// RegisterBooking registers the booking API: the room and user
// catalogs and the reservation ledger.  All endpoints are public;
// validation happens in the repository layer and the handlers only
// translate results onto the wire.
func RegisterBooking(e *echo.Echo, rooms *handler.RoomHandler, users *handler.UserHandler, reservations *handler.ReservationHandler) {
	// List all rooms in the catalog.
	e.GET("/rooms", rooms.ListRooms)
	// Add a room to the catalog; name and capacity are required.
	e.POST("/rooms", rooms.CreateRoom)
	// List the seeded users.
	e.GET("/users", users.ListUsers)
	// Create a reservation; rejects unknown rooms/users and date conflicts.
	e.POST("/reservations", reservations.CreateReservation)
	// List all live reservations.
	e.GET("/reservations", reservations.ListReservations)
	// Delete a reservation by id; idempotent, always answers 200.
	e.DELETE("/reservations/:id", reservations.DeleteReservation)
}
