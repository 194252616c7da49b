package main // Entry point package

import (
	"log" // Logging library

	"github.com/labstack/echo/v4"                   // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware" // Echo built-in middleware (logger, recover)

	"github.com/iliyamo/room-reservation/internal/config"     // Internal config loader
	"github.com/iliyamo/room-reservation/internal/handler"    // HTTP handlers
	"github.com/iliyamo/room-reservation/internal/middleware" // Metrics, cache and rate-limit middleware
	"github.com/iliyamo/room-reservation/internal/queue"      // Background reservation-event consumer
	"github.com/iliyamo/room-reservation/internal/repository" // In-memory stores
	"github.com/iliyamo/room-reservation/internal/router"     // Route registration
)

func main() {
	cfg := config.Load() // Load environment config (.env aware)

	// The stores are constructed once here and handed to the handlers;
	// they are the only mutable state in the process.
	roomRepo := repository.NewRoomRepo(repository.DefaultRooms())
	userRepo := repository.NewUserRepo(repository.DefaultUsers())
	reservationRepo := repository.NewReservationRepo(roomRepo, userRepo)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())  // request logging
	e.Use(echomw.Recover()) // recover panics into 500s

	// Observe every request before caching or rate limiting can short-circuit it.
	e.Use(middleware.NewMetrics().Middleware())

	// Redis is optional: when unavailable both middlewares become no-ops.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable: response cache and rate limiting disabled")
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	router.RegisterRoutes(e) // health, metrics, static front page
	router.RegisterBooking(e,
		handler.NewRoomHandler(roomRepo),
		handler.NewUserHandler(userRepo),
		handler.NewReservationHandler(reservationRepo, roomRepo, userRepo),
	)

	// Consume reservation events in the background; the loop reconnects
	// on broker failures and never takes the server down.
	go func() {
		if err := queue.StartReservationConsumer(); err != nil {
			log.Printf("reservation consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
