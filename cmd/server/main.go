package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/airline-reservation/internal/config"
	"github.com/iliyamo/airline-reservation/internal/database"
	"github.com/iliyamo/airline-reservation/internal/handler"
	"github.com/iliyamo/airline-reservation/internal/queue"
	"github.com/iliyamo/airline-reservation/internal/repository"
	"github.com/iliyamo/airline-reservation/internal/router"
	"github.com/iliyamo/airline-reservation/internal/service"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	// Repositories share the one pooled handle.
	seq := repository.NewSequenceRepo(db)
	planes := repository.NewPlaneRepo(db)
	pilots := repository.NewPilotRepo(db)
	technicians := repository.NewTechnicianRepo(db)
	customers := repository.NewCustomerRepo(db, seq)
	flights := repository.NewFlightRepo(db)
	crews := repository.NewCrewAssignmentRepo(db)
	schedules := repository.NewScheduleEntryRepo(db)
	reservations := repository.NewReservationRepo(db)
	repairs := repository.NewRepairRepo(db)
	tokens := repository.NewTokenRepo(db)

	store := repository.NewStore(db, seq, planes, pilots, technicians, customers,
		flights, crews, schedules, reservations)

	var events service.ReservationEventPublisher
	if cfg.AMQPURL != "" {
		events = queue.NewPublisher(cfg.AMQPURL)
		go func() {
			if err := queue.StartReservationConsumer(cfg.AMQPURL); err != nil {
				log.Printf("reservation consumer stopped: %v", err)
			}
		}()
	} else {
		log.Println("AMQP_URL not set; booking events disabled")
	}

	bookings := service.NewBookingService(
		func(ctx context.Context) (service.BookingUnit, error) { return store.Begin(ctx) },
		flights, events)
	flightSvc := service.NewFlightService(
		func(ctx context.Context) (service.AssemblyUnit, error) { return store.Begin(ctx) })
	fleet := service.NewFleetService(
		func(ctx context.Context) (service.FleetUnit, error) { return store.Begin(ctx) })

	h := router.Handlers{
		Auth:    handler.NewAuthHandler(cfg, customers, tokens),
		Flight:  handler.NewFlightHandler(flightSvc, bookings),
		Booking: handler.NewBookingHandler(bookings, reservations),
		Fleet:   handler.NewFleetHandler(fleet),
		Report:  handler.NewReportHandler(repairs, reservations),
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; rate limiting disabled")
	}

	e := echo.New()
	e.HideBanner = true
	router.Register(e, h, cfg.JWTSecret, config.LoadRateLimitConfig(), rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
