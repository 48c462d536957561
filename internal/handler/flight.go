package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/airline-reservation/internal/service"
)

// FlightAssembler creates flights together with their crew assignment
// and schedule entry.  Implemented by *service.FlightService.
type FlightAssembler interface {
	CreateFlight(ctx context.Context, in service.FlightInput) (uint64, error)
}

// SeatCounter answers remaining-seat queries.  Implemented by
// *service.BookingService.
type SeatCounter interface {
	RemainingSeats(ctx context.Context, flightNumber uint64, departure time.Time) (int64, error)
}

// FlightHandler exposes flight creation to staff and the public
// remaining-seats lookup.
type FlightHandler struct {
	Flights FlightAssembler
	Seats   SeatCounter
}

// NewFlightHandler constructs a FlightHandler.
func NewFlightHandler(flights FlightAssembler, seats SeatCounter) *FlightHandler {
	if flights == nil || seats == nil {
		panic("nil dependency passed to NewFlightHandler")
	}
	return &FlightHandler{Flights: flights, Seats: seats}
}

type createFlightReq struct {
	Cost             uint32    `json:"cost"`
	SoldSeats        uint32    `json:"sold_seats"`
	Stops            uint32    `json:"stops"`
	Departure        time.Time `json:"departure"`
	Arrival          time.Time `json:"arrival"`
	ArrivalAirport   string    `json:"arrival_airport"`
	DepartureAirport string    `json:"departure_airport"`
	PilotID          uint64    `json:"pilot_id"`
	PlaneID          uint64    `json:"plane_id"`
}

// CreateFlight handles POST /v1/flights.  The pilot and plane must
// already exist; the flight, its crew assignment and its schedule entry
// are created atomically.
func (h *FlightHandler) CreateFlight(c echo.Context) error {
	var req createFlightReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	fnum, err := h.Flights.CreateFlight(c.Request().Context(), service.FlightInput{
		Cost:             req.Cost,
		SoldSeats:        req.SoldSeats,
		Stops:            req.Stops,
		Departure:        req.Departure,
		Arrival:          req.Arrival,
		ArrivalAirport:   req.ArrivalAirport,
		DepartureAirport: req.DepartureAirport,
		PilotID:          req.PilotID,
		PlaneID:          req.PlaneID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"flight_number": fnum})
}

// RemainingSeats handles GET /v1/flights/:fnum/seats?departure=RFC3339.
// The count may be negative for oversold flights; clients treat
// anything not positive as zero availability.
func (h *FlightHandler) RemainingSeats(c echo.Context) error {
	fnum, err := strconv.ParseUint(c.Param("fnum"), 10, 64)
	if err != nil || fnum == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid flight number"})
	}
	departure, err := time.Parse(time.RFC3339, c.QueryParam("departure"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "departure must be RFC3339"})
	}
	remaining, err := h.Seats.RemainingSeats(c.Request().Context(), fnum, departure)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"flight_number":   fnum,
		"remaining_seats": remaining,
	})
}
