package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/airline-reservation/internal/model"
	"github.com/iliyamo/airline-reservation/internal/repository"
	"github.com/iliyamo/airline-reservation/internal/service"
)

// Booker places reservations.  Implemented by *service.BookingService.
type Booker interface {
	Book(ctx context.Context, customerID, flightNumber uint64) (service.BookingResult, error)
}

// BookingHandler exposes reservation placement and the customer's own
// reservation list.
type BookingHandler struct {
	Bookings     Booker
	Reservations *repository.ReservationRepo
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(b Booker, rsv *repository.ReservationRepo) *BookingHandler {
	if b == nil || rsv == nil {
		panic("nil dependency passed to NewBookingHandler")
	}
	return &BookingHandler{Bookings: b, Reservations: rsv}
}

// Book handles POST /v1/flights/:fnum/reservations.  Returns 201 with
// status CONFIRMED when a seat was secured and WAITLISTED when the
// flight is full.
func (h *BookingHandler) Book(c echo.Context) error {
	customerID, err := getCustomerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	fnum, err := strconv.ParseUint(c.Param("fnum"), 10, 64)
	if err != nil || fnum == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid flight number"})
	}

	result, err := h.Bookings.Book(c.Request().Context(), customerID, fnum)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"reservation_id": result.ReservationID,
		"flight_number":  fnum,
		"status":         string(result.Status),
		"confirmed":      result.Status == model.StatusConfirmed,
	})
}

// MyReservations handles GET /v1/my-reservations and lists the
// authenticated customer's reservations joined with flight details.
func (h *BookingHandler) MyReservations(c echo.Context) error {
	customerID, err := getCustomerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	details, err := h.Reservations.ListByCustomer(c.Request().Context(), customerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"reservations": details})
}
