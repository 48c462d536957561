// Package service holds the coordination logic between HTTP handlers
// and storage: the booking coordinator, the flight assembly and the
// fleet registry.  Services consume units of work through narrow
// interfaces so the decision logic can be exercised without a database.
package service

import (
	"context"
	"log"
	"time"

	"github.com/iliyamo/airline-reservation/internal/model"
	"github.com/iliyamo/airline-reservation/internal/queue"
	"github.com/iliyamo/airline-reservation/internal/repository"
)

// BookingUnit is the slice of a storage unit of work the booking
// coordinator needs.  Implemented by *repository.Unit.  Everything
// called between Begin and Commit shares one transaction: the seat
// state read locks the flight row, so the decide-allocate-commit
// sequence is atomic with respect to concurrent bookings.
type BookingUnit interface {
	CustomerExists(ctx context.Context, id uint64) (bool, error)
	FlightSeatState(ctx context.Context, fnum uint64) (capacity, sold uint32, err error)
	NextID(ctx context.Context, entity string) (uint64, error)
	InsertReservation(ctx context.Context, res *model.Reservation) error
	IncrementSold(ctx context.Context, fnum uint64, capacity uint32) error
	Commit() error
	Rollback() error
}

// SeatLedger answers the public remaining-seats query.  Implemented by
// *repository.FlightRepo.
type SeatLedger interface {
	RemainingSeats(ctx context.Context, fnum uint64, departure time.Time) (int64, error)
}

// ReservationEventPublisher emits a confirmed-booking event after the
// transaction commits.  Publishing is best-effort; a broker outage
// never fails a booking.
type ReservationEventPublisher interface {
	PublishReservationConfirmed(ctx context.Context, ev queue.ReservationConfirmedEvent) error
}

// BookingResult is what the coordinator reports back to the caller.
type BookingResult struct {
	ReservationID uint64
	Status        model.ReservationStatus
}

// BookingService is the booking coordinator.  Each request runs
// quote → decide → allocate → commit inside one unit of work.
type BookingService struct {
	begin  func(ctx context.Context) (BookingUnit, error)
	ledger SeatLedger
	events ReservationEventPublisher
}

// NewBookingService constructs the coordinator.  events may be nil when
// no broker is configured.
func NewBookingService(begin func(ctx context.Context) (BookingUnit, error), ledger SeatLedger, events ReservationEventPublisher) *BookingService {
	if begin == nil || ledger == nil {
		panic("nil dependency passed to NewBookingService")
	}
	return &BookingService{begin: begin, ledger: ledger, events: events}
}

// Book places one reservation for the customer on the flight.  With at
// least one remaining seat the reservation is CONFIRMED and the
// flight's sold count is incremented in the same transaction; otherwise
// it is WAITLISTED and the sold count is untouched.  Unknown customer
// or flight aborts before any write.
func (s *BookingService) Book(ctx context.Context, customerID, flightNumber uint64) (BookingResult, error) {
	if customerID == 0 {
		return BookingResult{}, invalidf("customer id is required")
	}
	if flightNumber == 0 {
		return BookingResult{}, invalidf("flight number is required")
	}

	u, err := s.begin(ctx)
	if err != nil {
		return BookingResult{}, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = u.Rollback()
		}
	}()

	ok, err := u.CustomerExists(ctx, customerID)
	if err != nil {
		return BookingResult{}, err
	}
	if !ok {
		return BookingResult{}, repository.ErrCustomerNotFound
	}

	// Quote: locks the flight row until commit.
	capacity, sold, err := u.FlightSeatState(ctx, flightNumber)
	if err != nil {
		return BookingResult{}, err
	}

	// Decide: remaining may be negative when a flight was seeded with
	// more sold seats than capacity; anything ≤ 0 waitlists.
	status := model.StatusWaitlisted
	if int64(capacity)-int64(sold) > 0 {
		status = model.StatusConfirmed
	}

	rid, err := u.NextID(ctx, repository.SeqReservation)
	if err != nil {
		return BookingResult{}, err
	}
	res := &model.Reservation{
		ID:           rid,
		CustomerID:   customerID,
		FlightNumber: flightNumber,
		Status:       status,
	}
	if err := u.InsertReservation(ctx, res); err != nil {
		return BookingResult{}, err
	}
	if status == model.StatusConfirmed {
		if err := u.IncrementSold(ctx, flightNumber, capacity); err != nil {
			return BookingResult{}, err
		}
	}
	if err := u.Commit(); err != nil {
		return BookingResult{}, err
	}
	committed = true

	if status == model.StatusConfirmed && s.events != nil {
		ev := queue.ReservationConfirmedEvent{
			ReservationID: rid,
			CustomerID:    customerID,
			FlightNumber:  flightNumber,
			ConfirmedAt:   time.Now().UTC().Format(time.RFC3339),
		}
		if err := s.events.PublishReservationConfirmed(ctx, ev); err != nil {
			log.Printf("booking: publish confirmed event failed: %v", err)
		}
	}
	return BookingResult{ReservationID: rid, Status: status}, nil
}

// RemainingSeats reports plane capacity minus sold seats for the flight
// departing at the given time.  Negative means oversold; callers treat
// it as zero availability.
func (s *BookingService) RemainingSeats(ctx context.Context, flightNumber uint64, departure time.Time) (int64, error) {
	if flightNumber == 0 {
		return 0, invalidf("flight number is required")
	}
	return s.ledger.RemainingSeats(ctx, flightNumber, departure)
}
