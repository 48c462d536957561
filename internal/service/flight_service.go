package service

import (
	"context"
	"strings"
	"time"

	"github.com/iliyamo/airline-reservation/internal/model"
	"github.com/iliyamo/airline-reservation/internal/repository"
)

// AssemblyUnit is the unit-of-work surface of the flight assembly.
// Implemented by *repository.Unit.
type AssemblyUnit interface {
	PilotExists(ctx context.Context, id uint64) (bool, error)
	PlaneExists(ctx context.Context, id uint64) (bool, error)
	NextID(ctx context.Context, entity string) (uint64, error)
	InsertFlight(ctx context.Context, f *model.Flight) error
	InsertCrewAssignment(ctx context.Context, ca *model.CrewAssignment) error
	InsertScheduleEntry(ctx context.Context, se *model.ScheduleEntry) error
	Commit() error
	Rollback() error
}

// FlightInput carries everything needed to assemble a flight.
type FlightInput struct {
	Cost             uint32
	SoldSeats        uint32
	Stops            uint32
	Departure        time.Time
	Arrival          time.Time
	ArrivalAirport   string
	DepartureAirport string
	PilotID          uint64
	PlaneID          uint64
}

// FlightService assembles flights: the flight row, its crew assignment
// and its schedule entry are written as one unit so a flight can never
// exist without the other two.
type FlightService struct {
	begin func(ctx context.Context) (AssemblyUnit, error)
}

// NewFlightService constructs the assembly service.
func NewFlightService(begin func(ctx context.Context) (AssemblyUnit, error)) *FlightService {
	if begin == nil {
		panic("nil begin passed to NewFlightService")
	}
	return &FlightService{begin: begin}
}

// CreateFlight validates the input, verifies the pilot and plane exist,
// allocates the three identifiers and writes all three rows in one
// transaction.  Returns the new flight number.  Any failure leaves no
// partial rows behind.
func (s *FlightService) CreateFlight(ctx context.Context, in FlightInput) (uint64, error) {
	in.ArrivalAirport = strings.ToUpper(strings.TrimSpace(in.ArrivalAirport))
	in.DepartureAirport = strings.ToUpper(strings.TrimSpace(in.DepartureAirport))
	if in.PilotID == 0 {
		return 0, invalidf("pilot id is required")
	}
	if in.PlaneID == 0 {
		return 0, invalidf("plane id is required")
	}
	if in.ArrivalAirport == "" || len(in.ArrivalAirport) > 5 {
		return 0, invalidf("arrival airport code must be 1-5 characters")
	}
	if in.DepartureAirport == "" || len(in.DepartureAirport) > 5 {
		return 0, invalidf("departure airport code must be 1-5 characters")
	}
	if in.Departure.IsZero() || in.Arrival.IsZero() {
		return 0, invalidf("departure and arrival times are required")
	}
	if !in.Arrival.After(in.Departure) {
		return 0, invalidf("arrival must be after departure")
	}

	u, err := s.begin(ctx)
	if err != nil {
		return 0, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = u.Rollback()
		}
	}()

	ok, err := u.PilotExists(ctx, in.PilotID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, repository.ErrPilotNotFound
	}
	ok, err = u.PlaneExists(ctx, in.PlaneID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, repository.ErrPlaneNotFound
	}

	fnum, err := u.NextID(ctx, repository.SeqFlight)
	if err != nil {
		return 0, err
	}
	flight := &model.Flight{
		Number:           fnum,
		Cost:             in.Cost,
		NumSold:          in.SoldSeats,
		NumStops:         in.Stops,
		DepartureTime:    in.Departure.UTC(),
		ArrivalTime:      in.Arrival.UTC(),
		ArrivalAirport:   in.ArrivalAirport,
		DepartureAirport: in.DepartureAirport,
	}
	if err := u.InsertFlight(ctx, flight); err != nil {
		return 0, err
	}

	crewID, err := u.NextID(ctx, repository.SeqCrew)
	if err != nil {
		return 0, err
	}
	if err := u.InsertCrewAssignment(ctx, &model.CrewAssignment{
		ID:           crewID,
		FlightNumber: fnum,
		PilotID:      in.PilotID,
		PlaneID:      in.PlaneID,
	}); err != nil {
		return 0, err
	}

	schedID, err := u.NextID(ctx, repository.SeqSchedule)
	if err != nil {
		return 0, err
	}
	// Schedule times copy the flight's exactly; written in the same
	// transaction so the two can never diverge.
	if err := u.InsertScheduleEntry(ctx, &model.ScheduleEntry{
		ID:            schedID,
		FlightNumber:  fnum,
		DepartureTime: flight.DepartureTime,
		ArrivalTime:   flight.ArrivalTime,
	}); err != nil {
		return 0, err
	}

	if err := u.Commit(); err != nil {
		return 0, err
	}
	committed = true
	return fnum, nil
}
