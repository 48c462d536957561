package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/iliyamo/airline-reservation/internal/model"
)

// ErrFlightNotFound indicates that a flight (or its crew assignment /
// schedule entry) was not located in the DB.
var ErrFlightNotFound = errors.New("flight not found")

// FlightRepo manages persistence for flights and implements the seat
// ledger reads.  Remaining capacity is always computed against the
// store: plane capacity minus sold seats, resolved through the flight's
// crew assignment.  No seat count is ever cached in memory.
type FlightRepo struct {
	db *sql.DB
}

// NewFlightRepo constructs a FlightRepo given a DB handle.
func NewFlightRepo(db *sql.DB) *FlightRepo { return &FlightRepo{db: db} }

// DB exposes the underlying sql.DB for transaction control.
func (r *FlightRepo) DB() *sql.DB { return r.db }

// CreateTx inserts a flight with its allocator-assigned number.
func (r *FlightRepo) CreateTx(ctx context.Context, tx *sql.Tx, f *model.Flight) error {
	const q = `INSERT INTO flights
		(fnum, cost, num_sold, num_stops, actual_departure_date, actual_arrival_date, arrival_airport, departure_airport)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := tx.ExecContext(ctx, q,
		f.Number, f.Cost, f.NumSold, f.NumStops,
		f.DepartureTime, f.ArrivalTime, f.ArrivalAirport, f.DepartureAirport)
	return err
}

// GetByNumber loads a single flight.
func (r *FlightRepo) GetByNumber(ctx context.Context, fnum uint64) (*model.Flight, error) {
	const q = `SELECT fnum, cost, num_sold, num_stops, actual_departure_date, actual_arrival_date,
		arrival_airport, departure_airport FROM flights WHERE fnum = ?`
	var f model.Flight
	err := r.db.QueryRowContext(ctx, q, fnum).Scan(
		&f.Number, &f.Cost, &f.NumSold, &f.NumStops,
		&f.DepartureTime, &f.ArrivalTime, &f.ArrivalAirport, &f.DepartureAirport)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrFlightNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// SeatStateTx returns the capacity of the flight's assigned plane and
// the current sold count, locking the flight row FOR UPDATE.  The lock
// makes the read-capacity-then-increment sequence atomic: a concurrent
// booking on the same flight blocks here until this transaction ends,
// so two bookings can never both observe the last free seat.
func (r *FlightRepo) SeatStateTx(ctx context.Context, tx *sql.Tx, fnum uint64) (capacity, sold uint32, err error) {
	const q = `SELECT p.seats, f.num_sold
		FROM flights f
		JOIN crew_assignments ca ON ca.flight_id = f.fnum
		JOIN planes p ON p.id = ca.plane_id
		WHERE f.fnum = ?
		FOR UPDATE`
	err = tx.QueryRowContext(ctx, q, fnum).Scan(&capacity, &sold)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, 0, ErrFlightNotFound
	}
	if err != nil {
		return 0, 0, err
	}
	return capacity, sold, nil
}

// IncrementSoldTx adds one confirmed seat to the flight.  The update is
// guarded by the capacity so that, even if the row lock were bypassed,
// a full flight can never be oversold; zero affected rows maps to
// ErrConflict and the caller should abort the unit of work.
func (r *FlightRepo) IncrementSoldTx(ctx context.Context, tx *sql.Tx, fnum uint64, capacity uint32) error {
	const q = `UPDATE flights SET num_sold = num_sold + 1 WHERE fnum = ? AND num_sold < ?`
	res, err := tx.ExecContext(ctx, q, fnum, capacity)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrConflict
	}
	return nil
}

// RemainingSeats computes plane capacity minus sold seats for the
// flight departing at the given time.  The result is signed: flights
// seeded with more sold seats than capacity report a negative number,
// which callers treat the same as zero.  Plain read, no lock; booking
// decisions go through SeatStateTx instead.
func (r *FlightRepo) RemainingSeats(ctx context.Context, fnum uint64, departure time.Time) (int64, error) {
	const q = `SELECT p.seats, f.num_sold
		FROM flights f
		JOIN crew_assignments ca ON ca.flight_id = f.fnum
		JOIN planes p ON p.id = ca.plane_id
		JOIN schedule_entries se ON se.flight_id = f.fnum
		WHERE f.fnum = ? AND se.departure_time = ?`
	var capacity, sold int64
	err := r.db.QueryRowContext(ctx, q, fnum, departure.UTC()).Scan(&capacity, &sold)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrFlightNotFound
	}
	if err != nil {
		return 0, err
	}
	return capacity - sold, nil
}
