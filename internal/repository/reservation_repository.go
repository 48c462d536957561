package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/airline-reservation/internal/model"
)

// ReservationRepo manages persistence for reservations.  Rows are
// created once by the booking coordinator with their status fixed;
// nothing in this service updates or deletes them afterwards.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// CreateTx inserts a reservation with its allocator-assigned identifier
// inside the booking transaction.  The caller commits the reservation
// together with the sold-seat update or neither.
func (r *ReservationRepo) CreateTx(ctx context.Context, tx *sql.Tx, res *model.Reservation) error {
	const q = `INSERT INTO reservations (rnum, customer_id, flight_id, status) VALUES (?, ?, ?, ?)`
	_, err := tx.ExecContext(ctx, q, res.ID, res.CustomerID, res.FlightNumber, string(res.Status))
	return err
}

// ReservationDetail is a reservation joined with its flight for display
// to customers.
type ReservationDetail struct {
	ID               uint64    `json:"id"`
	FlightNumber     uint64    `json:"flight_number"`
	Status           string    `json:"status"`
	DepartureAirport string    `json:"departure_airport"`
	ArrivalAirport   string    `json:"arrival_airport"`
	DepartureTime    time.Time `json:"departure_time"`
	ArrivalTime      time.Time `json:"arrival_time"`
	Cost             uint32    `json:"cost"`
}

// ListByCustomer returns all reservations held by a customer, newest
// first.  When none exist an empty slice is returned.
func (r *ReservationRepo) ListByCustomer(ctx context.Context, customerID uint64) ([]ReservationDetail, error) {
	const q = `SELECT r.rnum, r.flight_id, r.status,
			f.departure_airport, f.arrival_airport,
			f.actual_departure_date, f.actual_arrival_date, f.cost
		FROM reservations r
		JOIN flights f ON f.fnum = r.flight_id
		WHERE r.customer_id = ?
		ORDER BY r.rnum DESC`
	rows, err := r.db.QueryContext(ctx, q, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	details := make([]ReservationDetail, 0)
	for rows.Next() {
		var d ReservationDetail
		if err := rows.Scan(
			&d.ID, &d.FlightNumber, &d.Status,
			&d.DepartureAirport, &d.ArrivalAirport,
			&d.DepartureTime, &d.ArrivalTime, &d.Cost,
		); err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return details, nil
}

// StatusCount pairs a reservation status with the number of
// reservations in that state.
type StatusCount struct {
	Status string `json:"status"`
	Count  uint64 `json:"count"`
}

// CountByStatus groups all reservations by status for reporting.
func (r *ReservationRepo) CountByStatus(ctx context.Context) ([]StatusCount, error) {
	const q = `SELECT status, COUNT(*) FROM reservations GROUP BY status`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	counts := make([]StatusCount, 0)
	for rows.Next() {
		var sc StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}
