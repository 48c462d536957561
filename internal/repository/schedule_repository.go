package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/airline-reservation/internal/model"
)

// ScheduleEntryRepo manages persistence for schedule entries.
type ScheduleEntryRepo struct {
	db *sql.DB
}

// NewScheduleEntryRepo constructs a ScheduleEntryRepo given a DB handle.
func NewScheduleEntryRepo(db *sql.DB) *ScheduleEntryRepo {
	return &ScheduleEntryRepo{db: db}
}

// CreateTx inserts a schedule entry.  The departure and arrival times
// must equal the owning flight's timestamps; both rows are written in
// the same flight assembly transaction.
func (r *ScheduleEntryRepo) CreateTx(ctx context.Context, tx *sql.Tx, se *model.ScheduleEntry) error {
	const q = `INSERT INTO schedule_entries (id, flight_id, departure_time, arrival_time) VALUES (?, ?, ?, ?)`
	_, err := tx.ExecContext(ctx, q, se.ID, se.FlightNumber, se.DepartureTime, se.ArrivalTime)
	return err
}

// GetByFlight loads the schedule entry created alongside a flight.
func (r *ScheduleEntryRepo) GetByFlight(ctx context.Context, fnum uint64) (*model.ScheduleEntry, error) {
	const q = `SELECT id, flight_id, departure_time, arrival_time FROM schedule_entries WHERE flight_id = ?`
	var se model.ScheduleEntry
	err := r.db.QueryRowContext(ctx, q, fnum).Scan(&se.ID, &se.FlightNumber, &se.DepartureTime, &se.ArrivalTime)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrFlightNotFound
	}
	if err != nil {
		return nil, err
	}
	return &se, nil
}
