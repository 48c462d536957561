package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/airline-reservation/internal/model"
)

// CrewAssignmentRepo manages persistence for crew assignments, the
// record linking a flight to its pilot and plane.
type CrewAssignmentRepo struct {
	db *sql.DB
}

// NewCrewAssignmentRepo constructs a CrewAssignmentRepo given a DB handle.
func NewCrewAssignmentRepo(db *sql.DB) *CrewAssignmentRepo {
	return &CrewAssignmentRepo{db: db}
}

// CreateTx inserts a crew assignment.  Always called from the flight
// assembly transaction, never on its own: a flight without its
// assignment must not become visible.
func (r *CrewAssignmentRepo) CreateTx(ctx context.Context, tx *sql.Tx, ca *model.CrewAssignment) error {
	const q = `INSERT INTO crew_assignments (id, flight_id, pilot_id, plane_id) VALUES (?, ?, ?, ?)`
	_, err := tx.ExecContext(ctx, q, ca.ID, ca.FlightNumber, ca.PilotID, ca.PlaneID)
	return err
}

// GetByFlight loads the assignment for a flight.
func (r *CrewAssignmentRepo) GetByFlight(ctx context.Context, fnum uint64) (*model.CrewAssignment, error) {
	const q = `SELECT id, flight_id, pilot_id, plane_id FROM crew_assignments WHERE flight_id = ?`
	var ca model.CrewAssignment
	err := r.db.QueryRowContext(ctx, q, fnum).Scan(&ca.ID, &ca.FlightNumber, &ca.PilotID, &ca.PlaneID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrFlightNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ca, nil
}
