package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/airline-reservation/internal/model"
)

// ErrPilotNotFound indicates that a pilot was not located in the DB.
var ErrPilotNotFound = errors.New("pilot not found")

// PilotRepo manages persistence for pilots.
type PilotRepo struct {
	db *sql.DB
}

// NewPilotRepo constructs a PilotRepo given a DB handle.
func NewPilotRepo(db *sql.DB) *PilotRepo { return &PilotRepo{db: db} }

// CreateTx inserts a pilot with its allocator-assigned identifier.
func (r *PilotRepo) CreateTx(ctx context.Context, tx *sql.Tx, p *model.Pilot) error {
	const q = `INSERT INTO pilots (id, fullname, nationality) VALUES (?, ?, ?)`
	_, err := tx.ExecContext(ctx, q, p.ID, p.FullName, p.Nationality)
	return err
}

// GetByID loads a single pilot.  Returns ErrPilotNotFound when no row exists.
func (r *PilotRepo) GetByID(ctx context.Context, id uint64) (*model.Pilot, error) {
	const q = `SELECT id, fullname, nationality FROM pilots WHERE id = ?`
	var p model.Pilot
	err := r.db.QueryRowContext(ctx, q, id).Scan(&p.ID, &p.FullName, &p.Nationality)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPilotNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ExistsTx reports whether a pilot row exists within the transaction.
func (r *PilotRepo) ExistsTx(ctx context.Context, tx *sql.Tx, id uint64) (bool, error) {
	var one int
	err := tx.QueryRowContext(ctx, `SELECT 1 FROM pilots WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
