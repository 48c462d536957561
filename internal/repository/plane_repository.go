package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/airline-reservation/internal/model"
)

// ErrPlaneNotFound indicates that a plane was not located in the DB.
var ErrPlaneNotFound = errors.New("plane not found")

// PlaneRepo manages persistence for planes.
type PlaneRepo struct {
	db *sql.DB
}

// NewPlaneRepo constructs a PlaneRepo given a DB handle.
func NewPlaneRepo(db *sql.DB) *PlaneRepo { return &PlaneRepo{db: db} }

// DB exposes the underlying sql.DB.  It allows callers to begin
// transactions spanning multiple repositories.
func (r *PlaneRepo) DB() *sql.DB { return r.db }

// CreateTx inserts a plane with its allocator-assigned identifier inside
// the provided transaction.  The caller must commit or roll back.
func (r *PlaneRepo) CreateTx(ctx context.Context, tx *sql.Tx, p *model.Plane) error {
	const q = `INSERT INTO planes (id, make, model, age, seats) VALUES (?, ?, ?, ?, ?)`
	_, err := tx.ExecContext(ctx, q, p.ID, p.Make, p.Model, p.Age, p.Seats)
	return err
}

// GetByID loads a single plane.  Returns ErrPlaneNotFound when no row exists.
func (r *PlaneRepo) GetByID(ctx context.Context, id uint64) (*model.Plane, error) {
	const q = `SELECT id, make, model, age, seats FROM planes WHERE id = ?`
	var p model.Plane
	err := r.db.QueryRowContext(ctx, q, id).Scan(&p.ID, &p.Make, &p.Model, &p.Age, &p.Seats)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlaneNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ExistsTx reports whether a plane row exists, inside the transaction so
// the answer stays valid for the duration of the unit of work.
func (r *PlaneRepo) ExistsTx(ctx context.Context, tx *sql.Tx, id uint64) (bool, error) {
	var one int
	err := tx.QueryRowContext(ctx, `SELECT 1 FROM planes WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
