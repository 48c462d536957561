package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/airline-reservation/internal/model"
)

// ErrTechnicianNotFound indicates that a technician was not located in the DB.
var ErrTechnicianNotFound = errors.New("technician not found")

// TechnicianRepo manages persistence for technicians.
type TechnicianRepo struct {
	db *sql.DB
}

// NewTechnicianRepo constructs a TechnicianRepo given a DB handle.
func NewTechnicianRepo(db *sql.DB) *TechnicianRepo { return &TechnicianRepo{db: db} }

// CreateTx inserts a technician with its allocator-assigned identifier.
func (r *TechnicianRepo) CreateTx(ctx context.Context, tx *sql.Tx, t *model.Technician) error {
	const q = `INSERT INTO technicians (id, fullname) VALUES (?, ?)`
	_, err := tx.ExecContext(ctx, q, t.ID, t.FullName)
	return err
}

// GetByID loads a single technician.
func (r *TechnicianRepo) GetByID(ctx context.Context, id uint64) (*model.Technician, error) {
	const q = `SELECT id, fullname FROM technicians WHERE id = ?`
	var t model.Technician
	err := r.db.QueryRowContext(ctx, q, id).Scan(&t.ID, &t.FullName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTechnicianNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}
