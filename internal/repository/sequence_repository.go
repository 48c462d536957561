package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// Entity class names keyed into the id_sequences table.  Each class has
// its own counter so identifiers stay globally unique and monotonic per
// class.
const (
	SeqPlane       = "plane"
	SeqPilot       = "pilot"
	SeqTechnician  = "technician"
	SeqCustomer    = "customer"
	SeqFlight      = "flight"
	SeqCrew        = "crew_assignment"
	SeqSchedule    = "schedule_entry"
	SeqReservation = "reservation"
)

// SequenceRepo allocates identifiers from per-entity sequence rows.
// Advancing a row with LAST_INSERT_ID(next_id + 1) is atomic in MySQL:
// the UPDATE takes a row lock, so two transactions allocating for the
// same entity class serialize and can never observe the same value.
// This replaces counting existing rows, which races under concurrency.
type SequenceRepo struct {
	db *sql.DB
}

// NewSequenceRepo returns a SequenceRepo bound to the given database.
func NewSequenceRepo(db *sql.DB) *SequenceRepo { return &SequenceRepo{db: db} }

// NextTx advances the sequence for the entity class inside tx and
// returns the freshly allocated identifier.  The first allocation for a
// class seeds its row at zero.  Identifiers allocated in a transaction
// that rolls back are skipped, never reused.
func (r *SequenceRepo) NextTx(ctx context.Context, tx *sql.Tx, entity string) (uint64, error) {
	const adv = `UPDATE id_sequences SET next_id = LAST_INSERT_ID(next_id + 1) WHERE entity = ?`
	res, err := tx.ExecContext(ctx, adv, entity)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		// Seed on first use of this entity class.  INSERT IGNORE keeps
		// this safe against a concurrent seeder; the retried UPDATE then
		// locks whichever row won.
		if _, err := tx.ExecContext(ctx,
			`INSERT IGNORE INTO id_sequences (entity, next_id) VALUES (?, 0)`, entity); err != nil {
			return 0, err
		}
		if res, err = tx.ExecContext(ctx, adv, entity); err != nil {
			return 0, err
		}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("sequence %s returned non-positive id %d", entity, id)
	}
	return uint64(id), nil
}
