package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/airline-reservation/internal/model"
	"github.com/iliyamo/airline-reservation/internal/utils"
)

// ErrCustomerNotFound indicates that a customer was not located in the DB.
var ErrCustomerNotFound = errors.New("customer not found")

// ErrEmailExists is returned when registering with an email that is
// already taken.
var ErrEmailExists = errors.New("email already exists")

// CustomerRepo manages persistence for customer accounts.  Identifiers
// come from the shared sequence allocator so customer ids follow the
// same monotonic scheme as every other entity class.
type CustomerRepo struct {
	db  *sql.DB
	seq *SequenceRepo
}

// NewCustomerRepo constructs a CustomerRepo given a DB handle and the
// sequence allocator.
func NewCustomerRepo(db *sql.DB, seq *SequenceRepo) *CustomerRepo {
	return &CustomerRepo{db: db, seq: seq}
}

// Create hashes the password, allocates a customer id and inserts the
// account, all in one transaction.  Returns ErrEmailExists on a
// duplicate email.
func (r *CustomerRepo) Create(ctx context.Context, email, password, fullName, role string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	id, err := r.seq.NextTx(ctx, tx, SeqCustomer)
	if err != nil {
		return 0, err
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO customers (id, email, password_hash, fullname, role) VALUES (?, ?, ?, ?, ?)`,
		id, email, hash, fullName, role)
	if err != nil {
		// 1062 = ER_DUP_ENTRY on the unique email index
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	committed = true
	return id, nil
}

// GetByEmail fetches a customer by normalized email.  Returns
// ErrCustomerNotFound when no account exists.
func (r *CustomerRepo) GetByEmail(ctx context.Context, email string) (*model.Customer, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var c model.Customer
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, fullname, role, created_at FROM customers WHERE email = ? LIMIT 1`,
		email).Scan(&c.ID, &c.Email, &c.PasswordHash, &c.FullName, &c.Role, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByID fetches a customer by id.  Returns ErrCustomerNotFound when
// no account exists.
func (r *CustomerRepo) GetByID(ctx context.Context, id uint64) (*model.Customer, error) {
	var c model.Customer
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, fullname, role, created_at FROM customers WHERE id = ? LIMIT 1`,
		id).Scan(&c.ID, &c.Email, &c.PasswordHash, &c.FullName, &c.Role, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ExistsTx reports whether a customer row exists within the transaction.
func (r *CustomerRepo) ExistsTx(ctx context.Context, tx *sql.Tx, id uint64) (bool, error) {
	var one int
	err := tx.QueryRowContext(ctx, `SELECT 1 FROM customers WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
