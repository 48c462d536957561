package model

import "time"

// Customer is a passenger account.  Customers authenticate with email
// and password and hold reservations against flights.
//
// Fields:
//  ID           – primary key identifier (allocator-assigned).
//  Email        – unique, stored lower-cased.
//  PasswordHash – bcrypt hash; the raw password is never persisted.
//  FullName     – display name.
//  Role         – CUSTOMER or STAFF; gates the protected route groups.
//  CreatedAt    – account creation timestamp (UTC).
type Customer struct {
	ID           uint64    // customers.id
	Email        string    // customers.email
	PasswordHash string    // customers.password_hash
	FullName     string    // customers.fullname
	Role         string    // customers.role
	CreatedAt    time.Time // customers.created_at
}
