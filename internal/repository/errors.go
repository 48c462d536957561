// Package repository contains the data access layer.  Each entity has
// its own repository with parameterized SQL only; methods suffixed Tx
// run inside a caller-supplied transaction and never commit it.  This
// file defines error values shared across repositories so that higher
// layers can distinguish failure scenarios with errors.Is.
package repository

import "errors"

// ErrConflict is returned when a guarded update affects no rows, e.g.
// the sold-seat increment finding the flight already at capacity.
// Callers may retry the whole operation from the capacity read.
var ErrConflict = errors.New("conflict")
