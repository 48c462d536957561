package model

// Technician performs plane repairs.  Only the identity is tracked here;
// repair records reference technicians from the maintenance workflow.
type Technician struct {
	ID       uint64 // technicians.id
	FullName string // technicians.fullname
}
