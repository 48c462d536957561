package model

// Pilot is a flight crew member who can be assigned to flights.
// Immutable after creation.
type Pilot struct {
	ID          uint64 // pilots.id
	FullName    string // pilots.fullname
	Nationality string // pilots.nationality
}
