package model

// Plane describes one aircraft in the fleet.  Seats is the physical
// capacity used by the seat ledger when deciding whether a booking can
// be confirmed.  Planes are immutable once created; maintenance state
// lives in the repairs table.
//
// Fields:
//  ID     – primary key identifier (allocator-assigned).
//  Make   – manufacturer, e.g. "Boeing".
//  Model  – model designation, e.g. "737-800".
//  Age    – age of the airframe in years.
//  Seats  – passenger capacity, always > 0.
type Plane struct {
	ID    uint64 // planes.id
	Make  string // planes.make
	Model string // planes.model
	Age   uint32 // planes.age
	Seats uint32 // planes.seats
}
