package model

import "time"

// CrewAssignment links a flight to the pilot flying it and the plane it
// operates on.  Every flight has exactly one assignment, created in the
// same transaction as the flight itself; the seat ledger resolves plane
// capacity through it.
type CrewAssignment struct {
	ID           uint64 // crew_assignments.id
	FlightNumber uint64 // crew_assignments.flight_id
	PilotID      uint64 // crew_assignments.pilot_id
	PlaneID      uint64 // crew_assignments.plane_id
}

// ScheduleEntry records a flight's slot in the timetable.  Departure and
// arrival mirror the flight's own timestamps by construction: both rows
// are written together so they can never diverge.
type ScheduleEntry struct {
	ID            uint64    // schedule_entries.id
	FlightNumber  uint64    // schedule_entries.flight_id
	DepartureTime time.Time // schedule_entries.departure_time
	ArrivalTime   time.Time // schedule_entries.arrival_time
}
