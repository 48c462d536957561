package model

// ReservationStatus is the state of a reservation, fixed at creation
// time.  There is no promotion mechanism: a waitlisted reservation
// stays waitlisted even if seats free up later.
type ReservationStatus string

const (
	// StatusConfirmed means a seat was allocated against the flight's capacity.
	StatusConfirmed ReservationStatus = "CONFIRMED"
	// StatusWaitlisted means no seat was available at booking time.
	StatusWaitlisted ReservationStatus = "WAITLISTED"
	// StatusCancelled is a terminal state produced outside this service.
	StatusCancelled ReservationStatus = "CANCELLED"
)

// Reservation records one booking attempt by a customer on a flight.
// A customer may hold several reservations on the same flight; no
// uniqueness is enforced on (customer, flight).
type Reservation struct {
	ID           uint64            // reservations.rnum
	CustomerID   uint64            // reservations.customer_id
	FlightNumber uint64            // reservations.flight_id
	Status       ReservationStatus // reservations.status
}
