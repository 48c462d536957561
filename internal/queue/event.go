// Package queue defines message payloads exchanged over the message
// broker and the background consumer that processes them.
package queue

// ReservationConfirmedEvent is published when a booking is confirmed.
// It carries enough for downstream consumers to log or notify without
// querying the primary database.
type ReservationConfirmedEvent struct {
	ReservationID uint64 `json:"reservation_id"`
	CustomerID    uint64 `json:"customer_id"`
	FlightNumber  uint64 `json:"flight_number"`
	ConfirmedAt   string `json:"confirmed_at"`
}
