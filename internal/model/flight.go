package model

import "time"

// Flight is one scheduled flight.  NumSold is the only field mutated by
// this service: the booking coordinator increments it for every
// confirmed reservation, and it must never exceed the capacity of the
// assigned plane.  Waitlisted reservations do not touch it.
//
// Fields:
//  Number           – flight number, primary key (allocator-assigned).
//  Cost             – ticket price in whole currency units.
//  NumSold          – seats sold against confirmed reservations.
//  NumStops         – number of intermediate stops.
//  DepartureTime    – scheduled departure (UTC).
//  ArrivalTime      – scheduled arrival (UTC), after DepartureTime.
//  ArrivalAirport   – IATA/ICAO code of the destination.
//  DepartureAirport – IATA/ICAO code of the origin.
type Flight struct {
	Number           uint64    // flights.fnum
	Cost             uint32    // flights.cost
	NumSold          uint32    // flights.num_sold
	NumStops         uint32    // flights.num_stops
	DepartureTime    time.Time // flights.actual_departure_date
	ArrivalTime      time.Time // flights.actual_arrival_date
	ArrivalAirport   string    // flights.arrival_airport
	DepartureAirport string    // flights.departure_airport
}
