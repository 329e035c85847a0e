package domain

import "time"

// TimestampLayout is the second-precision wall-clock format used for flight times.
const TimestampLayout = "2006-01-02 15:04:05"

// DateLayout is the calendar date format accepted by flight search.
const DateLayout = "2006-01-02"

// FlightSearch holds validated flight search filters.
type FlightSearch struct {
	DepartureID int64
	ArrivalID   int64
	Date        time.Time
}

type PlaneInfo struct {
	Model    string `json:"model"`
	Capacity int64  `json:"capacity"`
}

type AirportInfo struct {
	Name string `json:"name"`
	Code string `json:"code"`
	City string `json:"city"`
}

// FlightAvailability is one flight search result. AvailableSeats is derived as
// Plane.Capacity - BookedSeats and may be negative when a flight is overbooked.
type FlightAvailability struct {
	ID               int64       `json:"id"`
	Plane            PlaneInfo   `json:"plane"`
	DepartureAirport AirportInfo `json:"departure_airport"`
	ArrivalAirport   AirportInfo `json:"arrival_airport"`
	DepartureTime    string      `json:"departure_time"`
	ArrivalTime      string      `json:"arrival_time"`
	Status           string      `json:"status"`
	AvailableSeats   int64       `json:"available_seats"`
	BookedSeats      int64       `json:"booked_seats"`
}
