package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/flightdesk/internal/domain"
)

type rowScanner interface {
	Scan(dest ...any) error
}

var wallClockLayouts = []string{
	domain.TimestampLayout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	time.RFC3339Nano,
}

// wallClock scans a timestamp column as naive wall-clock time. Drivers hand
// timestamps back either as time.Time or as text depending on the store.
type wallClock struct {
	t time.Time
}

func (w *wallClock) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		w.t = v
		return nil
	case string:
		return w.parse(v)
	case []byte:
		return w.parse(string(v))
	case nil:
		return errors.New("timestamp is NULL")
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (w *wallClock) parse(s string) error {
	for _, layout := range wallClockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			w.t = t
			return nil
		}
	}
	return fmt.Errorf("unrecognised timestamp %q", s)
}

// String formats without any zone conversion.
func (w wallClock) String() string {
	return w.t.Format(domain.TimestampLayout)
}

func scanFlight(row rowScanner) (domain.FlightAvailability, error) {
	var (
		f                  domain.FlightAvailability
		departure, arrival wallClock
	)
	err := row.Scan(
		&f.ID, &f.Plane.Model, &f.Plane.Capacity,
		&f.DepartureAirport.Name, &f.DepartureAirport.Code, &f.DepartureAirport.City,
		&f.ArrivalAirport.Name, &f.ArrivalAirport.Code, &f.ArrivalAirport.City,
		&departure, &arrival, &f.Status,
		&f.BookedSeats,
	)
	if err != nil {
		return f, err
	}

	f.DepartureTime = departure.String()
	f.ArrivalTime = arrival.String()
	// Not clamped: an overbooked flight reports a negative count.
	f.AvailableSeats = f.Plane.Capacity - f.BookedSeats
	return f, nil
}

// mapFlights never returns nil so an empty search encodes as [].
func mapFlights(rows *sql.Rows) ([]domain.FlightAvailability, error) {
	flights := make([]domain.FlightAvailability, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func mapAirports(rows *sql.Rows) ([]domain.Airport, error) {
	airports := make([]domain.Airport, 0)
	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.ID, &a.Name, &a.Code, &a.City, &a.Country); err != nil {
			return nil, err
		}
		airports = append(airports, a)
	}
	return airports, rows.Err()
}
