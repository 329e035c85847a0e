package repository

import (
	"strings"

	"github.com/Domenick1991/flightdesk/internal/domain"
)

// query accumulates SQL text and its bind arguments in textual order, so user
// input only ever reaches the store as a parameter.
type query struct {
	dialect Dialect
	sb      strings.Builder
	args    []any
}

func newQuery(d Dialect) *query {
	return &query{dialect: d}
}

func (q *query) raw(s string) *query {
	q.sb.WriteString(s)
	return q
}

func (q *query) bind(v any) *query {
	q.args = append(q.args, v)
	q.sb.WriteString(q.dialect.Placeholder(len(q.args)))
	return q
}

// list writes a comma separated placeholder per value.
func (q *query) list(values ...any) *query {
	for i, v := range values {
		if i > 0 {
			q.raw(", ")
		}
		q.bind(v)
	}
	return q
}

func (q *query) build() (string, []any) {
	return q.sb.String(), q.args
}

const flightSearchColumns = `SELECT f.id, p.model, p.capacity,
	da.name, da.code, da.city,
	aa.name, aa.code, aa.city,
	f.departure_time, f.arrival_time, fs.name,
	(SELECT COUNT(*) FROM Bookings b WHERE b.flight_id = f.id AND b.status = `

const flightSearchJoins = `) AS booked_seats
FROM Flights f
JOIN Planes p ON p.id = f.plane_id
JOIN Airports da ON da.id = f.departure_airport
JOIN Airports aa ON aa.id = f.arrival_airport
JOIN FlightStatus fs ON fs.id = f.status
WHERE f.departure_airport = `

// FlightSearchQuery selects flights on a route departing on the given calendar
// day together with their count of active bookings, earliest departure first.
func FlightSearchQuery(d Dialect, f domain.FlightSearch) (string, []any) {
	q := newQuery(d).
		raw(flightSearchColumns).bind(string(domain.BookingStatusBooked)).
		raw(flightSearchJoins).bind(f.DepartureID).
		raw(" AND f.arrival_airport = ").bind(f.ArrivalID).
		raw(" AND DATE(f.departure_time) = ").bind(f.Date.Format(domain.DateLayout)).
		raw("\nORDER BY f.departure_time ASC, f.id ASC")
	return q.build()
}

// AirportListQuery lists all airports ordered by id.
func AirportListQuery() string {
	return "SELECT id, name, code, city, country FROM Airports ORDER BY id ASC"
}

// insertQuery renders an INSERT that yields the generated id, either through
// RETURNING or, for dialects without it, through the driver's LastInsertId.
func insertQuery(d Dialect, table string, columns []string, values ...any) (string, []any) {
	q := newQuery(d).
		raw("INSERT INTO " + table + " (" + strings.Join(columns, ", ") + ") VALUES (").
		list(values...).
		raw(")")
	if d.SupportsReturning() {
		q.raw(" RETURNING id")
	}
	return q.build()
}

func passengerInsert(d Dialect, p domain.Passenger) (string, []any) {
	return insertQuery(d, "Passengers", []string{"full_name", "email"}, p.FullName, p.Email)
}

func bookingInsert(d Dialect, b *domain.Booking) (string, []any) {
	return insertQuery(d, "Bookings",
		[]string{"passenger_id", "flight_id", "seat_number", "status"},
		b.Passenger.ID, b.FlightID, b.SeatNumber, string(b.Status))
}
