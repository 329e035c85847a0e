package repository

import (
	"strings"
	"testing"
	"time"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialectFor(t *testing.T) {
	for driver, want := range map[string]string{
		"postgres": "postgres",
		"pgx":      "postgres",
		"MySQL":    "mysql",
		"sqlite":   "sqlite",
	} {
		d, err := DialectFor(driver)
		require.NoError(t, err, driver)
		assert.Equal(t, want, d.Name())
	}

	_, err := DialectFor("oracle")
	assert.Error(t, err)
}

func TestDialect_Placeholder(t *testing.T) {
	assert.Equal(t, "$3", Postgres.Placeholder(3))
	assert.Equal(t, "?", MySQL.Placeholder(3))
	assert.Equal(t, "?", SQLite.Placeholder(1))
}

func TestFlightSearchQuery_BindsFilters(t *testing.T) {
	filter := domain.FlightSearch{
		DepartureID: 1,
		ArrivalID:   2,
		Date:        time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	stmt, args := FlightSearchQuery(Postgres, filter)

	assert.Equal(t, []any{"Booked", int64(1), int64(2), "2024-06-01"}, args)
	assert.Contains(t, stmt, "b.status = $1")
	assert.Contains(t, stmt, "f.departure_airport = $2")
	assert.Contains(t, stmt, "f.arrival_airport = $3")
	assert.Contains(t, stmt, "DATE(f.departure_time) = $4")
	assert.True(t, strings.HasSuffix(stmt, "ORDER BY f.departure_time ASC, f.id ASC"))
	assert.NotContains(t, stmt, "2024-06-01")

	for _, table := range []string{"Flights f", "Planes p", "Airports da", "Airports aa", "FlightStatus fs", "Bookings b"} {
		assert.Contains(t, stmt, table)
	}
}

func TestFlightSearchQuery_QuestionMarkDialects(t *testing.T) {
	filter := domain.FlightSearch{DepartureID: 3, ArrivalID: 4, Date: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)}

	for _, d := range []Dialect{MySQL, SQLite} {
		stmt, args := FlightSearchQuery(d, filter)
		assert.Equal(t, 4, strings.Count(stmt, "?"), d.Name())
		assert.NotContains(t, stmt, "$")
		assert.Equal(t, []any{"Booked", int64(3), int64(4), "2024-01-31"}, args)
	}
}

func TestInsertQuery(t *testing.T) {
	p := domain.Passenger{FullName: "Robert'); DROP TABLE Bookings;--", Email: "r@example.com"}

	stmt, args := passengerInsert(Postgres, p)
	assert.Equal(t, "INSERT INTO Passengers (full_name, email) VALUES ($1, $2) RETURNING id", stmt)
	assert.Equal(t, []any{p.FullName, p.Email}, args)

	stmt, _ = passengerInsert(MySQL, p)
	assert.Equal(t, "INSERT INTO Passengers (full_name, email) VALUES (?, ?)", stmt)

	b := &domain.Booking{Passenger: domain.Passenger{ID: 5}, FlightID: 7, SeatNumber: "12A", Status: domain.BookingStatusBooked}
	stmt, args = bookingInsert(SQLite, b)
	assert.Equal(t, "INSERT INTO Bookings (passenger_id, flight_id, seat_number, status) VALUES (?, ?, ?, ?) RETURNING id", stmt)
	assert.Equal(t, []any{int64(5), int64(7), "12A", "Booked"}, args)
}
