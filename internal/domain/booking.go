package domain

type BookingStatus string

const (
	BookingStatusBooked    BookingStatus = "Booked"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

type Passenger struct {
	ID       int64
	FullName string
	Email    string
}

// Booking links one passenger to one seat on a flight.
type Booking struct {
	ID         int64
	Passenger  Passenger
	FlightID   int64
	SeatNumber string
	Status     BookingStatus
}
