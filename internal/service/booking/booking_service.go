package booking

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/kafka"
	"github.com/Domenick1991/flightdesk/internal/repository"
)

// MissingBookingParams is returned when a booking form lacks a field.
const MissingBookingParams = "Missing parameters. Required: passenger_name, email, flight_id, seat"

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// CreateBookingInput carries the decoded booking form.
type CreateBookingInput struct {
	PassengerName string
	Email         string
	FlightID      string
	Seat          string
}

type BookingService struct {
	bookings           repository.BookingRepository
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	queryTimeout       time.Duration
	now                func() time.Time
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

// NewBookingService builds the service; producer may be nil to disable events.
func NewBookingService(
	bookings repository.BookingRepository,
	producer Producer,
	bookingTopic string,
	queryTimeout time.Duration,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:     bookings,
		producer:     producer,
		bookingTopic: bookingTopic,
		queryTimeout: queryTimeout,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	booking, err := parseBooking(input)
	if err != nil {
		return nil, err
	}

	writeCtx, cancel := s.withDeadline(ctx)
	defer cancel()

	if err := s.bookings.Create(writeCtx, booking); err != nil {
		return nil, err
	}

	if err := s.publish(ctx, "booking_created", booking); err != nil {
		log.Printf("WARNING: failed to publish booking_created event for booking %d: %v", booking.ID, err)
	}
	return booking, nil
}

func parseBooking(input CreateBookingInput) (*domain.Booking, error) {
	name := strings.TrimSpace(input.PassengerName)
	email := strings.TrimSpace(input.Email)
	flight := strings.TrimSpace(input.FlightID)
	seat := strings.TrimSpace(input.Seat)

	if name == "" || email == "" || flight == "" || seat == "" {
		return nil, domain.ValidationError{Msg: MissingBookingParams}
	}

	flightID, err := strconv.ParseInt(flight, 10, 64)
	if err != nil || flightID <= 0 {
		return nil, domain.ValidationError{Field: "flight_id", Msg: "flight_id must be a positive integer"}
	}

	return &domain.Booking{
		Passenger:  domain.Passenger{FullName: name, Email: email},
		FlightID:   flightID,
		SeatNumber: seat,
	}, nil
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	event := kafka.BookingEvent{
		Type:          eventType,
		BookingID:     booking.ID,
		PassengerID:   booking.Passenger.ID,
		PassengerName: booking.Passenger.FullName,
		Email:         booking.Passenger.Email,
		FlightID:      booking.FlightID,
		Seat:          booking.SeatNumber,
		Status:        string(booking.Status),
		OccurredAt:    s.now(),
	}
	key := strconv.FormatInt(booking.ID, 10)
	if err := s.producer.Publish(ctx, s.bookingTopic, key, event); err != nil {
		return fmt.Errorf("publish to %s: %w", s.bookingTopic, err)
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, key, event)
	}
	return nil
}

func (s *BookingService) withDeadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}

var _ BookingUseCase = (*BookingService)(nil)
