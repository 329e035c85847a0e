package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

func validInput() CreateBookingInput {
	return CreateBookingInput{PassengerName: "Anna Ivanova", Email: "anna@example.com", FlightID: "7", Seat: "12A"}
}

// stored simulates the repository assigning ids on a committed write.
func stored(args mock.Arguments) {
	b := args.Get(1).(*domain.Booking)
	b.ID = 21
	b.Passenger.ID = 11
	b.Status = domain.BookingStatusBooked
}

func TestBookingService_CreateBooking_Success(t *testing.T) {
	repo := &MockBookingRepository{}
	producer := &MockProducer{}
	fixed := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)

	service := NewBookingService(repo, producer, "bookings", time.Second, WithNotificationsTopic("notifications"))
	service.now = func() time.Time { return fixed }

	repo.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.Passenger.FullName == "Anna Ivanova" && b.Passenger.Email == "anna@example.com" &&
			b.FlightID == 7 && b.SeatNumber == "12A"
	})).Run(stored).Return(nil).Once()

	event := kafka.BookingEvent{
		Type: "booking_created", BookingID: 21, PassengerID: 11, PassengerName: "Anna Ivanova",
		Email: "anna@example.com", FlightID: 7, Seat: "12A", Status: "Booked", OccurredAt: fixed,
	}
	producer.On("Publish", mock.Anything, "bookings", "21", event).Return(nil).Once()
	producer.On("Publish", mock.Anything, "notifications", "21", event).Return(nil).Once()

	booking, err := service.CreateBooking(context.Background(), validInput())

	require.NoError(t, err)
	assert.Equal(t, int64(21), booking.ID)
	assert.Equal(t, domain.BookingStatusBooked, booking.Status)
	repo.AssertExpectations(t)
	producer.AssertExpectations(t)
}

func TestBookingService_CreateBooking_ValidationErrors(t *testing.T) {
	repo := &MockBookingRepository{}
	service := NewBookingService(repo, nil, "", time.Second)

	cases := map[string]struct {
		mutate func(*CreateBookingInput)
		msg    string
	}{
		"missing name":      {func(in *CreateBookingInput) { in.PassengerName = "" }, MissingBookingParams},
		"missing email":     {func(in *CreateBookingInput) { in.Email = " " }, MissingBookingParams},
		"missing flight":    {func(in *CreateBookingInput) { in.FlightID = "" }, MissingBookingParams},
		"missing seat":      {func(in *CreateBookingInput) { in.Seat = "" }, MissingBookingParams},
		"flight not number": {func(in *CreateBookingInput) { in.FlightID = "7; DROP TABLE Bookings" }, "flight_id must be a positive integer"},
		"flight zero":       {func(in *CreateBookingInput) { in.FlightID = "0" }, "flight_id must be a positive integer"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)

			_, err := service.CreateBooking(context.Background(), in)
			require.Error(t, err)
			assert.True(t, domain.IsValidation(err))
			assert.Equal(t, tc.msg, err.Error())
		})
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBookingService_CreateBooking_TrimsInput(t *testing.T) {
	repo := &MockBookingRepository{}
	service := NewBookingService(repo, nil, "", time.Second)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.Passenger.FullName == "Anna Ivanova" && b.SeatNumber == "12A" && b.FlightID == 7
	})).Run(stored).Return(nil).Once()

	_, err := service.CreateBooking(context.Background(), CreateBookingInput{
		PassengerName: " Anna Ivanova ", Email: "anna@example.com", FlightID: " 7", Seat: "12A ",
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestBookingService_CreateBooking_RepositoryError(t *testing.T) {
	repo := &MockBookingRepository{}
	producer := &MockProducer{}
	service := NewBookingService(repo, producer, "bookings", time.Second)

	writeErr := domain.WriteError{Step: domain.StepBooking, Err: errors.New("violates foreign key constraint")}
	repo.On("Create", mock.Anything, mock.Anything).Return(writeErr).Once()

	booking, err := service.CreateBooking(context.Background(), validInput())

	assert.Nil(t, booking)
	assert.Equal(t, writeErr, err)
	producer.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_CreateBooking_PublishFailureIsNotFatal(t *testing.T) {
	repo := &MockBookingRepository{}
	producer := &MockProducer{}
	service := NewBookingService(repo, producer, "bookings", time.Second, WithNotificationsTopic("notifications"))

	repo.On("Create", mock.Anything, mock.Anything).Run(stored).Return(nil).Once()
	producer.On("Publish", mock.Anything, "bookings", "21", mock.Anything).Return(errors.New("kafka: leader not available")).Once()

	booking, err := service.CreateBooking(context.Background(), validInput())

	require.NoError(t, err)
	assert.Equal(t, int64(21), booking.ID)
	producer.AssertNotCalled(t, "Publish", mock.Anything, "notifications", mock.Anything, mock.Anything)
}

func TestBookingService_CreateBooking_AppliesDeadline(t *testing.T) {
	repo := &MockBookingRepository{}
	service := NewBookingService(repo, nil, "", 50*time.Millisecond)

	repo.On("Create", mock.MatchedBy(func(ctx context.Context) bool {
		deadline, ok := ctx.Deadline()
		return ok && time.Until(deadline) <= 50*time.Millisecond
	}), mock.Anything).Run(stored).Return(nil).Once()

	_, err := service.CreateBooking(context.Background(), validInput())
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestBookingService_Publish_NoTopic(t *testing.T) {
	producer := &MockProducer{}
	service := NewBookingService(&MockBookingRepository{}, producer, "", time.Second)

	err := service.publish(context.Background(), "booking_created", &domain.Booking{ID: 1})
	assert.NoError(t, err)
	producer.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestNewBookingService_WithOptions(t *testing.T) {
	service := NewBookingService(&MockBookingRepository{}, nil, "bookings", time.Second, WithNotificationsTopic("notifications"))
	assert.Equal(t, "bookings", service.bookingTopic)
	assert.Equal(t, "notifications", service.notificationsTopic)
	assert.Equal(t, time.Second, service.queryTimeout)
}
