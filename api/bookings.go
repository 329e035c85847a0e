package api

import (
	"fmt"
	"net/http"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	PassengerName string `form:"passenger_name" json:"passenger_name"`
	Email         string `form:"email" json:"email"`
	FlightID      string `form:"flight_id" json:"flight_id"`
	Seat          string `form:"seat" json:"seat"`
}

type bookingResponse struct {
	Message       string `json:"message"`
	BookingID     int64  `json:"booking_id"`
	PassengerID   int64  `json:"passenger_id"`
	FlightID      int64  `json:"flight_id"`
	PassengerName string `json:"passenger_name"`
	Email         string `json:"email"`
	Seat          string `json:"seat"`
	Status        string `json:"status"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

// Register mounts booking creation on /bookings and on the root path.
func (h *BookingHandler) Register(router gin.IRoutes) {
	router.POST("/bookings", h.create)
	router.POST("/", h.create)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, domain.ValidationError{Msg: booking.MissingBookingParams})
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
		PassengerName: req.PassengerName,
		Email:         req.Email,
		FlightID:      req.FlightID,
		Seat:          req.Seat,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookingResponse{
		Message:       fmt.Sprintf("Booking successful for %s on flight %d", created.Passenger.FullName, created.FlightID),
		BookingID:     created.ID,
		PassengerID:   created.Passenger.ID,
		FlightID:      created.FlightID,
		PassengerName: created.Passenger.FullName,
		Email:         created.Passenger.Email,
		Seat:          created.SeatNumber,
		Status:        string(created.Status),
	})
}
