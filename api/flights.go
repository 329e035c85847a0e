package api

import (
	"net/http"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type searchQuery struct {
	Departure string `form:"departure"`
	Arrival   string `form:"arrival"`
	Date      string `form:"date"`
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router gin.IRoutes) {
	router.GET("/airports", h.airports)
	router.GET("/flights", h.search)
}

func (h *FlightHandler) airports(c *gin.Context) {
	airports, err := h.service.ListAirports(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if airports == nil {
		airports = []domain.Airport{}
	}
	c.JSON(http.StatusOK, airports)
}

func (h *FlightHandler) search(c *gin.Context) {
	var q searchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, domain.ValidationError{Msg: domain.MissingSearchParams})
		return
	}

	input := flights.SearchInput{Departure: q.Departure, Arrival: q.Arrival, Date: q.Date}
	if input.Missing() {
		respondError(c, domain.ValidationError{Msg: domain.MissingSearchParams})
		return
	}

	result, err := h.service.Search(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	if result == nil {
		result = []domain.FlightAvailability{}
	}
	c.JSON(http.StatusOK, result)
}
