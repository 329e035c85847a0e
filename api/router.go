// Package api exposes airport listing, flight search and booking over HTTP.
package api

import (
	"github.com/Domenick1991/flightdesk/config"
	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/service/booking"
	"github.com/Domenick1991/flightdesk/internal/service/flights"
	"github.com/gin-gonic/gin"
)

// NewRouter wires handlers and middleware. db may be nil, in which case /health
// reports ok without touching the store.
func NewRouter(flightSvc flights.FlightUseCase, bookingSvc booking.BookingUseCase, db Pinger, cfg config.HTTPConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), Logger(), CORS())
	if cfg.RateLimitPerSecond > 0 {
		router.Use(RateLimit(cfg.RateLimitPerSecond, cfg.RateLimitBurst))
	}

	NewFlightHandler(flightSvc).Register(router)
	NewBookingHandler(bookingSvc).Register(router)
	router.GET("/health", health(db))
	if cfg.DocsEnabled {
		registerDocs(router)
	}

	router.NoRoute(func(c *gin.Context) {
		respondError(c, domain.ErrRouteNotFound)
	})
	return router
}
