package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/flightdesk/api"
	"github.com/Domenick1991/flightdesk/config"
	"github.com/Domenick1991/flightdesk/internal/bootstrap"
	"github.com/Domenick1991/flightdesk/internal/cache"
	"github.com/Domenick1991/flightdesk/internal/kafka"
	"github.com/Domenick1991/flightdesk/internal/repository"
	"github.com/Domenick1991/flightdesk/internal/service/booking"
	"github.com/Domenick1991/flightdesk/internal/service/flights"
	"github.com/Domenick1991/flightdesk/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("load .env: %v", err)
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := storage.Open(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("open %s store: %v", cfg.Database.Driver, err)
	}
	defer store.Close()

	queryTimeout := time.Duration(cfg.Database.QueryTimeoutSeconds) * time.Second

	var airportCache flights.AirportCache
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Cache.AirportsTTLSeconds)*time.Second)
		defer redisCache.Close()
		airportCache = redisCache
	}

	var producer booking.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaProducer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer kafkaProducer.Close()
		producer = kafkaProducer
	}

	flightRepo := repository.NewFlightRepository(store.DB, store.Dialect)
	airportRepo := repository.NewAirportRepository(store.DB)
	bookingRepo := repository.NewBookingRepository(store.DB, store.Dialect)

	flightService := flights.NewFlightService(flightRepo, airportRepo, airportCache, queryTimeout)
	bookingService := booking.NewBookingService(
		bookingRepo,
		producer,
		cfg.Kafka.BookingTopic,
		queryTimeout,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	gin.SetMode(gin.ReleaseMode)
	router := api.NewRouter(flightService, bookingService, store.DB, cfg.HTTP)

	if err := bootstrap.Run(ctx, cfg.HTTP, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
