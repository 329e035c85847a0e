package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Domenick1991/flightdesk/config"
	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache keeps airport reference data. Flight availability is never cached.
type RedisCache struct {
	client      *redis.Client
	airportsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, airportsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:      redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		airportsTTL: airportsTTL,
	}
}

// GetAirports returns nil without error on a cache miss.
func (c *RedisCache) GetAirports(ctx context.Context) ([]domain.Airport, error) {
	data, err := c.client.Get(ctx, airportsKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var airports []domain.Airport
	if err := json.Unmarshal(data, &airports); err != nil {
		return nil, err
	}
	return airports, nil
}

func (c *RedisCache) SetAirports(ctx context.Context, airports []domain.Airport) error {
	payload, err := json.Marshal(airports)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, airportsKey(), payload, c.airportsTTL).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func airportsKey() string {
	return "cache:airports"
}
