package flights

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/repository"
)

type FlightUseCase interface {
	ListAirports(ctx context.Context) ([]domain.Airport, error)
	Search(ctx context.Context, input SearchInput) ([]domain.FlightAvailability, error)
}

type AirportCache interface {
	GetAirports(ctx context.Context) ([]domain.Airport, error)
	SetAirports(ctx context.Context, airports []domain.Airport) error
}

// SearchInput holds the raw query parameters of a flight search.
type SearchInput struct {
	Departure string
	Arrival   string
	Date      string
}

// Missing reports whether any required search parameter is empty.
func (in SearchInput) Missing() bool {
	return strings.TrimSpace(in.Departure) == "" ||
		strings.TrimSpace(in.Arrival) == "" ||
		strings.TrimSpace(in.Date) == ""
}

type FlightService struct {
	flights      repository.FlightRepository
	airports     repository.AirportRepository
	cache        AirportCache
	queryTimeout time.Duration
}

func NewFlightService(flights repository.FlightRepository, airports repository.AirportRepository, cache AirportCache, queryTimeout time.Duration) *FlightService {
	return &FlightService{flights: flights, airports: airports, cache: cache, queryTimeout: queryTimeout}
}

func (s *FlightService) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetAirports(ctx); err == nil && cached != nil {
			return cached, nil
		} else if err != nil {
			log.Printf("[CACHE] get airports: %v", err)
		}
	}

	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	airports, err := s.airports.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetAirports(ctx, airports); err != nil {
			log.Printf("[CACHE] set airports: %v", err)
		}
	}
	return airports, nil
}

func (s *FlightService) Search(ctx context.Context, input SearchInput) ([]domain.FlightAvailability, error) {
	filter, err := ParseSearch(input)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withDeadline(ctx)
	defer cancel()
	return s.flights.Search(ctx, filter)
}

// ParseSearch validates raw search parameters before any store access.
func ParseSearch(input SearchInput) (domain.FlightSearch, error) {
	if input.Missing() {
		return domain.FlightSearch{}, domain.ValidationError{Msg: domain.MissingSearchParams}
	}

	departure, err := parseAirportID("departure", input.Departure)
	if err != nil {
		return domain.FlightSearch{}, err
	}
	arrival, err := parseAirportID("arrival", input.Arrival)
	if err != nil {
		return domain.FlightSearch{}, err
	}

	date, err := time.Parse(domain.DateLayout, strings.TrimSpace(input.Date))
	if err != nil {
		return domain.FlightSearch{}, domain.ValidationError{Field: "date", Msg: "date must be in YYYY-MM-DD format"}
	}

	return domain.FlightSearch{DepartureID: departure, ArrivalID: arrival, Date: date}, nil
}

func parseAirportID(field, raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ValidationError{Field: field, Msg: field + " must be a positive integer"}
	}
	return id, nil
}

func (s *FlightService) withDeadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}

var _ FlightUseCase = (*FlightService)(nil)
