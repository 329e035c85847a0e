package repository

import (
	"context"
	"database/sql"

	"github.com/Domenick1991/flightdesk/internal/domain"
)

type FlightRepository interface {
	Search(ctx context.Context, filter domain.FlightSearch) ([]domain.FlightAvailability, error)
}

type SQLFlightRepository struct {
	db      *sql.DB
	dialect Dialect
}

func NewFlightRepository(db *sql.DB, dialect Dialect) FlightRepository {
	return &SQLFlightRepository{db: db, dialect: dialect}
}

func (r *SQLFlightRepository) Search(ctx context.Context, filter domain.FlightSearch) ([]domain.FlightAvailability, error) {
	stmt, args := FlightSearchQuery(r.dialect, filter)
	rows, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, readError(err)
	}
	defer rows.Close()

	flights, err := mapFlights(rows)
	if err != nil {
		return nil, readError(err)
	}
	return flights, nil
}

// readError classifies a failed read as either unreachable store or rejected query.
func readError(err error) error {
	if isConnError(err) {
		return domain.ConnectionError{Err: err}
	}
	return domain.QueryError{Err: err}
}

var _ FlightRepository = (*SQLFlightRepository)(nil)
