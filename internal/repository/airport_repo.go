package repository

import (
	"context"
	"database/sql"

	"github.com/Domenick1991/flightdesk/internal/domain"
)

type AirportRepository interface {
	List(ctx context.Context) ([]domain.Airport, error)
}

type SQLAirportRepository struct {
	db *sql.DB
}

func NewAirportRepository(db *sql.DB) AirportRepository {
	return &SQLAirportRepository{db: db}
}

func (r *SQLAirportRepository) List(ctx context.Context) ([]domain.Airport, error) {
	rows, err := r.db.QueryContext(ctx, AirportListQuery())
	if err != nil {
		return nil, readError(err)
	}
	defer rows.Close()

	airports, err := mapAirports(rows)
	if err != nil {
		return nil, readError(err)
	}
	return airports, nil
}

var _ AirportRepository = (*SQLAirportRepository)(nil)
