package repository

import (
	"context"
	"database/sql"

	"github.com/Domenick1991/flightdesk/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
}

type SQLBookingRepository struct {
	db      *sql.DB
	dialect Dialect
}

func NewBookingRepository(db *sql.DB, dialect Dialect) BookingRepository {
	return &SQLBookingRepository{db: db, dialect: dialect}
}

// Create inserts the passenger and then the booking in one transaction. A
// rejected booking insert rolls the passenger back with it.
func (r *SQLBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.ConnectionError{Err: err}
	}
	defer tx.Rollback()

	stmt, args := passengerInsert(r.dialect, booking.Passenger)
	passengerID, err := r.insert(ctx, tx, stmt, args)
	if err != nil {
		return r.writeError(domain.StepPassenger, err)
	}
	booking.Passenger.ID = passengerID
	booking.Status = domain.BookingStatusBooked

	stmt, args = bookingInsert(r.dialect, booking)
	bookingID, err := r.insert(ctx, tx, stmt, args)
	if err != nil {
		return r.writeError(domain.StepBooking, err)
	}

	if err := tx.Commit(); err != nil {
		return r.writeError(domain.StepCommit, err)
	}
	booking.ID = bookingID
	return nil
}

func (r *SQLBookingRepository) insert(ctx context.Context, tx *sql.Tx, stmt string, args []any) (int64, error) {
	if r.dialect.SupportsReturning() {
		var id int64
		err := tx.QueryRowContext(ctx, stmt, args...).Scan(&id)
		return id, err
	}

	res, err := tx.ExecContext(ctx, stmt, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *SQLBookingRepository) writeError(step string, err error) error {
	if isConnError(err) {
		return domain.ConnectionError{Err: err}
	}
	return domain.WriteError{Step: step, Conflict: r.dialect.uniqueViolation(err), Err: err}
}

var _ BookingRepository = (*SQLBookingRepository)(nil)
