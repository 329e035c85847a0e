package domain

import (
	"errors"
	"fmt"
)

// MissingSearchParams is returned verbatim when a flight search lacks a filter.
const MissingSearchParams = "Missing parameters. Required: departure, arrival, date"

// ErrRouteNotFound is reported for any method/path without a handler.
var ErrRouteNotFound = errors.New("route not found")

// ConnectionError means the store could not be reached.
type ConnectionError struct {
	Err error
}

func (e ConnectionError) Error() string {
	if e.Err == nil {
		return "database connection failed"
	}
	return fmt.Sprintf("database connection failed: %v", e.Err)
}

func (e ConnectionError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
}

func (e ValidationError) Error() string {
	switch {
	case e.Msg != "":
		return e.Msg
	case e.Field != "":
		return fmt.Sprintf("invalid %s", e.Field)
	default:
		return "validation error"
	}
}

// QueryError carries the store's own message for a rejected read.
type QueryError struct {
	Err error
}

func (e QueryError) Error() string {
	if e.Err == nil {
		return "query failed"
	}
	return fmt.Sprintf("query failed: %v", e.Err)
}

func (e QueryError) Unwrap() error { return e.Err }

// Booking write steps.
const (
	StepPassenger = "passenger"
	StepBooking   = "booking"
	StepCommit    = "commit"
)

// WriteError reports which insert of a booking was rejected.
type WriteError struct {
	Step     string
	Conflict bool
	Err      error
}

func (e WriteError) Error() string {
	switch e.Step {
	case StepPassenger:
		return "Failed to insert passenger."
	case StepBooking:
		if e.Conflict {
			return "Booking failed: seat already booked."
		}
		return "Booking failed."
	default:
		return "Booking failed."
	}
}

func (e WriteError) Unwrap() error { return e.Err }

func IsConnection(err error) bool {
	var target ConnectionError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsQuery(err error) bool {
	var target QueryError
	return errors.As(err, &target)
}

func IsWrite(err error) bool {
	var target WriteError
	return errors.As(err, &target)
}

// IsConflict reports whether err is a write rejected by a uniqueness constraint.
func IsConflict(err error) bool {
	var target WriteError
	return errors.As(err, &target) && target.Conflict
}
