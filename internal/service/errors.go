package service

import (
	"errors"
	"strings"
)

var (
	// ErrStale is returned when a response arrives after a newer request for the same
	// view, or after the session moved to another view.
	ErrStale = errors.New("service: response superseded or view changed")

	// ErrDestinationNotFound is returned for unknown or unpublished destinations.
	ErrDestinationNotFound = errors.New("service: destination not found")

	// ErrInvalidInput marks errors caused by the caller's request.
	ErrInvalidInput = errors.New("service: invalid input")

	// ErrUpstream marks failures of the geocoder or the reachability endpoint.
	ErrUpstream = errors.New("service: upstream service failed")
)

// MissingInputError lists the trip endpoints that still need a value.
type MissingInputError struct {
	Fields []string
}

func (e *MissingInputError) Error() string {
	return "service: missing " + strings.Join(e.Fields, " and ")
}

// PlanFailedError carries the message shown in place of the itinerary list when a trip
// could not be planned.
type PlanFailedError struct {
	Message string
	Err     error
}

func (e *PlanFailedError) Error() string {
	return e.Message
}

func (e *PlanFailedError) Unwrap() error {
	return e.Err
}
