package workflow

import "errors"

var (
	// ErrNotFound covers appointments, requests and reports alike; handlers
	// only need the 404 mapping.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition is returned when an operation is valid for the
	// entity but not in its current state.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrAppointmentClosed is returned for writes against COMPLETED or
	// CANCELLED appointments.
	ErrAppointmentClosed = errors.New("appointment is closed")

	// ErrRequestClosed is returned for writes against requests that no
	// longer accept data.
	ErrRequestClosed = errors.New("request is closed")

	// ErrReportAlreadyExists guards the one-report-per-appointment rule.
	ErrReportAlreadyExists = errors.New("medical report already exists")

	// ErrValidation is wrapped with a human-readable detail.
	ErrValidation = errors.New("validation failed")
)
