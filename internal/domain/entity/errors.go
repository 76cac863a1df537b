package entity

import "errors"

var (
	// ErrValidation signals bad or missing input, or a duplicate flight id
	ErrValidation = errors.New("validation error")

	// ErrBusy signals that another ingestion is already pending
	ErrBusy = errors.New("ingestion already in progress")

	// ErrLookup signals that the flight lookup service failed
	ErrLookup = errors.New("flight lookup failed")

	// ErrNotFound signals that the target flight does not exist
	ErrNotFound = errors.New("flight not found")

	// ErrPersistence signals that the durable write failed. The in-memory
	// mutation that caused it has still been applied.
	ErrPersistence = errors.New("persistence error")

	// ErrInvalidTransition signals a status change outside the flight lifecycle
	ErrInvalidTransition = errors.New("invalid status transition")
)
