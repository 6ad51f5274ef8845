package services

import "fmt"

// ValidationError reports a business-rule violation detected before any
// write. Field names the offending input where one applies.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// GuardError reports a destructive operation blocked by dependent state,
// e.g. deleting a room that still has active reservations.
type GuardError struct {
	Message string
}

func (e *GuardError) Error() string { return e.Message }

// NotFoundError reports a missing customer, room or reservation.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("%s not found", e.Entity) }
