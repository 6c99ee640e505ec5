package services

import (
	"errors"
	"fmt"

	"github.com/chrisshaungrayson-max/DMR-Jason-sub000/models"
)

// ErrGoalNotFound is returned when an operation targets a goal id that
// no longer exists.
var ErrGoalNotFound = errors.New("goal not found")

// ValidationError reports the first failing field of a goal-params
// payload. Expected and user-facing; nothing reaches the store when one
// is raised.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid params: %s %s", e.Field, e.Message)
}

// ActiveGoalConflictError means the user already has an active goal of
// the given type. Raised by the advisory client-side guard, or
// translated from the store's partial unique index violation when two
// creates race past the guard.
type ActiveGoalConflictError struct {
	Type models.GoalType
}

func (e *ActiveGoalConflictError) Error() string {
	return fmt.Sprintf("an active %s goal already exists", e.Type)
}
