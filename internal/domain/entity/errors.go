package entity

import (
	"errors"
	"fmt"
)

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrMovementNotFound   = errors.New("movement not found")
	ErrFlightNotFound     = errors.New("flight not found")
	ErrMissingFields      = errors.New("required fields are missing")
	ErrInvalidTaskStatus  = errors.New("invalid task status")
	ErrInvalidTransition  = errors.New("only provisional or military tasks can be confirmed")
	ErrInvalidDateFormat  = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidTimeFormat  = errors.New("invalid time format, use HH:MM (24-hour)")
	ErrInvalidDateRange   = errors.New("start date must be before end date")
	ErrInvalidModule      = errors.New("invalid module specified")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// PartialGroupConfirmError reports a confirm that updated the target row but
// failed before every group sibling carried the new status and number.
type PartialGroupConfirmError struct {
	GroupID    string
	TaskNumber string
	Err        error
}

func (e *PartialGroupConfirmError) Error() string {
	return fmt.Sprintf("group %s partially confirmed with number %s: %v", e.GroupID, e.TaskNumber, e.Err)
}

func (e *PartialGroupConfirmError) Unwrap() error {
	return e.Err
}
