package maintenance

import (
	"errors"
	"fmt"

	"fleet/internal/pkg/errs"
)

// Status represents the lifecycle state of a maintenance record.
// It implements a state machine with defined transitions:
//
//	Pending ──> InProgress ──> Completed
//	   │            │
//	   └────────────┴──> Cancelled
//
// Completed and Cancelled are terminal: no transition leaves them.
// A direct Pending -> Completed jump is rejected; work must pass through
// InProgress first.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status of every maintenance record.
	StatusPending

	// StatusInProgress indicates the maintenance work has started.
	StatusInProgress

	// StatusCompleted indicates the work finished. Terminal.
	StatusCompleted

	// StatusCancelled indicates the record was called off. Terminal.
	StatusCancelled
)

// Transition errors distinguish "the record is already closed" from
// "the requested jump skips a mandatory state".
var (
	// ErrStatusIsTerminal is returned for any transition requested from
	// Completed or Cancelled.
	ErrStatusIsTerminal = errors.New("maintenance status is terminal")
	// ErrInvalidStatusTransition is returned for transitions the state
	// machine does not define, such as Pending directly to Completed.
	ErrInvalidStatusTransition = errors.New("invalid maintenance status transition")
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "Unknown",
		StatusPending:    "Pending",
		StatusInProgress: "InProgress",
		StatusCompleted:  "Completed",
		StatusCancelled:  "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:    "Pending",
		StatusInProgress: "InProgress",
		StatusCompleted:  "Completed",
		StatusCancelled:  "Cancelled",
	}
}

// Validate checks that the Status is one of the defined states.
// StatusUnknown and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status name as produced by String.
// Used when reading statuses from API parameters.
func StatusFromString(str string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == str {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", str))
}

// IsTerminal reports whether no further transition is permitted.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// TransitionTo validates a transition to target and returns the new status.
//
// Returns ErrStatusIsTerminal when the current status is Completed or
// Cancelled, and ErrInvalidStatusTransition for any jump the state machine
// does not define. The target must itself be a valid status.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if s.IsTerminal() {
		return 0, fmt.Errorf("%w: no transition allowed from %s", ErrStatusIsTerminal, s)
	}

	allowed := false
	switch s {
	case StatusPending:
		allowed = target == StatusInProgress || target == StatusCancelled
	case StatusInProgress:
		allowed = target == StatusCompleted || target == StatusCancelled
	}

	if !allowed {
		return 0, fmt.Errorf("%w: %s to %s", ErrInvalidStatusTransition, s, target)
	}

	return target, nil
}
