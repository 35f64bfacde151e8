package order

import (
	"fmt"

	"fleet/internal/pkg/errs"
)

// Status represents the lifecycle state of a transport order.
//
// State transitions:
//
//	Created ──> Assigned ──> Completed
//
// Completed is final.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusCreated is the initial status; the order waits for a vehicle.
	StatusCreated

	// StatusAssigned indicates the order is bound to a vehicle and its driver.
	StatusAssigned

	// StatusCompleted indicates the order was delivered. Final.
	StatusCompleted
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusCreated:   "Created",
		StatusAssigned:  "Assigned",
		StatusCompleted: "Completed",
	}
}

// Validate checks that the Status is one of the defined states.
func (s Status) Validate() error {
	if s != StatusCreated && s != StatusAssigned && s != StatusCompleted {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Assign transitions the status to Assigned. Only Created orders can be assigned.
func (s Status) Assign() (Status, error) {
	if s != StatusCreated {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to assign", s))
	}
	return StatusAssigned, nil
}

// Complete transitions the status to Completed. Only Assigned orders can complete.
func (s Status) Complete() (Status, error) {
	if s != StatusAssigned {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s))
	}
	return StatusCompleted, nil
}
