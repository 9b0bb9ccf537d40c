package order

import (
	"fmt"

	"fabtrack/internal/pkg/errs"
)

// Status represents the lifecycle state of a production order.
// It implements a state machine with a single permitted transition:
//
//	Active ──> Completed
//
// Completed is terminal; no transition back to Active is exposed.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Active is the initial status when an order is created.
	// Components of an active order are being fabricated.
	Active

	// Completed indicates all fabrication is finished and the order was
	// explicitly completed. This is a final state.
	Completed
)

// getStatusStrings returns a map of Status values to their wire representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Active:    "active",
		Completed: "completed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Active:    "active",
		Completed: "completed",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Active, Completed.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid order status", s),
		)
	}
	return nil
}

// String returns the wire token of the status, or "unknown" for invalid
// values. Implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Active -> Completed
//
// Completing an already completed order is a state conflict; callers that
// want idempotent re-completion must check the current status first.
func (s Status) Complete() (Status, error) {
	if s == Completed {
		return 0, errs.NewStateConflictError("order is already completed")
	}
	if s != Active {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}
