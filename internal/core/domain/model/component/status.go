package component

import (
	"fmt"

	"fabtrack/internal/pkg/errs"
)

// Status represents the fabrication state of a single component.
// Unlike the order status it is not a state machine: the shop floor may move
// a component between any of the three states in any direction, so every
// valid token is reachable from every other one.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Raw means fabrication of the component has not started.
	Raw

	// SemiFinished means the component is partway through fabrication.
	SemiFinished

	// Completed means fabrication of the component is done.
	Completed
)

// getStatusStrings returns a map of Status values to their wire representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:      "unknown",
		Raw:          "raw",
		SemiFinished: "semi-finished",
		Completed:    "completed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Raw:          "raw",
		SemiFinished: "semi-finished",
		Completed:    "completed",
	}
}

// StatusFromString parses a wire token into a Status.
// Accepted tokens are "raw", "semi-finished" and "completed"; anything else
// fails with a ValueIsInvalidError.
func StatusFromString(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid component status", value),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are: Raw, SemiFinished, Completed.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid component status", s),
		)
	}
	return nil
}

// String returns the wire token of the status, or "unknown" for invalid values.
// Implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
