package services

import "fabtrack/internal/core/domain/model/component"

// DisplayStatus is the derived, order-level label computed from component
// states. It is presentation-facing and never stored.
type DisplayStatus string

const (
	// NotStarted means no fabrication signal exists, which for the tri-state
	// representation only happens when the order has no components.
	NotStarted DisplayStatus = "Not Started"

	// InProgress means at least one component is still raw or semi-finished.
	InProgress DisplayStatus = "In Progress"

	// ReadyToComplete means every component is completed and the order is
	// eligible for the completion transition.
	ReadyToComplete DisplayStatus = "Ready to Complete"
)

// StatusAggregator is a stateless domain service that maps a collection of
// component states to one order-level status label and decides whether an
// order is eligible to complete.
//
// Business rules:
//   - An empty component list is "Not Started" and never ready to complete;
//     this guards against accidental completion of an empty order
//   - All components completed means "Ready to Complete"
//   - Any raw or semi-finished component means "In Progress"
type StatusAggregator struct{}

// NewStatusAggregator creates a new StatusAggregator instance.
func NewStatusAggregator() StatusAggregator {
	return StatusAggregator{}
}

// DeriveDisplayStatus computes the order-level display status from the given
// component states. The result is purely derived; callers must not persist it
// as ground truth.
func (StatusAggregator) DeriveDisplayStatus(components []*component.Component) DisplayStatus {
	if len(components) == 0 {
		return NotStarted
	}

	allCompleted := true
	anyInProgress := false
	for _, c := range components {
		switch c.Status() {
		case component.Completed:
		case component.Raw, component.SemiFinished:
			allCompleted = false
			anyInProgress = true
		default:
			allCompleted = false
		}
	}

	switch {
	case allCompleted:
		return ReadyToComplete
	case anyInProgress:
		return InProgress
	default:
		return NotStarted
	}
}

// IsReadyToComplete reports whether every component is fully fabricated.
// An order with zero components is defined as NOT ready to complete.
func (StatusAggregator) IsReadyToComplete(components []*component.Component) bool {
	if len(components) == 0 {
		return false
	}

	for _, c := range components {
		if c.Status() != component.Completed {
			return false
		}
	}
	return true
}
