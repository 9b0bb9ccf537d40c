package component

import (
	"errors"
	"fmt"

	"fabtrack/internal/pkg/errs"
)

var (
	// ErrComponentIsNotConstructed is returned when a Component instance was not
	// created through NewComponent or RestoreComponent.
	ErrComponentIsNotConstructed = errors.New(
		"Component must be created via NewComponent or RestoreComponent",
	)

	// ErrComponentIDAlreadyAssigned is returned when AssignID is called on a
	// component that already carries a storage identity.
	ErrComponentIDAlreadyAssigned = errors.New("component ID is already assigned")
)

// Component is an individually tracked sub-part of an Order with its own
// fabrication status. It maintains these invariants:
//   - Name must not be empty
//   - Price is per-unit and must not be negative
//   - Quantity must be positive
//   - Status is always one of the valid tri-state tokens
//
// The identity is assigned by storage; a freshly constructed component has a
// zero ID until its parent order is persisted.
type Component struct {
	// id is the storage-assigned identifier, zero until persisted
	id int64

	// name identifies the fabricated part
	name string

	// price is the per-unit price
	price float64

	// quantity is the number of units to fabricate (must be positive)
	quantity int

	// status is the current fabrication state
	status Status

	// description is optional free text; empty means no description
	description string

	// isConstructed ensures the component was created via a constructor
	isConstructed bool
}

// NewComponent creates a component for a new order position. The component
// starts in Raw status with no description; the identity is assigned later by
// storage. Returns a validation error if name is empty, price is negative, or
// quantity is not positive.
func NewComponent(name string, price float64, quantity int) (*Component, error) {
	component := &Component{
		status:        Raw,
		isConstructed: true,
	}

	if err := errors.Join(
		component.setName(name),
		component.setPrice(price),
		component.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return component, nil
}

// RestoreComponent reconstructs a component from persistence, including its
// storage identity, status and description. All invariants are re-validated so
// corrupt rows surface as errors instead of invalid aggregates.
func RestoreComponent(
	id int64, name string, price float64, quantity int, status Status, description string,
) (*Component, error) {
	component := &Component{
		description:   description,
		isConstructed: true,
	}

	if err := errors.Join(
		component.setRestoredID(id),
		component.setName(name),
		component.setPrice(price),
		component.setQuantity(quantity),
		component.setStatus(status),
	); err != nil {
		return nil, err
	}

	return component, nil
}

// Validate ensures the Component instance was properly constructed.
func (c *Component) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrComponentIsNotConstructed
	}
	return nil
}

// ID returns the storage-assigned identifier, zero if not yet persisted.
func (c *Component) ID() int64 {
	return c.id
}

// Name returns the component name.
func (c *Component) Name() string {
	return c.name
}

// Price returns the per-unit price.
func (c *Component) Price() float64 {
	return c.price
}

// Quantity returns the number of units.
func (c *Component) Quantity() int {
	return c.quantity
}

// Status returns the current fabrication status.
func (c *Component) Status() Status {
	return c.status
}

// Description returns the free-text description, empty if none is set.
func (c *Component) Description() string {
	return c.description
}

// LineTotal returns the component's contribution to the order total price,
// price multiplied by quantity.
func (c *Component) LineTotal() float64 {
	return c.price * float64(c.quantity)
}

// AssignID records the identity handed out by storage on first persistence.
// Assigning an identity twice, or an invalid one, is an error.
func (c *Component) AssignID(id int64) error {
	if c.id != 0 {
		return ErrComponentIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"componentId",
			fmt.Errorf("%d is not a valid identifier", id),
		)
	}

	c.id = id
	return nil
}

// ChangeStatus moves the component to the given fabrication state.
// Any valid token is allowed regardless of the current state; no sibling
// component is affected.
func (c *Component) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

// ChangeDescription replaces the free-text description.
// An empty string is a valid value and clears the description.
func (c *Component) ChangeDescription(text string) {
	c.description = text
}

func (c *Component) setRestoredID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"componentId",
			fmt.Errorf("%d is not a valid identifier", id),
		)
	}
	c.id = id
	return nil
}

func (c *Component) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Component) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%v is negative", price),
		)
	}
	c.price = price
	return nil
}

func (c *Component) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	c.quantity = quantity
	return nil
}

func (c *Component) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
