package commands

import (
	"errors"

	"fabtrack/internal/pkg/errs"
	"fabtrack/internal/pkg/guard"
)

var (
	ErrChangeComponentDescriptionCommandIsNotConstructed = errors.New(
		"ChangeComponentDescriptionCommand must be created via NewChangeComponentDescriptionCommand constructor",
	)
)

// ChangeComponentDescriptionCommand represents a request to replace the
// free-text description of one component. An empty description is valid and
// clears the field.
type ChangeComponentDescriptionCommand struct { //nolint:recvcheck //using for validation
	orderID     int64
	componentID int64
	description string

	guard guard.ConstructorGuard
}

// NewChangeComponentDescriptionCommand creates a command to change a
// component's description. The text itself is not validated beyond what
// storage permits.
func NewChangeComponentDescriptionCommand(
	orderID, componentID int64, description string,
) (ChangeComponentDescriptionCommand, error) {
	cmd := ChangeComponentDescriptionCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setComponentID(componentID),
	); err != nil {
		return ChangeComponentDescriptionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeComponentDescriptionCommandIsNotConstructed if validation fails.
func (c ChangeComponentDescriptionCommand) Validate() error {
	return c.guard.Validate(ErrChangeComponentDescriptionCommandIsNotConstructed)
}

// OrderID returns the identifier of the owning order.
func (c ChangeComponentDescriptionCommand) OrderID() int64 {
	return c.orderID
}

// ComponentID returns the identifier of the component to change.
func (c ChangeComponentDescriptionCommand) ComponentID() int64 {
	return c.componentID
}

// Description returns the new description text.
func (c ChangeComponentDescriptionCommand) Description() string {
	return c.description
}

func (c *ChangeComponentDescriptionCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("orderId")
	}
	c.orderID = orderID
	return nil
}

func (c *ChangeComponentDescriptionCommand) setComponentID(componentID int64) error {
	if componentID <= 0 {
		return errs.NewValueIsInvalidError("componentId")
	}
	c.componentID = componentID
	return nil
}
