package commands

import (
	"errors"

	"fabtrack/internal/pkg/errs"
	"fabtrack/internal/pkg/guard"
)

var (
	ErrRemoveComponentCommandIsNotConstructed = errors.New(
		"RemoveComponentCommand must be created via NewRemoveComponentCommand constructor",
	)
)

// RemoveComponentCommand represents a request to delete a single component of
// an order. Removing the order's last component is rejected by the domain.
type RemoveComponentCommand struct { //nolint:recvcheck //using for validation
	orderID     int64
	componentID int64

	guard guard.ConstructorGuard
}

// NewRemoveComponentCommand creates a command to remove the given component
// from the given order.
func NewRemoveComponentCommand(orderID, componentID int64) (RemoveComponentCommand, error) {
	cmd := RemoveComponentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setComponentID(componentID),
	); err != nil {
		return RemoveComponentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRemoveComponentCommandIsNotConstructed if validation fails.
func (c RemoveComponentCommand) Validate() error {
	return c.guard.Validate(ErrRemoveComponentCommandIsNotConstructed)
}

// OrderID returns the identifier of the owning order.
func (c RemoveComponentCommand) OrderID() int64 {
	return c.orderID
}

// ComponentID returns the identifier of the component to remove.
func (c RemoveComponentCommand) ComponentID() int64 {
	return c.componentID
}

func (c *RemoveComponentCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("orderId")
	}
	c.orderID = orderID
	return nil
}

func (c *RemoveComponentCommand) setComponentID(componentID int64) error {
	if componentID <= 0 {
		return errs.NewValueIsInvalidError("componentId")
	}
	c.componentID = componentID
	return nil
}
