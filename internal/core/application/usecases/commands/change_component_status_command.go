package commands

import (
	"errors"

	"fabtrack/internal/core/domain/model/component"
	"fabtrack/internal/pkg/errs"
	"fabtrack/internal/pkg/guard"
)

var (
	ErrChangeComponentStatusCommandIsNotConstructed = errors.New(
		"ChangeComponentStatusCommand must be created via NewChangeComponentStatusCommand constructor",
	)
)

// ChangeComponentStatusCommand represents a request to move one component to
// a new fabrication state. The status token is parsed and validated at
// construction, so a handler never sees an unknown token.
type ChangeComponentStatusCommand struct { //nolint:recvcheck //using for validation
	orderID     int64
	componentID int64
	status      component.Status

	guard guard.ConstructorGuard
}

// NewChangeComponentStatusCommand creates a command to change a component's
// status. The status argument is the wire token ("raw", "semi-finished" or
// "completed"); anything else fails with a validation error.
func NewChangeComponentStatusCommand(
	orderID, componentID int64, status string,
) (ChangeComponentStatusCommand, error) {
	cmd := ChangeComponentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setComponentID(componentID),
		cmd.setStatus(status),
	); err != nil {
		return ChangeComponentStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeComponentStatusCommandIsNotConstructed if validation fails.
func (c ChangeComponentStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeComponentStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the owning order.
func (c ChangeComponentStatusCommand) OrderID() int64 {
	return c.orderID
}

// ComponentID returns the identifier of the component to change.
func (c ChangeComponentStatusCommand) ComponentID() int64 {
	return c.componentID
}

// Status returns the parsed target status.
func (c ChangeComponentStatusCommand) Status() component.Status {
	return c.status
}

func (c *ChangeComponentStatusCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("orderId")
	}
	c.orderID = orderID
	return nil
}

func (c *ChangeComponentStatusCommand) setComponentID(componentID int64) error {
	if componentID <= 0 {
		return errs.NewValueIsInvalidError("componentId")
	}
	c.componentID = componentID
	return nil
}

func (c *ChangeComponentStatusCommand) setStatus(status string) error {
	parsed, err := component.StatusFromString(status)
	if err != nil {
		return err
	}
	c.status = parsed
	return nil
}
