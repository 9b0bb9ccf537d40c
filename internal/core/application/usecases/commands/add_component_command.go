package commands

import (
	"errors"

	"fabtrack/internal/pkg/errs"
	"fabtrack/internal/pkg/guard"
)

var (
	ErrAddComponentCommandIsNotConstructed = errors.New(
		"AddComponentCommand must be created via NewAddComponentCommand constructor",
	)
)

// AddComponentCommand represents a request to append a component to an
// existing order. The order's derived quantity and total price follow
// automatically.
type AddComponentCommand struct { //nolint:recvcheck //using for validation
	orderID  int64
	name     string
	price    float64
	quantity int

	guard guard.ConstructorGuard
}

// NewAddComponentCommand creates a command to append a component.
// Detailed price/quantity validation happens in the domain constructor.
func NewAddComponentCommand(orderID int64, name string, price float64, quantity int) (AddComponentCommand, error) {
	cmd := AddComponentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setName(name),
	); err != nil {
		return AddComponentCommand{}, err
	}

	cmd.price = price
	cmd.quantity = quantity
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddComponentCommandIsNotConstructed if validation fails.
func (c AddComponentCommand) Validate() error {
	return c.guard.Validate(ErrAddComponentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to extend.
func (c AddComponentCommand) OrderID() int64 {
	return c.orderID
}

// Name returns the component name.
func (c AddComponentCommand) Name() string {
	return c.name
}

// Price returns the per-unit price.
func (c AddComponentCommand) Price() float64 {
	return c.price
}

// Quantity returns the number of units.
func (c AddComponentCommand) Quantity() int {
	return c.quantity
}

func (c *AddComponentCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("orderId")
	}
	c.orderID = orderID
	return nil
}

func (c *AddComponentCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
