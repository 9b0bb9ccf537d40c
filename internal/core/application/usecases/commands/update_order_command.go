package commands

import (
	"errors"
	"time"

	"fabtrack/internal/pkg/errs"
	"fabtrack/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// UpdateOrderCommand represents a partial update of an order's descriptive
// fields: customer name, product name, order date and deadline. Nil fields
// are left untouched. Status and components are never modified through this
// command.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      int64
	customerName *string
	productName  *string
	orderDate    *time.Time
	deadline     *time.Time

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to edit order fields.
// Requires a positive order ID and at least one field to change; provided
// names must be non-empty.
func NewUpdateOrderCommand(
	orderID int64,
	customerName, productName *string,
	orderDate, deadline *time.Time,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setFields(customerName, productName, orderDate, deadline),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderCommandIsNotConstructed if validation fails.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() int64 {
	return c.orderID
}

// CustomerName returns the new customer name, nil to keep the current one.
func (c UpdateOrderCommand) CustomerName() *string {
	return c.customerName
}

// ProductName returns the new product name, nil to keep the current one.
func (c UpdateOrderCommand) ProductName() *string {
	return c.productName
}

// OrderDate returns the new order date, nil to keep the current one.
func (c UpdateOrderCommand) OrderDate() *time.Time {
	return c.orderDate
}

// Deadline returns the new deadline, nil to keep the current one.
func (c UpdateOrderCommand) Deadline() *time.Time {
	return c.deadline
}

func (c *UpdateOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("orderId")
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setFields(
	customerName, productName *string, orderDate, deadline *time.Time,
) error {
	if customerName == nil && productName == nil && orderDate == nil && deadline == nil {
		return errs.NewValueIsRequiredError("fields")
	}
	if customerName != nil && *customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	if productName != nil && *productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}

	c.customerName = customerName
	c.productName = productName
	c.orderDate = orderDate
	c.deadline = deadline
	return nil
}
