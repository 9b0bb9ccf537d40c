package commands

import (
	"errors"
	"time"

	"fabtrack/internal/pkg/errs"
	"fabtrack/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// ComponentInput carries the client-supplied facts for one component position
// of a new order. Deep validation (name, price, quantity bounds) happens in
// the domain constructor; the command only guarantees the list is present.
type ComponentInput struct {
	Name     string
	Price    float64
	Quantity int
}

// CreateOrderCommand represents a request to register a new production order
// with its initial component list. Client-supplied aggregate quantity or
// total price is deliberately absent: aggregates are always recomputed
// server-side from the components.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("ACME", "winch", orderDate, deadline,
//	    []ComponentInput{{Name: "housing", Price: 1000, Quantity: 2}})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerName string
	productName  string
	orderDate    time.Time
	deadline     time.Time
	components   []ComponentInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new production order.
// Validates that customer and product names are present, both dates are set,
// and at least one component is supplied. Returns an error if any validation fails.
func NewCreateOrderCommand(
	customerName, productName string,
	orderDate, deadline time.Time,
	components []ComponentInput,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomerName(customerName),
		orderCommand.setProductName(productName),
		orderCommand.setDates(orderDate, deadline),
		orderCommand.setComponents(components),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerName returns the ordering customer.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// ProductName returns the product being manufactured.
func (c CreateOrderCommand) ProductName() string {
	return c.productName
}

// OrderDate returns when the order was placed.
func (c CreateOrderCommand) OrderDate() time.Time {
	return c.orderDate
}

// Deadline returns the promised delivery date.
func (c CreateOrderCommand) Deadline() time.Time {
	return c.deadline
}

// Components returns the component inputs for the new order.
func (c CreateOrderCommand) Components() []ComponentInput {
	return c.components
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	c.productName = productName
	return nil
}

func (c *CreateOrderCommand) setDates(orderDate, deadline time.Time) error {
	if orderDate.IsZero() {
		return errs.NewValueIsRequiredError("orderDate")
	}
	if deadline.IsZero() {
		return errs.NewValueIsRequiredError("deadline")
	}

	c.orderDate = orderDate
	c.deadline = deadline
	return nil
}

func (c *CreateOrderCommand) setComponents(components []ComponentInput) error {
	if len(components) == 0 {
		return errs.NewValueIsRequiredError("components")
	}

	c.components = components
	return nil
}
