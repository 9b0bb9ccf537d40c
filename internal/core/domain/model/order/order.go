package order

import (
	"errors"
	"fmt"
	"time"

	"fabtrack/internal/core/domain/model/component"
	"fabtrack/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderIDAlreadyAssigned is returned when AssignID is called on an order
	// that already carries a storage identity.
	ErrOrderIDAlreadyAssigned = errors.New("order ID is already assigned")
)

// Order represents a customer production request composed of one or more
// components. It is the aggregate root of the order lifecycle.
//
// Order maintains these invariants:
//   - Customer and product names are never empty
//   - The order date never falls after the deadline
//   - At least one component exists at all times
//   - Quantity and total price are always the sums over the component list;
//     client-supplied aggregates are never trusted
//   - Status transitions follow the Active -> Completed state machine
type Order struct {
	// id is the storage-assigned identifier, zero until persisted
	id int64

	// customerName is the ordering customer
	customerName string

	// productName is the product being manufactured
	productName string

	// orderDate is when the order was placed
	orderDate time.Time

	// deadline is the promised delivery date (never before orderDate)
	deadline time.Time

	// status is the current state in the order lifecycle
	status Status

	// completedAt is set exactly once, when the order completes
	completedAt *time.Time

	// components are the fabricated sub-parts, owned by the order
	components []*component.Component

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Active status from validated parts.
// The component list must be non-empty; an order cannot be created without
// anything to fabricate. Aggregate quantity and total price are derived from
// the components, never taken from the caller.
func NewOrder(
	customerName, productName string,
	orderDate, deadline time.Time,
	components []*component.Component,
) (*Order, error) {
	order := &Order{
		status:        Active,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setCustomerName(customerName),
		order.setProductName(productName),
		order.setDates(orderDate, deadline),
		order.setComponents(components),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence, including its storage
// identity, lifecycle status, completion timestamp and component list.
// All invariants are re-validated on the way in.
func RestoreOrder(
	id int64,
	customerName, productName string,
	orderDate, deadline time.Time,
	status Status,
	completedAt *time.Time,
	components []*component.Component,
) (*Order, error) {
	order := &Order{
		completedAt:   completedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setRestoredID(id),
		order.setCustomerName(customerName),
		order.setProductName(productName),
		order.setDates(orderDate, deadline),
		order.setStatus(status),
		order.setComponents(components),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the storage-assigned identifier, zero if not yet persisted.
func (o *Order) ID() int64 {
	return o.id
}

// CustomerName returns the ordering customer.
func (o *Order) CustomerName() string {
	return o.customerName
}

// ProductName returns the product being manufactured.
func (o *Order) ProductName() string {
	return o.productName
}

// OrderDate returns when the order was placed.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// Deadline returns the promised delivery date.
func (o *Order) Deadline() time.Time {
	return o.deadline
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CompletedAt returns the completion timestamp, nil while the order is active.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// Components returns the order's components.
// The slice is shared with the aggregate; callers must not mutate it.
func (o *Order) Components() []*component.Component {
	return o.components
}

// Quantity returns the aggregate quantity, the sum of component quantities.
// It is recomputed on every call so it can never diverge from the components.
func (o *Order) Quantity() int {
	total := 0
	for _, c := range o.components {
		total += c.Quantity()
	}
	return total
}

// TotalPrice returns the aggregate price, the sum of component line totals.
// It is recomputed on every call so it can never diverge from the components.
func (o *Order) TotalPrice() float64 {
	total := 0.0
	for _, c := range o.components {
		total += c.LineTotal()
	}
	return total
}

// AssignID records the identity handed out by storage on first persistence.
func (o *Order) AssignID(id int64) error {
	if o.id != 0 {
		return ErrOrderIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderId",
			fmt.Errorf("%d is not a valid identifier", id),
		)
	}

	o.id = id
	return nil
}

// ComponentByID finds a component of this order by its identifier.
// A component that exists in storage but belongs to a different order is
// indistinguishable from a missing one here; both fail with an
// ObjectNotFoundError. This is the ownership check required before any
// per-component mutation.
func (o *Order) ComponentByID(componentID int64) (*component.Component, error) {
	for _, c := range o.components {
		if c.ID() == componentID {
			return c, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("componentId", componentID)
}

// UpdateDetails applies a partial update to the order's descriptive fields.
// Nil parameters leave the corresponding field unchanged. Status, completion
// timestamp and components are never touched by this method. The date pair
// resulting from the update must still satisfy orderDate <= deadline.
func (o *Order) UpdateDetails(customerName, productName *string, orderDate, deadline *time.Time) error {
	newOrderDate := o.orderDate
	if orderDate != nil {
		newOrderDate = *orderDate
	}
	newDeadline := o.deadline
	if deadline != nil {
		newDeadline = *deadline
	}

	var errCustomer, errProduct error
	if customerName != nil {
		errCustomer = o.setCustomerName(*customerName)
	}
	if productName != nil {
		errProduct = o.setProductName(*productName)
	}

	return errors.Join(
		errCustomer,
		errProduct,
		o.setDates(newOrderDate, newDeadline),
	)
}

// AddComponent appends a component to the order. Aggregate quantity and total
// price follow automatically since they are derived from the component list.
func (o *Order) AddComponent(c *component.Component) error {
	if err := c.Validate(); err != nil {
		return err
	}

	o.components = append(o.components, c)
	return nil
}

// RemoveComponent detaches a component from the order and returns it.
// Removing the only remaining component is rejected: an order must always
// have something to fabricate, and a component-less order would have an
// undefined display status.
func (o *Order) RemoveComponent(componentID int64) (*component.Component, error) {
	if len(o.components) == 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"componentId",
			fmt.Errorf("cannot remove the last component of order %d", o.id),
		)
	}

	for i, c := range o.components {
		if c.ID() == componentID {
			o.components = append(o.components[:i], o.components[i+1:]...)
			return c, nil
		}
	}

	return nil, errs.NewObjectNotFoundError("componentId", componentID)
}

// Complete transitions the order to Completed at the given time and cascades
// the completed status to every component. Readiness policy is enforced by
// the caller; this method only guards the state machine.
func (o *Order) Complete(at time.Time) error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	for _, c := range o.components {
		if err := c.ChangeStatus(component.Completed); err != nil {
			return err
		}
	}

	o.status = newStatus
	o.completedAt = &at
	return nil
}

func (o *Order) setRestoredID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderId",
			fmt.Errorf("%d is not a valid identifier", id),
		)
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = customerName
	return nil
}

func (o *Order) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	o.productName = productName
	return nil
}

func (o *Order) setDates(orderDate, deadline time.Time) error {
	if orderDate.IsZero() {
		return errs.NewValueIsRequiredError("orderDate")
	}
	if deadline.IsZero() {
		return errs.NewValueIsRequiredError("deadline")
	}
	if deadline.Before(orderDate) {
		return errs.NewValueIsInvalidErrorWithCause(
			"deadline",
			fmt.Errorf("deadline %s is before order date %s",
				deadline.Format(time.DateOnly), orderDate.Format(time.DateOnly)),
		)
	}

	o.orderDate = orderDate
	o.deadline = deadline
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setComponents(components []*component.Component) error {
	if len(components) == 0 {
		return errs.NewValueIsRequiredError("components")
	}

	for _, c := range components {
		if err := c.Validate(); err != nil {
			return err
		}
	}

	o.components = components
	return nil
}
