package queries

import (
	"errors"
	"time"

	"fabtrack/internal/core/domain/services"
	"fabtrack/internal/pkg/guard"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
)

// GetAllOrdersQuery retrieves every production order together with its
// components and the derived display status.
//
// Example:
//
//	query := NewGetAllOrdersQuery()
//	handler := NewGetAllOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get orders: %w", err)
//	}
//
//	for _, o := range orders {
//	    fmt.Printf("Order %d: %s (%s)\n", o.ID, o.ProductName, o.DisplayStatus)
//	}
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to retrieve all orders.
// This is a parameterless query.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllOrdersQueryIsNotConstructed if validation fails.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// ComponentResponse represents one component row of an order listing.
type ComponentResponse struct {
	ID          int64
	Name        string
	Price       float64
	Quantity    int
	Status      string
	Description string
}

// GetAllOrdersQueryResponse represents one order of the listing, including
// its components, derived totals and the component-driven display status.
type GetAllOrdersQueryResponse struct {
	ID            int64
	CustomerName  string
	ProductName   string
	OrderDate     time.Time
	Deadline      time.Time
	Status        string
	DisplayStatus services.DisplayStatus
	CompletedAt   *time.Time
	Quantity      int
	TotalPrice    float64
	Components    []ComponentResponse
}
