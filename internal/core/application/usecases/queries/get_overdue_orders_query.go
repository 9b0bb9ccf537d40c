package queries

import (
	"errors"
	"time"

	"fabtrack/internal/pkg/guard"
)

var (
	ErrGetOverdueOrdersQueryIsNotConstructed = errors.New(
		"GetOverdueOrdersQuery must be created via NewGetOverdueOrdersQuery constructor",
	)
)

// GetOverdueOrdersQuery retrieves active orders whose deadline has passed.
// Used by the overdue monitoring job and the reporting endpoint.
type GetOverdueOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOverdueOrdersQuery creates a query to retrieve overdue orders.
// This is a parameterless query; the reference time is the handler's clock.
func NewGetOverdueOrdersQuery() GetOverdueOrdersQuery {
	return GetOverdueOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOverdueOrdersQueryIsNotConstructed if validation fails.
func (q GetOverdueOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueOrdersQueryIsNotConstructed)
}

// GetOverdueOrdersQueryResponse represents one overdue order.
// Completed orders never appear here regardless of their deadline.
type GetOverdueOrdersQueryResponse struct {
	ID           int64
	CustomerName string
	ProductName  string
	Deadline     time.Time
}
