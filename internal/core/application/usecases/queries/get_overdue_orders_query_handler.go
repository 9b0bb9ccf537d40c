package queries

import (
	"context"
	"time"

	"fabtrack/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOverdueOrdersQueryHandler retrieves active orders that missed their
// deadline. Completed orders are excluded even when they finished late.
type GetOverdueOrdersQueryHandler struct {
	db *gorm.DB

	// now is the clock the deadline is compared against.
	now func() time.Time
}

// NewGetOverdueOrdersQueryHandler creates a handler for overdue order
// queries. Requires a GORM database connection for query execution.
func NewGetOverdueOrdersQueryHandler(db *gorm.DB) GetOverdueOrdersQueryHandler {
	return GetOverdueOrdersQueryHandler{db: db, now: time.Now}
}

// Handle executes the query and returns overdue orders sorted by deadline,
// oldest first.
func (h GetOverdueOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueOrdersQuery,
) ([]GetOverdueOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOverdueOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			product_name,
			deadline
		FROM orders
		WHERE status = ? AND deadline < ?
		ORDER BY deadline, id
	`, order.Active, h.now()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOverdueOrdersQueryResponse

		err = rows.Scan(
			&resp.ID,
			&resp.CustomerName,
			&resp.ProductName,
			&resp.Deadline,
		)
		if err != nil {
			return nil, err
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
