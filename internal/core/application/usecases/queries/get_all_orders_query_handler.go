package queries

import (
	"context"

	"fabtrack/internal/core/domain/model/component"
	"fabtrack/internal/core/domain/model/order"
	"fabtrack/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves the full order listing from the
// database. The display status is derived per order from its component
// states; it is never read from storage.
type GetAllOrdersQueryHandler struct {
	db         *gorm.DB
	aggregator services.StatusAggregator
}

// NewGetAllOrdersQueryHandler creates a handler for the order listing.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{
		db:         db,
		aggregator: services.NewStatusAggregator(),
	}
}

// Handle executes the query and returns all orders with nested components,
// sorted by order ID for consistent output.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.fetchOrders(ctx)
	if err != nil {
		return nil, err
	}

	componentsByOrder, err := h.fetchComponents(ctx)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		rows := componentsByOrder[orders[i].ID]
		orders[i].Components = make([]ComponentResponse, 0, len(rows))

		parts := make([]*component.Component, 0, len(rows))
		for _, row := range rows {
			orders[i].Components = append(orders[i].Components, row.response)
			parts = append(parts, row.entity)
		}
		orders[i].DisplayStatus = h.aggregator.DeriveDisplayStatus(parts)
	}

	return orders, nil
}

func (h GetAllOrdersQueryHandler) fetchOrders(ctx context.Context) ([]GetAllOrdersQueryResponse, error) {
	orders := make([]GetAllOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			product_name,
			order_date,
			deadline,
			status,
			completed_at,
			quantity,
			total_price
		FROM orders
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllOrdersQueryResponse
		var status int

		err = rows.Scan(
			&resp.ID,
			&resp.CustomerName,
			&resp.ProductName,
			&resp.OrderDate,
			&resp.Deadline,
			&status,
			&resp.CompletedAt,
			&resp.Quantity,
			&resp.TotalPrice,
		)
		if err != nil {
			return nil, err
		}

		resp.Status = order.Status(status).String()
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// componentRow pairs the wire representation with the domain entity the
// status aggregator works on.
type componentRow struct {
	response ComponentResponse
	entity   *component.Component
}

func (h GetAllOrdersQueryHandler) fetchComponents(ctx context.Context) (map[int64][]componentRow, error) {
	byOrder := make(map[int64][]componentRow)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			name,
			price,
			quantity,
			status,
			description
		FROM components
		ORDER BY order_id, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ComponentResponse
		var orderID int64
		var status int

		err = rows.Scan(
			&resp.ID,
			&orderID,
			&resp.Name,
			&resp.Price,
			&resp.Quantity,
			&status,
			&resp.Description,
		)
		if err != nil {
			return nil, err
		}

		resp.Status = component.Status(status).String()

		entity, entityErr := component.RestoreComponent(
			resp.ID, resp.Name, resp.Price, resp.Quantity, component.Status(status), resp.Description)
		if entityErr != nil {
			return nil, entityErr
		}

		byOrder[orderID] = append(byOrder[orderID], componentRow{response: resp, entity: entity})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return byOrder, nil
}
