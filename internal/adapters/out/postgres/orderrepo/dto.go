// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the production
// order aggregate, handling the conversion between domain entities and their
// database representation across the orders and components tables.
package orderrepo

import (
	"time"

	"fabtrack/internal/core/domain/model/component"
	"fabtrack/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Identity is generated by the database; quantity and total_price are the
// derived aggregates persisted for cheap listing queries.
type OrderDTO struct {
	ID           int64 `gorm:"primaryKey;autoIncrement"`
	CustomerName string
	ProductName  string
	OrderDate    time.Time
	Deadline     time.Time `gorm:"index"`
	Status       int       `gorm:"index"`
	CompletedAt  *time.Time
	Quantity     int
	TotalPrice   float64
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ComponentDTO represents one component row. Components always belong to an
// order and are scoped by order_id in every write.
type ComponentDTO struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	OrderID     int64 `gorm:"index"`
	Name        string
	Price       float64
	Quantity    int
	Status      int
	Description string
}

// TableName specifies the database table name for component entities.
func (ComponentDTO) TableName() string {
	return "components"
}

// fromDomain converts an order aggregate to its database representation.
// Component rows are mapped separately; see componentFromDomain.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:           aggregate.ID(),
		CustomerName: aggregate.CustomerName(),
		ProductName:  aggregate.ProductName(),
		OrderDate:    aggregate.OrderDate(),
		Deadline:     aggregate.Deadline(),
		Status:       int(aggregate.Status()),
		CompletedAt:  aggregate.CompletedAt(),
		Quantity:     aggregate.Quantity(),
		TotalPrice:   aggregate.TotalPrice(),
	}
}

// componentFromDomain converts a component entity to its database row,
// binding it to the owning order.
func componentFromDomain(orderID int64, c *component.Component) ComponentDTO {
	return ComponentDTO{
		ID:          c.ID(),
		OrderID:     orderID,
		Name:        c.Name(),
		Price:       c.Price(),
		Quantity:    c.Quantity(),
		Status:      int(c.Status()),
		Description: c.Description(),
	}
}

// toDomain converts an order row and its component rows back to the domain
// aggregate. All domain invariants are re-validated during restoration.
func toDomain(dto OrderDTO, componentDTOs []ComponentDTO) (*order.Order, error) {
	components := make([]*component.Component, 0, len(componentDTOs))
	for _, componentDTO := range componentDTOs {
		c, err := component.RestoreComponent(
			componentDTO.ID,
			componentDTO.Name,
			componentDTO.Price,
			componentDTO.Quantity,
			component.Status(componentDTO.Status),
			componentDTO.Description,
		)
		if err != nil {
			return nil, err
		}
		components = append(components, c)
	}

	return order.RestoreOrder(
		dto.ID,
		dto.CustomerName,
		dto.ProductName,
		dto.OrderDate,
		dto.Deadline,
		order.Status(dto.Status),
		dto.CompletedAt,
		components,
	)
}
