package http

import (
	"time"

	"fabtrack/internal/core/application/usecases/queries"
)

// ErrorResponse is the uniform error payload of the API.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ComponentRequest is one component position of an order creation request.
type ComponentRequest struct {
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Quantity int     `json:"quantity" validate:"gt=0"`
}

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	CustomerName string             `json:"customerName" validate:"required"`
	ProductName  string             `json:"productName" validate:"required"`
	OrderDate    time.Time          `json:"orderDate" validate:"required"`
	Deadline     time.Time          `json:"deadline" validate:"required"`
	Components   []ComponentRequest `json:"components" validate:"required,min=1,dive"`
}

// UpdateOrderRequest is the body of PATCH /orders/:id. Absent fields are
// left unchanged.
type UpdateOrderRequest struct {
	CustomerName *string    `json:"customerName,omitempty" validate:"omitempty,min=1"`
	ProductName  *string    `json:"productName,omitempty" validate:"omitempty,min=1"`
	OrderDate    *time.Time `json:"orderDate,omitempty"`
	Deadline     *time.Time `json:"deadline,omitempty"`
}

// AddComponentRequest is the body of POST /orders/:id/components.
type AddComponentRequest struct {
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Quantity int     `json:"quantity" validate:"gt=0"`
}

// ChangeComponentStatusRequest is the body of the component status route.
// Status carries the wire token: raw, semi-finished or completed.
type ChangeComponentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ChangeComponentDescriptionRequest is the body of the component description
// route. An empty description clears the field.
type ChangeComponentDescriptionRequest struct {
	Description string `json:"description"`
}

// ComponentResponse is the wire representation of one component.
type ComponentResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Status      string  `json:"status"`
	Description string  `json:"description,omitempty"`
}

// OrderResponse is the wire representation of one order with its components.
type OrderResponse struct {
	ID            int64               `json:"id"`
	CustomerName  string              `json:"customerName"`
	ProductName   string              `json:"productName"`
	OrderDate     time.Time           `json:"orderDate"`
	Deadline      time.Time           `json:"deadline"`
	Status        string              `json:"status"`
	DisplayStatus string              `json:"displayStatus"`
	CompletedAt   *time.Time          `json:"completedAt,omitempty"`
	Quantity      int                 `json:"quantity"`
	TotalPrice    float64             `json:"totalPrice"`
	Components    []ComponentResponse `json:"components"`
}

// OverdueOrderResponse is one row of the overdue report.
type OverdueOrderResponse struct {
	ID           int64     `json:"id"`
	CustomerName string    `json:"customerName"`
	ProductName  string    `json:"productName"`
	Deadline     time.Time `json:"deadline"`
}

func orderResponseFromQuery(row queries.GetAllOrdersQueryResponse) OrderResponse {
	components := make([]ComponentResponse, 0, len(row.Components))
	for _, c := range row.Components {
		components = append(components, ComponentResponse{
			ID:          c.ID,
			Name:        c.Name,
			Price:       c.Price,
			Quantity:    c.Quantity,
			Status:      c.Status,
			Description: c.Description,
		})
	}

	return OrderResponse{
		ID:            row.ID,
		CustomerName:  row.CustomerName,
		ProductName:   row.ProductName,
		OrderDate:     row.OrderDate,
		Deadline:      row.Deadline,
		Status:        row.Status,
		DisplayStatus: string(row.DisplayStatus),
		CompletedAt:   row.CompletedAt,
		Quantity:      row.Quantity,
		TotalPrice:    row.TotalPrice,
		Components:    components,
	}
}
