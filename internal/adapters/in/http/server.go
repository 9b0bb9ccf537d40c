// Package http is the inbound HTTP adapter. It exposes the production order
// tracking API on echo v4: order lifecycle and component routes gated by JWT
// authentication, plus the auth routes themselves and a health probe.
package http

import (
	"net/http"
	"strconv"

	"fabtrack/internal/core/application/usecases/commands"
	"fabtrack/internal/core/application/usecases/queries"
	"fabtrack/internal/core/domain/model/component"
	"fabtrack/internal/core/domain/model/order"
	"fabtrack/internal/core/domain/services"
	"fabtrack/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	validate   *validator.Validate
	aggregator services.StatusAggregator

	// Command handlers
	createOrderHandler                commands.CreateOrderCommandHandler
	updateOrderHandler                commands.UpdateOrderCommandHandler
	completeOrderHandler              commands.CompleteOrderCommandHandler
	deleteOrderHandler                commands.DeleteOrderCommandHandler
	addComponentHandler               commands.AddComponentCommandHandler
	removeComponentHandler            commands.RemoveComponentCommandHandler
	changeComponentStatusHandler      commands.ChangeComponentStatusCommandHandler
	changeComponentDescriptionHandler commands.ChangeComponentDescriptionCommandHandler

	// Query handlers
	getAllOrdersHandler     queries.GetAllOrdersQueryHandler
	getOverdueOrdersHandler queries.GetOverdueOrdersQueryHandler
}

// NewServer creates the HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	addComponentHandler commands.AddComponentCommandHandler,
	removeComponentHandler commands.RemoveComponentCommandHandler,
	changeComponentStatusHandler commands.ChangeComponentStatusCommandHandler,
	changeComponentDescriptionHandler commands.ChangeComponentDescriptionCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOverdueOrdersHandler queries.GetOverdueOrdersQueryHandler,
) *Server {
	return &Server{
		validate:                          validator.New(),
		aggregator:                        services.NewStatusAggregator(),
		createOrderHandler:                createOrderHandler,
		updateOrderHandler:                updateOrderHandler,
		completeOrderHandler:              completeOrderHandler,
		deleteOrderHandler:                deleteOrderHandler,
		addComponentHandler:               addComponentHandler,
		removeComponentHandler:            removeComponentHandler,
		changeComponentStatusHandler:      changeComponentStatusHandler,
		changeComponentDescriptionHandler: changeComponentDescriptionHandler,
		getAllOrdersHandler:               getAllOrdersHandler,
		getOverdueOrdersHandler:           getOverdueOrdersHandler,
	}
}

// RegisterRoutes mounts the API under /api/v1. The order routes require an
// authenticated session; auth and health do not.
func (s *Server) RegisterRoutes(e *echo.Echo, auth *AuthServer) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", auth.Register)
	authGroup.POST("/login", auth.Login)
	authGroup.GET("/me", auth.Me, auth.Middleware)

	orders := api.Group("/orders", auth.Middleware)
	orders.GET("", s.GetOrders)
	orders.POST("", s.CreateOrder)
	orders.GET("/overdue", s.GetOverdueOrders)
	orders.PATCH("/:orderId", s.UpdateOrder)
	orders.DELETE("/:orderId", s.DeleteOrder)
	orders.POST("/:orderId/complete", s.CompleteOrder)
	orders.POST("/:orderId/components", s.AddComponent)
	orders.DELETE("/:orderId/components/:componentId", s.RemoveComponent)
	orders.PATCH("/:orderId/components/:componentId/status", s.ChangeComponentStatus)
	orders.PATCH("/:orderId/components/:componentId/description", s.ChangeComponentDescription)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetOrders handles GET /api/v1/orders - retrieves all orders with nested
// components and the derived display status.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, row := range orders {
		response = append(response, orderResponseFromQuery(row))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOverdueOrders handles GET /api/v1/orders/overdue - active orders past
// their deadline.
func (s *Server) GetOverdueOrders(ctx echo.Context) error {
	query := queries.NewGetOverdueOrdersQuery()

	orders, err := s.getOverdueOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OverdueOrderResponse, 0, len(orders))
	for _, row := range orders {
		response = append(response, OverdueOrderResponse{
			ID:           row.ID,
			CustomerName: row.CustomerName,
			ProductName:  row.ProductName,
			Deadline:     row.Deadline,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - creates an order with its
// initial component list.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	if err := s.validate.Struct(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	components := make([]commands.ComponentInput, 0, len(req.Components))
	for _, c := range req.Components {
		components = append(components, commands.ComponentInput{
			Name:     c.Name,
			Price:    c.Price,
			Quantity: c.Quantity,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		req.CustomerName, req.ProductName, req.OrderDate, req.Deadline, components)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, s.orderResponse(created))
}

// UpdateOrder handles PATCH /api/v1/orders/:orderId - partial edit of the
// order's descriptive fields.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := parseID(ctx, "orderId")
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	if err = s.validate.Struct(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	cmd, err := commands.NewUpdateOrderCommand(
		orderID, req.CustomerName, req.ProductName, req.OrderDate, req.Deadline)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, s.orderResponse(updated))
}

// CompleteOrder handles POST /api/v1/orders/:orderId/complete - the gated
// completion transition.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := parseID(ctx, "orderId")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	completed, err := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, s.orderResponse(completed))
}

// DeleteOrder handles DELETE /api/v1/orders/:orderId - cascading deletion.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := parseID(ctx, "orderId")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddComponent handles POST /api/v1/orders/:orderId/components.
func (s *Server) AddComponent(ctx echo.Context) error {
	orderID, err := parseID(ctx, "orderId")
	if err != nil {
		return respondError(ctx, err)
	}

	var req AddComponentRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	if err = s.validate.Struct(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	cmd, err := commands.NewAddComponentCommand(orderID, req.Name, req.Price, req.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	added, err := s.addComponentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, componentResponse(added))
}

// RemoveComponent handles DELETE /api/v1/orders/:orderId/components/:componentId.
func (s *Server) RemoveComponent(ctx echo.Context) error {
	orderID, componentID, err := parseOrderAndComponentID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveComponentCommand(orderID, componentID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.removeComponentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeComponentStatus handles
// PATCH /api/v1/orders/:orderId/components/:componentId/status.
func (s *Server) ChangeComponentStatus(ctx echo.Context) error {
	orderID, componentID, err := parseOrderAndComponentID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req ChangeComponentStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	if err = s.validate.Struct(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	cmd, err := commands.NewChangeComponentStatusCommand(orderID, componentID, req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	changed, err := s.changeComponentStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, componentResponse(changed))
}

// ChangeComponentDescription handles
// PATCH /api/v1/orders/:orderId/components/:componentId/description.
func (s *Server) ChangeComponentDescription(ctx echo.Context) error {
	orderID, componentID, err := parseOrderAndComponentID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req ChangeComponentDescriptionRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewChangeComponentDescriptionCommand(orderID, componentID, req.Description)
	if err != nil {
		return respondError(ctx, err)
	}

	changed, err := s.changeComponentDescriptionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, componentResponse(changed))
}

func (s *Server) orderResponse(aggregate *order.Order) OrderResponse {
	components := make([]ComponentResponse, 0, len(aggregate.Components()))
	for _, c := range aggregate.Components() {
		components = append(components, componentResponse(c))
	}

	return OrderResponse{
		ID:            aggregate.ID(),
		CustomerName:  aggregate.CustomerName(),
		ProductName:   aggregate.ProductName(),
		OrderDate:     aggregate.OrderDate(),
		Deadline:      aggregate.Deadline(),
		Status:        aggregate.Status().String(),
		DisplayStatus: string(s.aggregator.DeriveDisplayStatus(aggregate.Components())),
		CompletedAt:   aggregate.CompletedAt(),
		Quantity:      aggregate.Quantity(),
		TotalPrice:    aggregate.TotalPrice(),
		Components:    components,
	}
}

func componentResponse(c *component.Component) ComponentResponse {
	return ComponentResponse{
		ID:          c.ID(),
		Name:        c.Name(),
		Price:       c.Price(),
		Quantity:    c.Quantity(),
		Status:      c.Status().String(),
		Description: c.Description(),
	}
}

func parseID(ctx echo.Context, param string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewValueIsInvalidError(param)
	}
	return id, nil
}

func parseOrderAndComponentID(ctx echo.Context) (int64, int64, error) {
	orderID, err := parseID(ctx, "orderId")
	if err != nil {
		return 0, 0, err
	}
	componentID, err := parseID(ctx, "componentId")
	if err != nil {
		return 0, 0, err
	}
	return orderID, componentID, nil
}
