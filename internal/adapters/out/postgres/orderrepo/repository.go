package orderrepo

import (
	"context"
	"errors"

	"fabtrack/internal/core/domain/model/component"
	"fabtrack/internal/core/domain/model/order"
	"fabtrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its components and writes the database-assigned
// identities back into the aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}

	for _, c := range aggregate.Components() {
		componentDTO := componentFromDomain(dto.ID, c)
		if err := r.db.WithContext(ctx).Create(&componentDTO).Error; err != nil {
			return err
		}
		if err := c.AssignID(componentDTO.ID); err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the order row of an existing aggregate. Component rows are
// written through their own operations.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("customer_name", "product_name", "order_date", "deadline", "quantity", "total_price").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", dto.ID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// CompleteCascade persists the completion transition: the order row gets the
// completed status and timestamp, and every component row of the order is
// moved to completed in one statement. Both writes share the repository's
// transaction when called through the unit of work.
func (r *GormOrderRepository) CompleteCascade(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("status", "completed_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", dto.ID)
	}

	err := r.db.WithContext(ctx).Model(&ComponentDTO{}).
		Where("order_id = ?", dto.ID).
		Update("status", int(component.Completed)).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// AddComponent inserts a component row for an existing order and writes the
// database-assigned identity back into the entity.
func (r *GormOrderRepository) AddComponent(ctx context.Context, orderID int64, c *component.Component) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := componentFromDomain(orderID, c)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return c.AssignID(dto.ID)
}

// UpdateComponent saves an existing component row. The write is scoped by
// both the component and the order identity, so a component of another order
// can never be touched.
func (r *GormOrderRepository) UpdateComponent(ctx context.Context, orderID int64, c *component.Component) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := componentFromDomain(orderID, c)
	result := r.db.WithContext(ctx).Model(&ComponentDTO{}).
		Where("id = ? AND order_id = ?", dto.ID, orderID).
		Select("name", "price", "quantity", "status", "description").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("componentId", dto.ID)
	}

	return nil
}

// DeleteComponent removes one component row, scoped by the owning order.
func (r *GormOrderRepository) DeleteComponent(ctx context.Context, orderID, componentID int64) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND order_id = ?", componentID, orderID).
		Delete(&ComponentDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("componentId", componentID)
	}

	return nil
}

// DeleteComponentsByOrder removes all component rows of an order and reports
// how many were deleted. Zero rows is not an error; an order may legitimately
// be deleted right after its components already were.
func (r *GormOrderRepository) DeleteComponentsByOrder(ctx context.Context, orderID int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&ComponentDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

// Delete removes the order row.
func (r *GormOrderRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&OrderDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id)
	}

	return nil
}

// Get retrieves an order with its components by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	var componentDTOs []ComponentDTO
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&componentDTOs, "order_id = ?", id).Error
	if err != nil {
		return nil, err
	}

	return toDomain(dto, componentDTOs)
}

// GetAll retrieves every order with its components, sorted by order ID.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	var componentDTOs []ComponentDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&componentDTOs).Error; err != nil {
		return nil, err
	}

	componentsByOrder := make(map[int64][]ComponentDTO, len(dtos))
	for _, componentDTO := range componentDTOs {
		componentsByOrder[componentDTO.OrderID] = append(componentsByOrder[componentDTO.OrderID], componentDTO)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto, componentsByOrder[dto.ID])
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}
