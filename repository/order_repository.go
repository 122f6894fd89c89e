package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Govind-619/OrderDesk/models"
	"github.com/Govind-619/OrderDesk/utils"
	"gorm.io/gorm"
)

// OrderRepository reads orders with their items and payments
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates an order repository over db
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) base(ctx context.Context, filter OrderFilter) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Order{}).Scopes(filter.Scope)
}

func (r *OrderRepository) withRelations(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.id")
		}).
		Preload("Items.Item").
		Preload("Items.Item.Category").
		Preload("Items.Item.Menu").
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("payments.payment_date DESC").Order("payments.payment_id DESC")
		})
}

// Count returns how many orders match filter
func (r *OrderRepository) Count(ctx context.Context, filter OrderFilter) (int64, error) {
	var total int64
	if err := r.base(ctx, filter).Count(&total).Error; err != nil {
		return 0, utils.WrapError(err, "failed to count orders")
	}
	return total, nil
}

// List returns one page of matching orders, newest first, and the total
// number of matches
func (r *OrderRepository) List(ctx context.Context, filter OrderFilter, offset, limit int) ([]models.Order, int64, error) {
	total, err := r.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	orders, err := r.FindPage(ctx, filter, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// FindPage returns matching orders, newest first, skipping offset rows
func (r *OrderRepository) FindPage(ctx context.Context, filter OrderFilter, offset, limit int) ([]models.Order, error) {
	var orders []models.Order
	err := r.withRelations(r.base(ctx, filter)).
		Order("orders.order_date DESC").
		Order("orders.order_id DESC").
		Offset(offset).
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, utils.WrapError(err, "failed to fetch orders")
	}
	return orders, nil
}

// FindAll returns every matching order, newest first
func (r *OrderRepository) FindAll(ctx context.Context, filter OrderFilter) ([]models.Order, error) {
	var orders []models.Order
	err := r.withRelations(r.base(ctx, filter)).
		Order("orders.order_date DESC").
		Order("orders.order_id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, utils.WrapError(err, "failed to fetch orders")
	}
	return orders, nil
}

// FindByID returns a single order with its items and payments
func (r *OrderRepository) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := r.withRelations(r.db.WithContext(ctx)).
		Where("orders.order_id = ?", id).
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NotFoundError(fmt.Sprintf("Order with ID %d not found", id), err)
	}
	if err != nil {
		return nil, utils.WrapError(err, fmt.Sprintf("failed to fetch order %d", id))
	}
	return &order, nil
}
