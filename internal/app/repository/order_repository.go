package repository

import (
	"github.com/ikkim/dinehub-backend/internal/app/model"
	"github.com/ikkim/dinehub-backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderFilter struct {
	Status *model.OrderStatus
	Skip   int
	Limit  int
}

type OrderRepository interface {
	Create(order *model.Order) error
	FindByID(id uint) (*model.Order, error)
	FindByIDForUpdate(id uint) (*model.Order, error)
	FindByUserID(userID uint, skip, limit int) ([]model.Order, error)
	FindAll(filter OrderFilter) ([]model.Order, error)
	UpdateStatus(order *model.Order, status model.OrderStatus) error
	HasDeliveredOrder(userID, restaurantID uint) (bool, error)
	// Transaction runs fn against a repository bound to a single transaction.
	Transaction(fn func(repo OrderRepository) error) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *model.Order) error {
	logger.Debug("Creating order in database", map[string]interface{}{
		"user_id":       order.UserID,
		"restaurant_id": order.RestaurantID,
		"total_price":   order.TotalPrice,
		"item_count":    len(order.Items),
	})

	if err := r.db.Create(order).Error; err != nil {
		logger.Error("Failed to create order in database", err, map[string]interface{}{
			"user_id":       order.UserID,
			"restaurant_id": order.RestaurantID,
		})
		return err
	}

	logger.Debug("Order created in database", map[string]interface{}{
		"order_id":    order.ID,
		"user_id":     order.UserID,
		"total_price": order.TotalPrice,
	})
	return nil
}

func (r *orderRepository) FindByID(id uint) (*model.Order, error) {
	logger.Debug("Finding order by ID in database", map[string]interface{}{
		"order_id": id,
	})

	var order model.Order
	if err := r.db.First(&order, id).Error; err != nil {
		logger.Debug("Order lookup by ID failed", map[string]interface{}{
			"order_id": id,
			"error":    err.Error(),
		})
		return nil, err
	}

	logger.Debug("Order found by ID in database", map[string]interface{}{
		"order_id": order.ID,
		"user_id":  order.UserID,
		"status":   order.Status,
	})
	return &order, nil
}

// FindByIDForUpdate locks the row (SELECT ... FOR UPDATE). Only meaningful
// inside Transaction.
func (r *orderRepository) FindByIDForUpdate(id uint) (*model.Order, error) {
	var order model.Order
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&order, id).Error; err != nil {
		logger.Debug("Order lookup for update failed", map[string]interface{}{
			"order_id": id,
			"error":    err.Error(),
		})
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindByUserID(userID uint, skip, limit int) ([]model.Order, error) {
	logger.Debug("Finding orders by user ID in database", map[string]interface{}{
		"user_id": userID,
		"skip":    skip,
		"limit":   limit,
	})

	var orders []model.Order
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Offset(skip).Limit(limit).
		Find(&orders).Error; err != nil {
		logger.Error("Failed to find orders by user ID in database", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	logger.Debug("Orders found by user ID in database", map[string]interface{}{
		"user_id": userID,
		"count":   len(orders),
	})
	return orders, nil
}

func (r *orderRepository) FindAll(filter OrderFilter) ([]model.Order, error) {
	logger.Debug("Finding all orders in database", map[string]interface{}{
		"status": filter.Status,
		"skip":   filter.Skip,
		"limit":  filter.Limit,
	})

	query := r.db.Model(&model.Order{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var orders []model.Order
	if err := query.Order("created_at DESC, id DESC").Offset(filter.Skip).Find(&orders).Error; err != nil {
		logger.Error("Failed to find all orders in database", err)
		return nil, err
	}

	logger.Debug("Orders found in database", map[string]interface{}{
		"count": len(orders),
	})
	return orders, nil
}

func (r *orderRepository) UpdateStatus(order *model.Order, status model.OrderStatus) error {
	logger.Debug("Updating order status in database", map[string]interface{}{
		"order_id": order.ID,
		"from":     order.Status,
		"to":       status,
	})

	if err := r.db.Model(order).Update("status", status).Error; err != nil {
		logger.Error("Failed to update order status in database", err, map[string]interface{}{
			"order_id": order.ID,
			"status":   status,
		})
		return err
	}
	order.Status = status

	logger.Debug("Order status updated in database", map[string]interface{}{
		"order_id": order.ID,
		"status":   order.Status,
	})
	return nil
}

func (r *orderRepository) HasDeliveredOrder(userID, restaurantID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Order{}).
		Where("user_id = ? AND restaurant_id = ? AND status = ?", userID, restaurantID, model.OrderStatusDelivered).
		Count(&count).Error; err != nil {
		logger.Error("Failed to check delivered orders in database", err, map[string]interface{}{
			"user_id":       userID,
			"restaurant_id": restaurantID,
		})
		return false, err
	}

	logger.Debug("Delivered order check", map[string]interface{}{
		"user_id":       userID,
		"restaurant_id": restaurantID,
		"found":         count > 0,
	})
	return count > 0, nil
}

func (r *orderRepository) Transaction(fn func(repo OrderRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&orderRepository{db: tx})
	})
}
