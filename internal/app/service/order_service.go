package service

import (
	"errors"
	"fmt"

	"github.com/ikkim/dinehub-backend/internal/app/model"
	"github.com/ikkim/dinehub-backend/internal/app/repository"
	apperrors "github.com/ikkim/dinehub-backend/internal/errors"
	"github.com/ikkim/dinehub-backend/pkg/logger"
	"gorm.io/gorm"
)

// OrderItemInput is one requested line: a menu item and a quantity.
type OrderItemInput struct {
	MenuItemID uint
	Quantity   int
}

type OrderService interface {
	CreateOrder(requesterID, restaurantID uint, items []OrderItemInput) (*model.Order, error)
	CancelOrder(requesterID, orderID uint) (*model.Order, error)
	GetOrder(requesterID uint, role model.UserRole, orderID uint) (*model.Order, error)
	AdminUpdateStatus(orderID uint, status model.OrderStatus) (*model.Order, error)
	GetUserOrders(userID uint, skip, limit int) ([]model.Order, error)
	GetAllOrders(status *model.OrderStatus, skip, limit int) ([]model.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	catalog   CatalogService
}

func NewOrderService(orderRepo repository.OrderRepository, catalog CatalogService) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		catalog:   catalog,
	}
}

// CreateOrder validates every line against the restaurant's menu, snapshots
// prices and persists a PENDING order. Any invalid line rejects the whole
// request. Availability is read once and not reserved.
func (s *orderService) CreateOrder(requesterID, restaurantID uint, items []OrderItemInput) (*model.Order, error) {
	logger.Info("Creating order", map[string]interface{}{
		"user_id":       requesterID,
		"restaurant_id": restaurantID,
		"item_count":    len(items),
	})

	if len(items) == 0 {
		logger.Warn("Cannot create order: cart is empty", map[string]interface{}{
			"user_id": requesterID,
		})
		return nil, ErrEmptyCart
	}

	if _, err := s.catalog.GetRestaurant(restaurantID); err != nil {
		if errors.Is(err, ErrRestaurantNotFound) {
			return nil, validationError(apperrors.ValidationInvalidID, "restaurant_id",
				fmt.Sprintf("Restaurant with ID %d not found", restaurantID))
		}
		return nil, err
	}

	menu, err := s.catalog.GetMenuItemsForRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}
	menuByID := make(map[uint]model.MenuItem, len(menu))
	for _, item := range menu {
		menuByID[item.ID] = item
	}

	lines := make(model.LineItems, 0, len(items))
	for i, req := range items {
		if req.Quantity <= 0 {
			return nil, validationError(apperrors.ValidationInvalidRange, "items", "Quantity must be a positive integer").
				WithDetails(map[string]interface{}{
					"field":        "items",
					"index":        i,
					"menu_item_id": req.MenuItemID,
				})
		}

		menuItem, ok := menuByID[req.MenuItemID]
		if !ok || !menuItem.IsAvailable {
			logger.Warn("Order rejected: menu item not orderable", map[string]interface{}{
				"user_id":       requesterID,
				"restaurant_id": restaurantID,
				"menu_item_id":  req.MenuItemID,
				"exists":        ok,
			})
			code := apperrors.OrderInvalidMenuItem
			if ok {
				code = apperrors.OrderMenuItemInactive
			}
			msg := fmt.Sprintf("Menu item with ID %d not found or not available in this restaurant", req.MenuItemID)
			return nil, apperrors.New(apperrors.KindValidation, code, msg).
				WithDetails(map[string]interface{}{
					"field":        "items",
					"index":        i,
					"menu_item_id": req.MenuItemID,
				})
		}

		lines = append(lines, model.LineItem{
			MenuItemID:   menuItem.ID,
			Quantity:     req.Quantity,
			PriceAtOrder: menuItem.Price,
		})
	}

	order := &model.Order{
		UserID:       requesterID,
		RestaurantID: restaurantID,
		Items:        lines,
		Status:       model.OrderStatusPending,
		TotalPrice:   model.SumLineItems(lines),
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, apperrors.FromDB(err, "create order")
	}

	logger.Info("Order created", map[string]interface{}{
		"order_id":    order.ID,
		"user_id":     requesterID,
		"total_price": order.TotalPrice,
	})
	return order, nil
}

// CancelOrder moves the requester's own PENDING order to CANCELLED. The row
// is locked for the read-check-write.
func (s *orderService) CancelOrder(requesterID, orderID uint) (*model.Order, error) {
	var cancelled *model.Order

	err := s.orderRepo.Transaction(func(repo repository.OrderRepository) error {
		order, err := repo.FindByIDForUpdate(orderID)
		if err != nil {
			return s.orderLookupError(err, orderID)
		}
		if order.UserID != requesterID {
			logger.Warn("Cancel denied: not the order owner", map[string]interface{}{
				"order_id": orderID,
				"user_id":  requesterID,
			})
			return ErrOrderAccessDenied.Withf("Access denied for order %d", orderID)
		}
		if order.Status != model.OrderStatusPending {
			return ErrOrderNotCancellable.
				Withf("Order %d cannot be cancelled. Current status: %s", orderID, order.Status).
				WithDetails(map[string]interface{}{"status": order.Status})
		}
		if err := repo.UpdateStatus(order, model.OrderStatusCancelled); err != nil {
			return apperrors.FromDB(err, "update order")
		}
		cancelled = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Order cancelled", map[string]interface{}{
		"order_id": orderID,
		"user_id":  requesterID,
	})
	return cancelled, nil
}

func (s *orderService) GetOrder(requesterID uint, role model.UserRole, orderID uint) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		return nil, s.orderLookupError(err, orderID)
	}
	if order.UserID != requesterID && !role.IsAdmin() {
		logger.Warn("Order access denied", map[string]interface{}{
			"order_id": orderID,
			"user_id":  requesterID,
		})
		return nil, ErrOrderAccessDenied.Withf("Access denied for order %d", orderID)
	}
	return order, nil
}

// AdminUpdateStatus sets any of the four states without a transition check.
// This is the admin override path; owner cancellation goes through
// CancelOrder.
func (s *orderService) AdminUpdateStatus(orderID uint, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, invalidStatusError(status)
	}

	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		return nil, s.orderLookupError(err, orderID)
	}

	previous := order.Status
	if err := s.orderRepo.UpdateStatus(order, status); err != nil {
		return nil, apperrors.FromDB(err, "update order")
	}

	logger.Info("Order status updated by admin", map[string]interface{}{
		"order_id": orderID,
		"from":     previous,
		"to":       status,
	})
	return order, nil
}

func (s *orderService) GetUserOrders(userID uint, skip, limit int) ([]model.Order, error) {
	if err := validatePage(skip, limit); err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.FindByUserID(userID, skip, limit)
	if err != nil {
		return nil, apperrors.FromDB(err, "orders")
	}
	return orders, nil
}

func (s *orderService) GetAllOrders(status *model.OrderStatus, skip, limit int) ([]model.Order, error) {
	if err := validatePage(skip, limit); err != nil {
		return nil, err
	}
	if status != nil && !status.Valid() {
		return nil, invalidStatusError(*status)
	}
	orders, err := s.orderRepo.FindAll(repository.OrderFilter{Status: status, Skip: skip, Limit: limit})
	if err != nil {
		return nil, apperrors.FromDB(err, "orders")
	}
	return orders, nil
}

func (s *orderService) orderLookupError(err error, orderID uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrOrderNotFound.Withf("Order with ID %d not found", orderID)
	}
	logger.Error("Failed to fetch order", err, map[string]interface{}{
		"order_id": orderID,
	})
	return apperrors.FromDB(err, "order")
}

func invalidStatusError(status model.OrderStatus) error {
	return validationError(apperrors.OrderInvalidStatus, "status",
		fmt.Sprintf("Invalid status %q. Must be one of: PENDING, CONFIRMED, DELIVERED, CANCELLED", status))
}
