package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/dinehub-backend/internal/app/model"
	"github.com/ikkim/dinehub-backend/internal/app/service"
	apperrors "github.com/ikkim/dinehub-backend/internal/errors"
	"github.com/ikkim/dinehub-backend/internal/middleware"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type OrderController struct {
	orderService  service.OrderService
	reportService service.ReportService
}

func NewOrderController(orderService service.OrderService, reportService service.ReportService) *OrderController {
	return &OrderController{
		orderService:  orderService,
		reportService: reportService,
	}
}

type OrderItemRequest struct {
	MenuItemID uint `json:"menu_item_id" binding:"required"`
	Quantity   int  `json:"quantity"`
}

// Items is not "required" so an empty list reaches the EmptyCart check.
type CreateOrderRequest struct {
	RestaurantID uint               `json:"restaurant_id" binding:"required"`
	Items        []OrderItemRequest `json:"items"`
}

type UpdateOrderStatusRequest struct {
	Status model.OrderStatus `json:"status" binding:"required"`
}

// statusQuery reads an optional ?status= filter.
func statusQuery(c *gin.Context) *model.OrderStatus {
	raw := c.Query("status")
	if raw == "" {
		return nil
	}
	status := model.OrderStatus(raw)
	return &status
}

// CreateOrder places an order for the caller
// POST /api/v1/orders
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid order request", map[string]interface{}{
			"user_id": identity.UserID,
			"error":   err.Error(),
		})
		apperrors.RespondWithValidationError(c, err)
		return
	}

	items := make([]service.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.OrderItemInput{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		})
	}

	order, err := ctrl.orderService.CreateOrder(identity.UserID, req.RestaurantID, items)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GetMyOrders
// GET /api/v1/orders/my
func (ctrl *OrderController) GetMyOrders(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}
	skip, limit, ok := pageQuery(c)
	if !ok {
		return
	}

	orders, err := ctrl.orderService.GetUserOrders(identity.UserID, skip, limit)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetOrder returns an order to its owner or an admin
// GET /api/v1/orders/:id
func (ctrl *OrderController) GetOrder(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := ctrl.orderService.GetOrder(identity.UserID, identity.Role, id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// CancelOrder
// PUT /api/v1/orders/:id/cancel
func (ctrl *OrderController) CancelOrder(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := ctrl.orderService.CancelOrder(identity.UserID, id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// ListAllOrders (admin)
// GET /api/v1/orders/admin
func (ctrl *OrderController) ListAllOrders(c *gin.Context) {
	skip, limit, ok := pageQuery(c)
	if !ok {
		return
	}

	orders, err := ctrl.orderService.GetAllOrders(statusQuery(c), skip, limit)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus (admin)
// PUT /api/v1/orders/:id/status
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, err)
		return
	}

	order, err := ctrl.orderService.AdminUpdateStatus(id, req.Status)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	adminID, _ := middleware.GetUserID(c)
	middleware.GetLoggerFromContext(c).Info("Order status changed", map[string]interface{}{
		"order_id": id,
		"status":   order.Status,
		"admin_id": adminID,
	})
	c.JSON(http.StatusOK, order)
}

// ExportOrders streams an xlsx report (admin)
// GET /api/v1/orders/admin/export
func (ctrl *OrderController) ExportOrders(c *gin.Context) {
	data, err := ctrl.reportService.ExportOrders(statusQuery(c))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	filename := fmt.Sprintf("orders-%s.xlsx", time.Now().UTC().Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
