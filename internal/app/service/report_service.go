package service

import (
	"bytes"
	"fmt"
	"time"

	"github.com/ikkim/dinehub-backend/internal/app/model"
	"github.com/ikkim/dinehub-backend/internal/app/repository"
	apperrors "github.com/ikkim/dinehub-backend/internal/errors"
	"github.com/ikkim/dinehub-backend/pkg/logger"
	"github.com/xuri/excelize/v2"
)

const ordersSheet = "orders"

var orderExportHeaders = []string{
	"order_id", "user_id", "restaurant_id", "status",
	"menu_item_id", "quantity", "price_at_order", "line_total",
	"order_total", "created_at",
}

type ReportService interface {
	// ExportOrders renders every order (optionally filtered by status) as an
	// xlsx workbook with one row per line item.
	ExportOrders(status *model.OrderStatus) ([]byte, error)
}

type reportService struct {
	orderRepo repository.OrderRepository
}

func NewReportService(orderRepo repository.OrderRepository) ReportService {
	return &reportService{orderRepo: orderRepo}
}

func (s *reportService) ExportOrders(status *model.OrderStatus) ([]byte, error) {
	if status != nil && !status.Valid() {
		return nil, invalidStatusError(*status)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ordersSheet); err != nil {
		return nil, fmt.Errorf("failed to prepare sheet: %w", err)
	}
	if err := f.SetSheetRow(ordersSheet, "A1", &orderExportHeaders); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	row := 2
	orderCount := 0
	for skip := 0; ; skip += MaxPageLimit {
		orders, err := s.orderRepo.FindAll(repository.OrderFilter{Status: status, Skip: skip, Limit: MaxPageLimit})
		if err != nil {
			return nil, apperrors.FromDB(err, "orders")
		}

		for _, order := range orders {
			for _, li := range order.Items {
				cell, _ := excelize.CoordinatesToCellName(1, row)
				values := []interface{}{
					order.ID, order.UserID, order.RestaurantID, string(order.Status),
					li.MenuItemID, li.Quantity, li.PriceAtOrder, li.Subtotal(),
					order.TotalPrice, order.CreatedAt.UTC().Format(time.RFC3339),
				}
				if err := f.SetSheetRow(ordersSheet, cell, &values); err != nil {
					return nil, fmt.Errorf("failed to write row %d: %w", row, err)
				}
				row++
			}
		}
		orderCount += len(orders)

		if len(orders) < MaxPageLimit {
			break
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}

	logger.Info("Orders exported", map[string]interface{}{
		"orders": orderCount,
		"rows":   row - 2,
	})
	return buf.Bytes(), nil
}
