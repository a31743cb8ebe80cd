package service

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/ikkim/dinehub-backend/internal/app/model"
	apperrors "github.com/ikkim/dinehub-backend/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReportService_ExportOrders(t *testing.T) {
	env, user, restaurant := setupOrderServiceTest(t)
	pizza, dessert := restaurant.MenuItems[0], restaurant.MenuItems[1]

	first, err := env.orders.CreateOrder(user.ID, restaurant.ID, []OrderItemInput{
		{MenuItemID: pizza.ID, Quantity: 2},
		{MenuItemID: dessert.ID, Quantity: 1},
	})
	require.NoError(t, err)
	second, err := env.orders.CreateOrder(user.ID, restaurant.ID, []OrderItemInput{{MenuItemID: pizza.ID, Quantity: 1}})
	require.NoError(t, err)
	env.deliver(t, second.ID)

	t.Run("All orders", func(t *testing.T) {
		data, err := env.reports.ExportOrders(nil)
		require.NoError(t, err)

		rows := readSheet(t, data)
		require.Len(t, rows, 4) // header + 3 line items
		assert.Equal(t, orderExportHeaders, rows[0])

		// newest first
		assert.Equal(t, strconv.Itoa(int(second.ID)), rows[1][0])
		assert.Equal(t, "DELIVERED", rows[1][3])
		for _, row := range rows[2:] {
			assert.Equal(t, strconv.Itoa(int(first.ID)), row[0])
			assert.Equal(t, "PENDING", row[3])
			assert.Equal(t, "13.5", row[8])
		}
		assert.Equal(t, "2", rows[2][5])
		assert.Equal(t, "10", rows[2][7])
	})

	t.Run("Filtered by status", func(t *testing.T) {
		delivered := model.OrderStatusDelivered
		data, err := env.reports.ExportOrders(&delivered)
		require.NoError(t, err)

		rows := readSheet(t, data)
		require.Len(t, rows, 2)
		assert.Equal(t, strconv.Itoa(int(second.ID)), rows[1][0])
		assert.Equal(t, "DELIVERED", rows[1][3])
	})

	t.Run("Unknown status", func(t *testing.T) {
		bad := model.OrderStatus("LOST")
		_, err := env.reports.ExportOrders(&bad)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})
}

func readSheet(t *testing.T, data []byte) [][]string {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ordersSheet)
	require.NoError(t, err)
	return rows
}
