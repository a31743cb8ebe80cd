package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newWorkbook(t *testing.T, restaurants, menu [][]interface{}) *excelize.File {
	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })

	require.NoError(t, f.SetSheetName("Sheet1", restaurantsSheet))
	for i, row := range restaurants {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(restaurantsSheet, cell, &row))
	}

	if menu != nil {
		_, err := f.NewSheet(menuSheet)
		require.NoError(t, err)
		for i, row := range menu {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(menuSheet, cell, &row))
		}
	}
	return f
}

func TestReadCatalog(t *testing.T) {
	f := newWorkbook(t,
		[][]interface{}{
			{"Name", "Address", "Cuisine", "Rating"},
			{"Trattoria", "1 Main Street", "Italian", "4.5"},
			{"trattoria", "duplicate", "Italian", ""},
			{"No Address", "", "Thai", ""},
			{"Sushi Bar", "2 Harbor Road", "Japanese", ""},
		},
		[][]interface{}{
			{"restaurant", "name", "price", "is_available"},
			{"Trattoria", "Margherita", "9.5", "true"},
			{"TRATTORIA", "Tiramisu", "4", "false"},
			{"Ghost Kitchen", "Burger", "8", ""},
		},
	)

	entries, skipped, err := readCatalog(f)
	require.NoError(t, err)
	assert.Equal(t, 3, skipped)
	require.Len(t, entries, 2)

	trattoria := entries[0]
	assert.Equal(t, "Trattoria", *trattoria.restaurant.Name)
	assert.Equal(t, 4.5, *trattoria.restaurant.Rating)
	require.Len(t, trattoria.menu, 2)
	assert.Equal(t, 9.5, *trattoria.menu[0].Price)
	assert.False(t, *trattoria.menu[1].IsAvailable)

	assert.Nil(t, entries[1].restaurant.Rating)
	assert.Empty(t, entries[1].menu)
}

func TestReadCatalog_WithoutMenuSheet(t *testing.T) {
	f := newWorkbook(t, [][]interface{}{
		{"name", "address"},
		{"Trattoria", "1 Main Street"},
	}, nil)

	entries, skipped, err := readCatalog(f)
	require.NoError(t, err)
	assert.Zero(t, skipped)
	assert.Len(t, entries, 1)
}

func TestReadCatalog_InvalidPrice(t *testing.T) {
	f := newWorkbook(t,
		[][]interface{}{
			{"name", "address"},
			{"Trattoria", "1 Main Street"},
		},
		[][]interface{}{
			{"restaurant", "name", "price"},
			{"Trattoria", "Margherita", "cheap"},
		},
	)

	_, _, err := readCatalog(f)
	assert.Error(t, err)
}
