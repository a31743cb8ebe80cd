package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ikkim/dinehub-backend/internal/app/service"
	"github.com/xuri/excelize/v2"
)

const (
	restaurantsSheet = "restaurants"
	menuSheet        = "menu"
)

// catalogEntry is one restaurant row plus the menu rows that reference it.
type catalogEntry struct {
	restaurant service.RestaurantInput
	menu       []service.MenuItemInput
}

// sheetRows maps each data row to header -> cell.
func sheetRows(f *excelize.File, sheet string) ([]map[string]string, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var out []map[string]string
	for _, row := range rows[1:] {
		record := make(map[string]string, len(headers))
		empty := true
		for i, h := range headers {
			if i < len(row) {
				record[h] = strings.TrimSpace(row[i])
				if record[h] != "" {
					empty = false
				}
			}
		}
		if !empty {
			out = append(out, record)
		}
	}
	return out, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalFloat(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// readCatalog reads the restaurants and menu sheets. Restaurants are matched
// to menu rows by name; menu rows naming an unknown restaurant are skipped.
func readCatalog(f *excelize.File) ([]catalogEntry, int, error) {
	restaurantRows, err := sheetRows(f, restaurantsSheet)
	if err != nil {
		return nil, 0, err
	}

	var entries []catalogEntry
	index := make(map[string]int)
	skipped := 0

	for i, row := range restaurantRows {
		name := row["name"]
		key := strings.ToLower(name)
		if name == "" || row["address"] == "" {
			skipped++
			continue
		}
		if _, dup := index[key]; dup {
			skipped++
			continue
		}

		rating, err := optionalFloat(row["rating"])
		if err != nil {
			return nil, 0, fmt.Errorf("%s row %d: invalid rating %q", restaurantsSheet, i+2, row["rating"])
		}

		index[key] = len(entries)
		entries = append(entries, catalogEntry{
			restaurant: service.RestaurantInput{
				Name:         optional(name),
				Address:      optional(row["address"]),
				Phone:        optional(row["phone"]),
				Cuisine:      optional(row["cuisine"]),
				OpeningHours: optional(row["opening_hours"]),
				ImageURL:     optional(row["image_url"]),
				Rating:       rating,
			},
		})
	}

	if idx, _ := f.GetSheetIndex(menuSheet); idx < 0 {
		return entries, skipped, nil
	}
	menuRows, err := sheetRows(f, menuSheet)
	if err != nil {
		return nil, 0, err
	}

	for i, row := range menuRows {
		pos, ok := index[strings.ToLower(row["restaurant"])]
		if !ok || row["name"] == "" {
			skipped++
			continue
		}

		price, err := optionalFloat(row["price"])
		if err != nil || price == nil {
			return nil, 0, fmt.Errorf("%s row %d: invalid price %q", menuSheet, i+2, row["price"])
		}

		item := service.MenuItemInput{
			Name:        optional(row["name"]),
			Description: optional(row["description"]),
			Price:       price,
			Category:    optional(row["category"]),
			ImageURL:    optional(row["image_url"]),
		}
		if raw := row["is_available"]; raw != "" {
			available, err := strconv.ParseBool(raw)
			if err != nil {
				return nil, 0, fmt.Errorf("%s row %d: invalid is_available %q", menuSheet, i+2, raw)
			}
			item.IsAvailable = &available
		}
		entries[pos].menu = append(entries[pos].menu, item)
	}

	return entries, skipped, nil
}
