package exporter

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/restomenu/menu_service/internal/domain/models"
)

func TestBuildRowsLayout(t *testing.T) {
	menus := []models.MenuExport{
		{
			Menu: models.Menu{Title: "Main menu", Description: "Timeless classics"},
			Submenus: []models.SubmenuExport{
				{
					Submenu: models.Submenu{Title: "Soups", Description: "Eaten with a spoon"},
					Dishes: []models.Dish{
						{Title: "Borscht", Description: "Just like grandma's", Price: decimal.RequireFromString("251.50")},
						{Title: "Chicken noodle soup", Description: "Fixes any problem", Price: decimal.RequireFromString("180")},
					},
				},
				{
					Submenu: models.Submenu{Title: "Drinks", Description: "Every day is Friday"},
				},
			},
		},
		{
			Menu: models.Menu{Title: "Seasonal menu", Description: "Changes with the weather"},
		},
	}

	rows := buildRows(menus)

	require.Equal(t, [][]interface{}{
		{1, "Main menu", "Timeless classics"},
		{"", 1, "Soups", "Eaten with a spoon"},
		{"", "", 1, "Borscht", "Just like grandma's", "251.5"},
		{"", "", 2, "Chicken noodle soup", "Fixes any problem", "180"},
		{"", 2, "Drinks", "Every day is Friday"},
		{2, "Seasonal menu", "Changes with the weather"},
	}, rows)
}

func TestBuildRowsEmptyDump(t *testing.T) {
	require.Empty(t, buildRows(nil))
}
