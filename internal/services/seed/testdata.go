package seed

import (
	"github.com/restomenu/menu_service/internal/domain/models"
	"github.com/shopspring/decimal"
)

type menuSeed struct {
	menu     models.Menu
	submenus []submenuSeed
}

type submenuSeed struct {
	submenu models.Submenu
	dishes  []models.Dish
}

func price(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

var testData = []menuSeed{
	{
		menu: models.Menu{Title: "Main menu", Description: "Timeless classics"},
		submenus: []submenuSeed{
			{
				submenu: models.Submenu{Title: "Soups", Description: "Eaten with a spoon"},
				dishes: []models.Dish{
					{Title: "Borscht", Description: "Just like grandma's", Price: price("251.50")},
					{Title: "Chicken noodle soup", Description: "Fixes any problem", Price: price("180")},
				},
			},
			{
				submenu: models.Submenu{Title: "Hot dishes", Description: "Portions 1.3% bigger"},
				dishes: []models.Dish{
					{Title: "Roast", Description: "The potatoes are definitely done", Price: price("235.80")},
					{Title: "Bolognese", Description: "We are not Italians either", Price: price("267")},
					{Title: "Baked fish", Description: "Once lived in the sea", Price: price("335.30")},
				},
			},
		},
	},
	{
		menu: models.Menu{Title: "Seasonal menu", Description: "Changes with the weather"},
		submenus: []submenuSeed{
			{
				submenu: models.Submenu{Title: "Cold dishes", Description: "For every taste"},
				dishes: []models.Dish{
					{Title: "Okroshka", Description: "Somebody must like it", Price: price("190.50")},
					{Title: "Aspic", Description: "Wobbles on its own", Price: price("230.40")},
				},
			},
			{
				submenu: models.Submenu{Title: "Drinks", Description: "Every day is Friday"},
				dishes: []models.Dish{
					{Title: "Mulled wine", Description: "Warms inside and out", Price: price("140")},
					{Title: "Mojito", Description: "Maybe plain rum is better", Price: price("200.05")},
				},
			},
		},
	},
}
