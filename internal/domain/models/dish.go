package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Dish struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	Title       string          `db:"title" json:"title"`
	Description string          `db:"description" json:"description"`
	Price       decimal.Decimal `db:"price" json:"price"`
	SubmenuID   uuid.UUID       `db:"submenu_id" json:"submenu_id"`
}

type DishUpdate struct {
	Title       *string
	Description *string
	Price       *decimal.Decimal
}
