package models

import "github.com/google/uuid"

type Submenu struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	MenuID      uuid.UUID `db:"menu_id" json:"menu_id"`
}

type SubmenuDetail struct {
	Submenu
	DishesCount int `db:"dishes_count" json:"dishes_count"`
}

type SubmenuUpdate struct {
	Title       *string
	Description *string
}
