package models

import "github.com/google/uuid"

type Menu struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
}

// MenuDetail is the read-side view of a menu. The counts are computed by the
// repository at query time and are never persisted.
type MenuDetail struct {
	Menu
	SubmenusCount int `db:"submenus_count" json:"submenus_count"`
	DishesCount   int `db:"dishes_count" json:"dishes_count"`
}

// MenuUpdate carries a sparse update: nil fields are left untouched.
type MenuUpdate struct {
	Title       *string
	Description *string
}
