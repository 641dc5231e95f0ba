package cache

import (
	"fmt"

	"github.com/google/uuid"
)

// Key scheme: detail entries are keyed by entity id, list entries by a fixed
// suffix scoped with the ancestor ids.
const MenuListKey = "menu-list"

func MenuKey(menuID uuid.UUID) string {
	return menuID.String()
}

func SubmenuListKey(menuID uuid.UUID) string {
	return fmt.Sprintf("%s_submenu-list", menuID)
}

func SubmenuKey(submenuID uuid.UUID) string {
	return submenuID.String()
}

func DishListKey(menuID, submenuID uuid.UUID) string {
	return fmt.Sprintf("%s_%s_dish-list", menuID, submenuID)
}

func DishKey(dishID uuid.UUID) string {
	return dishID.String()
}

// The KeysOn*Write functions enumerate every key affected by a mutation of
// the given entity kind. Any write clears the entity itself, the list it
// belongs to, the ancestor detail entries and the top-level menu list, since
// menu-level aggregate counts change whenever any descendant changes.

func KeysOnMenuWrite(menuID uuid.UUID) []string {
	return []string{
		MenuKey(menuID),
		MenuListKey,
	}
}

func KeysOnSubmenuWrite(menuID, submenuID uuid.UUID) []string {
	return []string{
		SubmenuKey(submenuID),
		SubmenuListKey(menuID),
		MenuKey(menuID),
		MenuListKey,
	}
}

func KeysOnDishWrite(menuID, submenuID, dishID uuid.UUID) []string {
	return []string{
		DishKey(dishID),
		DishListKey(menuID, submenuID),
		SubmenuKey(submenuID),
		SubmenuListKey(menuID),
		MenuKey(menuID),
		MenuListKey,
	}
}
