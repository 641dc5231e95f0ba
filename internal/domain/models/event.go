package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

type EventType string

const (
	MenuCreated EventType = "MENU_CREATED"
	MenuUpdated EventType = "MENU_UPDATED"
	MenuDeleted EventType = "MENU_DELETED"

	SubmenuCreated EventType = "SUBMENU_CREATED"
	SubmenuUpdated EventType = "SUBMENU_UPDATED"
	SubmenuDeleted EventType = "SUBMENU_DELETED"

	DishCreated EventType = "DISH_CREATED"
	DishUpdated EventType = "DISH_UPDATED"
	DishDeleted EventType = "DISH_DELETED"
)

// OutboxMessage is one pending entity-change event. Rows are written in the
// same transaction as the mutation they describe and published later by the
// outbox binary.
type OutboxMessage struct {
	ID        int             `db:"id" json:"id"`
	EventUUID uuid.UUID       `db:"event_uuid" json:"event_uuid"`
	EventType string          `db:"event_type" json:"event_type"`
	Payload   json.RawMessage `db:"payload" json:"payload"`
	Sent      bool            `db:"sent" json:"sent"`
}

type MenuEvent struct {
	MenuID uuid.UUID `json:"menu_id"`
}

type SubmenuEvent struct {
	MenuID    uuid.UUID `json:"menu_id"`
	SubmenuID uuid.UUID `json:"submenu_id"`
}

type DishEvent struct {
	MenuID    uuid.UUID `json:"menu_id"`
	SubmenuID uuid.UUID `json:"submenu_id"`
	DishID    uuid.UUID `json:"dish_id"`
}
