package models

import (
	"time"

	"github.com/google/uuid"
)

type ExportStatus string

const (
	ExportStatusQueued  ExportStatus = "queued"
	ExportStatusStarted ExportStatus = "started"
	ExportStatusDone    ExportStatus = "done"
	ExportStatusFailed  ExportStatus = "failed"
)

type ExportTask struct {
	ID        uuid.UUID    `db:"id" json:"task_id"`
	Status    ExportStatus `db:"status" json:"task_status"`
	FilePath  string       `db:"file_path" json:"-"`
	CreatedAt time.Time    `db:"created_at" json:"-"`
	UpdatedAt time.Time    `db:"updated_at" json:"-"`
}

// MenuExport and SubmenuExport form the full-hierarchy snapshot the export
// worker turns into a spreadsheet.
type MenuExport struct {
	Menu
	Submenus []SubmenuExport
}

type SubmenuExport struct {
	Submenu
	Dishes []Dish
}
