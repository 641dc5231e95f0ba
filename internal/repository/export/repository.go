package export

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/restomenu/menu_service/internal/domain/models"
	internalErrors "github.com/restomenu/menu_service/internal/lib/errors"
)

type Repository struct {
	log *slog.Logger
	db  *sqlx.DB
}

func New(log *slog.Logger, db *sqlx.DB) *Repository {
	return &Repository{
		log: log,
		db:  db,
	}
}

func (r *Repository) CreateTask(ctx context.Context) (uuid.UUID, error) {
	const op = "repository.export.CreateTask"

	const query = `INSERT INTO "export_task" (status) VALUES ($1) RETURNING id`

	var taskUUID uuid.UUID
	if err := r.db.QueryRowContext(ctx, query, models.ExportStatusQueued).Scan(&taskUUID); err != nil {
		r.log.Error(op, slog.String("error", err.Error()))
		return uuid.Nil, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return taskUUID, nil
}

func (r *Repository) TaskByID(ctx context.Context, taskUUID uuid.UUID) (*models.ExportTask, error) {
	const op = "repository.export.TaskByID"

	const query = `
		SELECT t.id, t.status, t.file_path, t.created_at, t.updated_at
		  FROM "export_task" t
		 WHERE t.id = $1
	`

	var task models.ExportTask
	if err := r.db.GetContext(ctx, &task, query, taskUUID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internalErrors.ErrExportTaskNotFound
		}
		r.log.Error(op, slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return &task, nil
}

// ClaimTask moves one queued task to "started" and returns it. SKIP LOCKED
// keeps concurrent workers off the same row. Returns nil when the queue is
// empty.
func (r *Repository) ClaimTask(ctx context.Context) (*models.ExportTask, error) {
	const op = "repository.export.ClaimTask"

	const query = `
		UPDATE "export_task"
		   SET status = $1, updated_at = now()
		 WHERE id = (
			SELECT id FROM "export_task"
			 WHERE status = $2
			 ORDER BY created_at
			 LIMIT 1
			 FOR UPDATE SKIP LOCKED
		 )
		 RETURNING id, status, file_path, created_at, updated_at
	`

	var task models.ExportTask
	err := r.db.GetContext(ctx, &task, query, models.ExportStatusStarted, models.ExportStatusQueued)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.log.Error(op, slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return &task, nil
}

func (r *Repository) FinishTask(ctx context.Context, taskUUID uuid.UUID, filePath string) error {
	const op = "repository.export.FinishTask"

	const query = `UPDATE "export_task" SET status = $1, file_path = $2, updated_at = now() WHERE id = $3`

	if _, err := r.db.ExecContext(ctx, query, models.ExportStatusDone, filePath, taskUUID); err != nil {
		r.log.Error(op, slog.String("error", err.Error()))
		return fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return nil
}

func (r *Repository) FailTask(ctx context.Context, taskUUID uuid.UUID) error {
	const op = "repository.export.FailTask"

	const query = `UPDATE "export_task" SET status = $1, updated_at = now() WHERE id = $2`

	if _, err := r.db.ExecContext(ctx, query, models.ExportStatusFailed, taskUUID); err != nil {
		r.log.Error(op, slog.String("error", err.Error()))
		return fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return nil
}

// Dump reads the whole hierarchy in one transaction: three queries, assembled
// in memory. The snapshot carries no consistency guarantee against mutations
// racing the export.
func (r *Repository) Dump(ctx context.Context) (result []models.MenuExport, err error) {
	const op = "repository.export.Dump"

	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		r.log.Error(op, slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: begin transaction: %w", op, err)
	}

	defer func() {
		if err != nil {
			if rollBackErr := tx.Rollback(); rollBackErr != nil {
				err = errors.Join(err, fmt.Errorf("%s: rollback transaction: %w", op, rollBackErr))
			}
		}
	}()

	var menus []models.Menu
	if err = tx.SelectContext(ctx, &menus, `SELECT m.id, m.title, m.description FROM "menu" m ORDER BY m.title`); err != nil {
		r.log.Error(op, slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: select menus: %w", op, err)
	}

	var submenus []models.Submenu
	if err = tx.SelectContext(ctx, &submenus, `SELECT s.id, s.title, s.description, s.menu_id FROM "submenu" s ORDER BY s.title`); err != nil {
		r.log.Error(op, slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: select submenus: %w", op, err)
	}

	var dishes []models.Dish
	if err = tx.SelectContext(ctx, &dishes, `SELECT d.id, d.title, d.description, d.price, d.submenu_id FROM "dish" d ORDER BY d.title`); err != nil {
		r.log.Error(op, slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: select dishes: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		r.log.Error(op, slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	dishesBySubmenu := make(map[uuid.UUID][]models.Dish, len(submenus))
	for _, d := range dishes {
		dishesBySubmenu[d.SubmenuID] = append(dishesBySubmenu[d.SubmenuID], d)
	}

	submenusByMenu := make(map[uuid.UUID][]models.SubmenuExport, len(menus))
	for _, s := range submenus {
		submenusByMenu[s.MenuID] = append(submenusByMenu[s.MenuID], models.SubmenuExport{
			Submenu: s,
			Dishes:  dishesBySubmenu[s.ID],
		})
	}

	result = make([]models.MenuExport, 0, len(menus))
	for _, m := range menus {
		result = append(result, models.MenuExport{
			Menu:     m,
			Submenus: submenusByMenu[m.ID],
		})
	}

	return result, nil
}
