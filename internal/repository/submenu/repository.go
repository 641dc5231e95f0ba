package submenu

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/restomenu/menu_service/internal/domain/models"
	internalErrors "github.com/restomenu/menu_service/internal/lib/errors"
	"github.com/restomenu/menu_service/internal/repository/outbox"
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

func (r *Repository) Create(ctx context.Context, menuUUID uuid.UUID, submenu *models.Submenu) (submenuUUID uuid.UUID, err error) {
	const op = "repository.submenu.Create"

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.log.Error(op, slog.String("error", err.Error()))
		return uuid.Nil, fmt.Errorf("%s: begin transaction: %w", op, err)
	}

	defer func() {
		if err != nil {
			if rollBackErr := tx.Rollback(); rollBackErr != nil {
				err = errors.Join(err, fmt.Errorf("%s: rollback transaction: %w", op, rollBackErr))
			}
		}
	}()

	const query = `INSERT INTO "submenu" (title, description, menu_id) VALUES ($1, $2, $3) RETURNING id`

	if err = tx.QueryRowContext(ctx, query, submenu.Title, submenu.Description, menuUUID).Scan(&submenuUUID); err != nil {
		r.log.Error(op, slog.String("error", err.Error()))
		return uuid.Nil, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	event := models.SubmenuEvent{MenuID: menuUUID, SubmenuID: submenuUUID}
	if err = outbox.Insert(ctx, tx, models.SubmenuCreated, event); err != nil {
		r.log.Error(op, slog.String("error", err.Error()))
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		r.log.Error(op, slog.String("error", err.Error()))
		return uuid.Nil, fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return submenuUUID, nil
}

func (r *Repository) List(ctx context.Context, menuUUID uuid.UUID) ([]models.SubmenuDetail, error) {
	const op = "repository.submenu.List"

	const query = `
		SELECT s.id, s.title, s.description, s.menu_id,
		       COUNT(d.id) AS dishes_count
		  FROM "submenu" s
		  LEFT JOIN "dish" d ON d.submenu_id = s.id
		 WHERE s.menu_id = $1
		 GROUP BY s.id
	`

	submenus := make([]models.SubmenuDetail, 0)
	if err := r.db.SelectContext(ctx, &submenus, query, menuUUID); err != nil {
		r.log.Error(op, slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return submenus, nil
}

// Get is scoped by the owning menu so a submenu id cannot be reached through
// another menu's path.
func (r *Repository) Get(ctx context.Context, menuUUID, submenuUUID uuid.UUID) (*models.Submenu, error) {
	const op = "repository.submenu.Get"

	const query = `
		SELECT s.id, s.title, s.description, s.menu_id
		  FROM "submenu" s
		 WHERE s.menu_id = $1 AND s.id = $2
	`

	var submenu models.Submenu
	if err := r.db.GetContext(ctx, &submenu, query, menuUUID, submenuUUID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internalErrors.ErrSubmenuNotFound
		}
		r.log.Error(op, slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return &submenu, nil
}

func (r *Repository) GetDetail(ctx context.Context, menuUUID, submenuUUID uuid.UUID) (*models.SubmenuDetail, error) {
	const op = "repository.submenu.GetDetail"

	const query = `
		SELECT s.id, s.title, s.description, s.menu_id,
		       COUNT(d.id) AS dishes_count
		  FROM "submenu" s
		  LEFT JOIN "dish" d ON d.submenu_id = s.id
		 WHERE s.menu_id = $1 AND s.id = $2
		 GROUP BY s.id
	`

	var submenu models.SubmenuDetail
	if err := r.db.GetContext(ctx, &submenu, query, menuUUID, submenuUUID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internalErrors.ErrSubmenuNotFound
		}
		r.log.Error(op, slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return &submenu, nil
}

func (r *Repository) Update(ctx context.Context, menuUUID, submenuUUID uuid.UUID, upd models.SubmenuUpdate) (submenu *models.Submenu, err error) {
	const op = "repository.submenu.Update"

	setParts, args := updateParts(upd)
	if len(setParts) == 0 {
		return r.Get(ctx, menuUUID, submenuUUID)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
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

	query := fmt.Sprintf(
		`UPDATE "submenu" SET %s WHERE menu_id = $%d AND id = $%d RETURNING id, title, description, menu_id`,
		strings.Join(setParts, ", "), len(args)+1, len(args)+2,
	)
	args = append(args, menuUUID, submenuUUID)

	submenu = &models.Submenu{}
	if err = tx.QueryRowContext(ctx, query, args...).
		Scan(&submenu.ID, &submenu.Title, &submenu.Description, &submenu.MenuID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internalErrors.ErrSubmenuNotFound
		}
		r.log.Error(op, slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	event := models.SubmenuEvent{MenuID: menuUUID, SubmenuID: submenuUUID}
	if err = outbox.Insert(ctx, tx, models.SubmenuUpdated, event); err != nil {
		r.log.Error(op, slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		r.log.Error(op, slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return submenu, nil
}

func (r *Repository) Delete(ctx context.Context, menuUUID, submenuUUID uuid.UUID) (deleted bool, err error) {
	const op = "repository.submenu.Delete"

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.log.Error(op, slog.String("error", err.Error()))
		return false, fmt.Errorf("%s: begin transaction: %w", op, err)
	}

	defer func() {
		if err != nil {
			if rollBackErr := tx.Rollback(); rollBackErr != nil {
				err = errors.Join(err, fmt.Errorf("%s: rollback transaction: %w", op, rollBackErr))
			}
		}
	}()

	const query = `DELETE FROM "submenu" WHERE menu_id = $1 AND id = $2`

	res, err := tx.ExecContext(ctx, query, menuUUID, submenuUUID)
	if err != nil {
		r.log.Error(op, slog.String("error", err.Error()))
		return false, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.log.Error(op, slog.String("error", err.Error()))
		return false, fmt.Errorf("%s: rows affected: %w", op, err)
	}

	if affected > 0 {
		event := models.SubmenuEvent{MenuID: menuUUID, SubmenuID: submenuUUID}
		if err = outbox.Insert(ctx, tx, models.SubmenuDeleted, event); err != nil {
			r.log.Error(op, slog.String("error", err.Error()))
			return false, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err = tx.Commit(); err != nil {
		r.log.Error(op, slog.String("error", err.Error()))
		return false, fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return affected > 0, nil
}

func updateParts(upd models.SubmenuUpdate) ([]string, []interface{}) {
	var setParts []string
	var args []interface{}

	if upd.Title != nil {
		args = append(args, *upd.Title)
		setParts = append(setParts, fmt.Sprintf("title = $%d", len(args)))
	}
	if upd.Description != nil {
		args = append(args, *upd.Description)
		setParts = append(setParts, fmt.Sprintf("description = $%d", len(args)))
	}

	return setParts, args
}
