package menu

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

func (r *Repository) Create(ctx context.Context, menu *models.Menu) (menuUUID uuid.UUID, err error) {
	const op = "repository.menu.Create"

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

	const query = `INSERT INTO "menu" (title, description) VALUES ($1, $2) RETURNING id`

	if err = tx.QueryRowContext(ctx, query, menu.Title, menu.Description).Scan(&menuUUID); err != nil {
		r.log.Error(op, slog.String("error", err.Error()))
		return uuid.Nil, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	if err = outbox.Insert(ctx, tx, models.MenuCreated, models.MenuEvent{MenuID: menuUUID}); err != nil {
		r.log.Error(op, slog.String("error", err.Error()))
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		r.log.Error(op, slog.String("error", err.Error()))
		return uuid.Nil, fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return menuUUID, nil
}

// List returns every menu with its submenu and transitive dish counts. The
// outer joins keep menus with no children in the result with counts of 0.
func (r *Repository) List(ctx context.Context) ([]models.MenuDetail, error) {
	const op = "repository.menu.List"

	const query = `
		SELECT m.id, m.title, m.description,
		       COUNT(DISTINCT s.id) AS submenus_count,
		       COUNT(d.id)          AS dishes_count
		  FROM "menu" m
		  LEFT JOIN "submenu" s ON s.menu_id = m.id
		  LEFT JOIN "dish" d    ON d.submenu_id = s.id
		 GROUP BY m.id
	`

	menus := make([]models.MenuDetail, 0)
	if err := r.db.SelectContext(ctx, &menus, query); err != nil {
		r.log.Error(op, slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return menus, nil
}

func (r *Repository) GetByID(ctx context.Context, menuUUID uuid.UUID) (*models.Menu, error) {
	const op = "repository.menu.GetByID"

	const query = `SELECT m.id, m.title, m.description FROM "menu" m WHERE m.id = $1`

	var menu models.Menu
	if err := r.db.GetContext(ctx, &menu, query, menuUUID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internalErrors.ErrMenuNotFound
		}
		r.log.Error(op, slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return &menu, nil
}

func (r *Repository) GetDetail(ctx context.Context, menuUUID uuid.UUID) (*models.MenuDetail, error) {
	const op = "repository.menu.GetDetail"

	const query = `
		SELECT m.id, m.title, m.description,
		       COUNT(DISTINCT s.id) AS submenus_count,
		       COUNT(d.id)          AS dishes_count
		  FROM "menu" m
		  LEFT JOIN "submenu" s ON s.menu_id = m.id
		  LEFT JOIN "dish" d    ON d.submenu_id = s.id
		 WHERE m.id = $1
		 GROUP BY m.id
	`

	var menu models.MenuDetail
	if err := r.db.GetContext(ctx, &menu, query, menuUUID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internalErrors.ErrMenuNotFound
		}
		r.log.Error(op, slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return &menu, nil
}

// Update applies only the fields present in upd. Absent fields keep their
// stored values.
func (r *Repository) Update(ctx context.Context, menuUUID uuid.UUID, upd models.MenuUpdate) (menu *models.Menu, err error) {
	const op = "repository.menu.Update"

	setParts, args := updateParts(upd)
	if len(setParts) == 0 {
		return r.GetByID(ctx, menuUUID)
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
		`UPDATE "menu" SET %s WHERE id = $%d RETURNING id, title, description`,
		strings.Join(setParts, ", "), len(args)+1,
	)
	args = append(args, menuUUID)

	menu = &models.Menu{}
	if err = tx.QueryRowContext(ctx, query, args...).Scan(&menu.ID, &menu.Title, &menu.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internalErrors.ErrMenuNotFound
		}
		r.log.Error(op, slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	if err = outbox.Insert(ctx, tx, models.MenuUpdated, models.MenuEvent{MenuID: menuUUID}); err != nil {
		r.log.Error(op, slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		r.log.Error(op, slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return menu, nil
}

// Delete removes the menu; submenus and dishes go with it via the cascading
// foreign keys. It reports whether a row was actually removed.
func (r *Repository) Delete(ctx context.Context, menuUUID uuid.UUID) (deleted bool, err error) {
	const op = "repository.menu.Delete"

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

	const query = `DELETE FROM "menu" WHERE id = $1`

	res, err := tx.ExecContext(ctx, query, menuUUID)
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
		if err = outbox.Insert(ctx, tx, models.MenuDeleted, models.MenuEvent{MenuID: menuUUID}); err != nil {
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

func updateParts(upd models.MenuUpdate) ([]string, []interface{}) {
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
