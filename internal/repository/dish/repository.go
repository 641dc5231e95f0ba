package dish

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

func (r *Repository) Create(ctx context.Context, menuUUID, submenuUUID uuid.UUID, dish *models.Dish) (dishUUID uuid.UUID, err error) {
	const op = "repository.dish.Create"

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

	const query = `INSERT INTO "dish" (title, description, price, submenu_id) VALUES ($1, $2, $3, $4) RETURNING id`

	if err = tx.QueryRowContext(ctx, query, dish.Title, dish.Description, dish.Price, submenuUUID).Scan(&dishUUID); err != nil {
		r.log.Error(op, slog.String("error", err.Error()))
		return uuid.Nil, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	event := models.DishEvent{MenuID: menuUUID, SubmenuID: submenuUUID, DishID: dishUUID}
	if err = outbox.Insert(ctx, tx, models.DishCreated, event); err != nil {
		r.log.Error(op, slog.String("error", err.Error()))
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		r.log.Error(op, slog.String("error", err.Error()))
		return uuid.Nil, fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return dishUUID, nil
}

func (r *Repository) List(ctx context.Context, menuUUID, submenuUUID uuid.UUID) ([]models.Dish, error) {
	const op = "repository.dish.List"

	const query = `
		SELECT d.id, d.title, d.description, d.price, d.submenu_id
		  FROM "dish" d
		  JOIN "submenu" s ON s.id = d.submenu_id
		 WHERE s.menu_id = $1 AND d.submenu_id = $2
	`

	dishes := make([]models.Dish, 0)
	if err := r.db.SelectContext(ctx, &dishes, query, menuUUID, submenuUUID); err != nil {
		r.log.Error(op, slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return dishes, nil
}

// Get filters by the complete ancestor chain: a dish id that exists under a
// different submenu must not be reachable through this path.
func (r *Repository) Get(ctx context.Context, menuUUID, submenuUUID, dishUUID uuid.UUID) (*models.Dish, error) {
	const op = "repository.dish.Get"

	const query = `
		SELECT d.id, d.title, d.description, d.price, d.submenu_id
		  FROM "dish" d
		  JOIN "submenu" s ON s.id = d.submenu_id
		 WHERE s.menu_id = $1 AND d.submenu_id = $2 AND d.id = $3
	`

	var dish models.Dish
	if err := r.db.GetContext(ctx, &dish, query, menuUUID, submenuUUID, dishUUID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internalErrors.ErrDishNotFound
		}
		r.log.Error(op, slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return &dish, nil
}

func (r *Repository) Update(ctx context.Context, menuUUID, submenuUUID, dishUUID uuid.UUID, upd models.DishUpdate) (dish *models.Dish, err error) {
	const op = "repository.dish.Update"

	setParts, args := updateParts(upd)
	if len(setParts) == 0 {
		return r.Get(ctx, menuUUID, submenuUUID, dishUUID)
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
		`UPDATE "dish" d SET %s
		  FROM "submenu" s
		 WHERE s.id = d.submenu_id AND s.menu_id = $%d AND d.submenu_id = $%d AND d.id = $%d
		 RETURNING d.id, d.title, d.description, d.price, d.submenu_id`,
		strings.Join(setParts, ", "), len(args)+1, len(args)+2, len(args)+3,
	)
	args = append(args, menuUUID, submenuUUID, dishUUID)

	dish = &models.Dish{}
	if err = tx.QueryRowContext(ctx, query, args...).
		Scan(&dish.ID, &dish.Title, &dish.Description, &dish.Price, &dish.SubmenuID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internalErrors.ErrDishNotFound
		}
		r.log.Error(op, slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	event := models.DishEvent{MenuID: menuUUID, SubmenuID: submenuUUID, DishID: dishUUID}
	if err = outbox.Insert(ctx, tx, models.DishUpdated, event); err != nil {
		r.log.Error(op, slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		r.log.Error(op, slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return dish, nil
}

func (r *Repository) Delete(ctx context.Context, menuUUID, submenuUUID, dishUUID uuid.UUID) (deleted bool, err error) {
	const op = "repository.dish.Delete"

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

	const query = `
		DELETE FROM "dish" d
		 USING "submenu" s
		 WHERE s.id = d.submenu_id AND s.menu_id = $1 AND d.submenu_id = $2 AND d.id = $3
	`

	res, err := tx.ExecContext(ctx, query, menuUUID, submenuUUID, dishUUID)
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
		event := models.DishEvent{MenuID: menuUUID, SubmenuID: submenuUUID, DishID: dishUUID}
		if err = outbox.Insert(ctx, tx, models.DishDeleted, event); err != nil {
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

func updateParts(upd models.DishUpdate) ([]string, []interface{}) {
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
	if upd.Price != nil {
		args = append(args, *upd.Price)
		setParts = append(setParts, fmt.Sprintf("price = $%d", len(args)))
	}

	return setParts, args
}
