package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/restomenu/menu_service/internal/domain/models"
	"github.com/restomenu/menu_service/internal/repository/dish"
	"github.com/restomenu/menu_service/internal/repository/export"
	"github.com/restomenu/menu_service/internal/repository/menu"
	"github.com/restomenu/menu_service/internal/repository/submenu"
)

//go:generate mockgen -source=repository.go -destination=mocks/mocks.go -package=mocks

type MenuRepository interface {
	Create(ctx context.Context, menu *models.Menu) (uuid.UUID, error)
	List(ctx context.Context) ([]models.MenuDetail, error)
	GetByID(ctx context.Context, menuUUID uuid.UUID) (*models.Menu, error)
	GetDetail(ctx context.Context, menuUUID uuid.UUID) (*models.MenuDetail, error)
	Update(ctx context.Context, menuUUID uuid.UUID, upd models.MenuUpdate) (*models.Menu, error)
	Delete(ctx context.Context, menuUUID uuid.UUID) (bool, error)
}

type SubmenuRepository interface {
	Create(ctx context.Context, menuUUID uuid.UUID, submenu *models.Submenu) (uuid.UUID, error)
	List(ctx context.Context, menuUUID uuid.UUID) ([]models.SubmenuDetail, error)
	Get(ctx context.Context, menuUUID, submenuUUID uuid.UUID) (*models.Submenu, error)
	GetDetail(ctx context.Context, menuUUID, submenuUUID uuid.UUID) (*models.SubmenuDetail, error)
	Update(ctx context.Context, menuUUID, submenuUUID uuid.UUID, upd models.SubmenuUpdate) (*models.Submenu, error)
	Delete(ctx context.Context, menuUUID, submenuUUID uuid.UUID) (bool, error)
}

type DishRepository interface {
	Create(ctx context.Context, menuUUID, submenuUUID uuid.UUID, dish *models.Dish) (uuid.UUID, error)
	List(ctx context.Context, menuUUID, submenuUUID uuid.UUID) ([]models.Dish, error)
	Get(ctx context.Context, menuUUID, submenuUUID, dishUUID uuid.UUID) (*models.Dish, error)
	Update(ctx context.Context, menuUUID, submenuUUID, dishUUID uuid.UUID, upd models.DishUpdate) (*models.Dish, error)
	Delete(ctx context.Context, menuUUID, submenuUUID, dishUUID uuid.UUID) (bool, error)
}

type ExportRepository interface {
	CreateTask(ctx context.Context) (uuid.UUID, error)
	TaskByID(ctx context.Context, taskUUID uuid.UUID) (*models.ExportTask, error)
	ClaimTask(ctx context.Context) (*models.ExportTask, error)
	FinishTask(ctx context.Context, taskUUID uuid.UUID, filePath string) error
	FailTask(ctx context.Context, taskUUID uuid.UUID) error
	Dump(ctx context.Context) ([]models.MenuExport, error)
}

type Repository struct {
	Menus    *menu.Repository
	Submenus *submenu.Repository
	Dishes   *dish.Repository
	Exports  *export.Repository
}

func NewRepository(log *slog.Logger, db *sqlx.DB) *Repository {
	return &Repository{
		Menus:    menu.New(log, db),
		Submenus: submenu.New(log, db),
		Dishes:   dish.New(log, db),
		Exports:  export.New(log, db),
	}
}
