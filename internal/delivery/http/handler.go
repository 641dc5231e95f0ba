package menu_service_http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/restomenu/menu_service/internal/domain/models"
)

type MenuService interface {
	Create(ctx context.Context, menu *models.Menu) (*models.Menu, error)
	List(ctx context.Context) ([]models.MenuDetail, error)
	Get(ctx context.Context, menuUUID uuid.UUID) (*models.MenuDetail, error)
	Update(ctx context.Context, menuUUID uuid.UUID, upd models.MenuUpdate) (*models.Menu, error)
	Delete(ctx context.Context, menuUUID uuid.UUID) error
}

type SubmenuService interface {
	Create(ctx context.Context, menuUUID uuid.UUID, submenu *models.Submenu) (*models.Submenu, error)
	List(ctx context.Context, menuUUID uuid.UUID) ([]models.SubmenuDetail, error)
	Get(ctx context.Context, menuUUID, submenuUUID uuid.UUID) (*models.SubmenuDetail, error)
	Update(ctx context.Context, menuUUID, submenuUUID uuid.UUID, upd models.SubmenuUpdate) (*models.Submenu, error)
	Delete(ctx context.Context, menuUUID, submenuUUID uuid.UUID) error
}

type DishService interface {
	Create(ctx context.Context, menuUUID, submenuUUID uuid.UUID, dish *models.Dish) (*models.Dish, error)
	List(ctx context.Context, menuUUID, submenuUUID uuid.UUID) ([]models.Dish, error)
	Get(ctx context.Context, menuUUID, submenuUUID, dishUUID uuid.UUID) (*models.Dish, error)
	Update(ctx context.Context, menuUUID, submenuUUID, dishUUID uuid.UUID, upd models.DishUpdate) (*models.Dish, error)
	Delete(ctx context.Context, menuUUID, submenuUUID, dishUUID uuid.UUID) error
}

type SeedService interface {
	Fill(ctx context.Context) error
}

type ExportService interface {
	Enqueue(ctx context.Context) (uuid.UUID, error)
	Status(ctx context.Context, taskUUID uuid.UUID) (*models.ExportTask, error)
}

type Handler struct {
	log      *slog.Logger
	validate *validator.Validate

	menuService    MenuService
	submenuService SubmenuService
	dishService    DishService
	seedService    SeedService
	exportService  ExportService
}

func NewHandler(
	log *slog.Logger,
	menuService MenuService,
	submenuService SubmenuService,
	dishService DishService,
	seedService SeedService,
	exportService ExportService,
) *Handler {
	return &Handler{
		log:            log,
		validate:       validator.New(),
		menuService:    menuService,
		submenuService: submenuService,
		dishService:    dishService,
		seedService:    seedService,
		exportService:  exportService,
	}
}

func (h *Handler) InitRoutes() http.Handler {
	mux := chi.NewRouter()

	mux.Route("/api/v1", func(r chi.Router) {
		r.Route("/menus", func(r chi.Router) {
			r.Post("/", h.createMenu)
			r.Get("/", h.listMenus)

			r.Route("/{menu_id}", func(r chi.Router) {
				r.Get("/", h.getMenu)
				r.Patch("/", h.updateMenu)
				r.Delete("/", h.deleteMenu)

				r.Route("/submenus", func(r chi.Router) {
					r.Post("/", h.createSubmenu)
					r.Get("/", h.listSubmenus)

					r.Route("/{submenu_id}", func(r chi.Router) {
						r.Get("/", h.getSubmenu)
						r.Patch("/", h.updateSubmenu)
						r.Delete("/", h.deleteSubmenu)

						r.Route("/dishes", func(r chi.Router) {
							r.Post("/", h.createDish)
							r.Get("/", h.listDishes)

							r.Route("/{dish_id}", func(r chi.Router) {
								r.Get("/", h.getDish)
								r.Patch("/", h.updateDish)
								r.Delete("/", h.deleteDish)
							})
						})
					})
				})
			})
		})

		r.Route("/data", func(r chi.Router) {
			r.Post("/", h.seedTestData)
			r.Post("/tasks", h.createExportTask)
			r.Get("/tasks/{task_id}", h.exportTaskStatus)
		})
	})

	return mux
}
