package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/restomenu/menu_service/internal/cache"
	"github.com/restomenu/menu_service/internal/domain/models"
)

type menuCreator interface {
	Create(ctx context.Context, menu *models.Menu) (uuid.UUID, error)
}

type submenuCreator interface {
	Create(ctx context.Context, menuUUID uuid.UUID, submenu *models.Submenu) (uuid.UUID, error)
}

type dishCreator interface {
	Create(ctx context.Context, menuUUID, submenuUUID uuid.UUID, dish *models.Dish) (uuid.UUID, error)
}

type responseCache interface {
	Delete(keys ...string)
}

type Service struct {
	log   *slog.Logger
	cache responseCache

	menus    menuCreator
	submenus submenuCreator
	dishes   dishCreator
}

func New(
	log *slog.Logger,
	responseCache responseCache,
	menus menuCreator,
	submenus submenuCreator,
	dishes dishCreator,
) *Service {
	return &Service{
		log:      log,
		cache:    responseCache,
		menus:    menus,
		submenus: submenus,
		dishes:   dishes,
	}
}

// Fill inserts the demo hierarchy. Each entity commits independently, so a
// failure partway through leaves the entities created so far in place.
func (s *Service) Fill(ctx context.Context) error {
	const op = "services.seed.Fill"

	for _, m := range testData {
		menu := m.menu
		menuUUID, err := s.menus.Create(ctx, &menu)
		if err != nil {
			return fmt.Errorf("%s: create menu: %w", op, err)
		}

		for _, sm := range m.submenus {
			submenu := sm.submenu
			submenuUUID, err := s.submenus.Create(ctx, menuUUID, &submenu)
			if err != nil {
				return fmt.Errorf("%s: create submenu: %w", op, err)
			}

			for _, d := range sm.dishes {
				dish := d
				if _, err := s.dishes.Create(ctx, menuUUID, submenuUUID, &dish); err != nil {
					return fmt.Errorf("%s: create dish: %w", op, err)
				}
			}
		}
	}

	s.cache.Delete(cache.MenuListKey)

	s.log.InfoContext(ctx, op, slog.String("status", "test data inserted"))

	return nil
}
