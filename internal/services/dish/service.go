package dish

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/restomenu/menu_service/internal/cache"
	"github.com/restomenu/menu_service/internal/domain/models"
	internalErrors "github.com/restomenu/menu_service/internal/lib/errors"
)

type dishRepository interface {
	Create(ctx context.Context, menuUUID, submenuUUID uuid.UUID, dish *models.Dish) (uuid.UUID, error)
	List(ctx context.Context, menuUUID, submenuUUID uuid.UUID) ([]models.Dish, error)
	Get(ctx context.Context, menuUUID, submenuUUID, dishUUID uuid.UUID) (*models.Dish, error)
	Update(ctx context.Context, menuUUID, submenuUUID, dishUUID uuid.UUID, upd models.DishUpdate) (*models.Dish, error)
	Delete(ctx context.Context, menuUUID, submenuUUID, dishUUID uuid.UUID) (bool, error)
}

// submenuGetter guards dish creation: it reports ErrSubmenuNotFound when the
// owning submenu is missing under the given menu.
type submenuGetter interface {
	Get(ctx context.Context, menuUUID, submenuUUID uuid.UUID) (*models.Submenu, error)
}

type responseCache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(keys ...string)
}

type Service struct {
	log   *slog.Logger
	cache responseCache

	dishes   dishRepository
	submenus submenuGetter
}

func New(log *slog.Logger, responseCache responseCache, dishes dishRepository, submenus submenuGetter) *Service {
	return &Service{
		log:      log,
		cache:    responseCache,
		dishes:   dishes,
		submenus: submenus,
	}
}

func (s *Service) Create(ctx context.Context, menuUUID, submenuUUID uuid.UUID, dish *models.Dish) (*models.Dish, error) {
	const op = "services.dish.Create"

	if _, err := s.submenus.Get(ctx, menuUUID, submenuUUID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	dishUUID, err := s.dishes.Create(ctx, menuUUID, submenuUUID, dish)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	dish.ID = dishUUID
	dish.SubmenuID = submenuUUID

	s.cache.Delete(cache.KeysOnDishWrite(menuUUID, submenuUUID, dishUUID)...)

	return dish, nil
}

func (s *Service) List(ctx context.Context, menuUUID, submenuUUID uuid.UUID) ([]models.Dish, error) {
	const op = "services.dish.List"

	listKey := cache.DishListKey(menuUUID, submenuUUID)

	if value, ok := s.cache.Get(listKey); ok {
		var dishes []models.Dish
		if err := json.Unmarshal(value, &dishes); err == nil {
			s.log.DebugContext(ctx, op, slog.String("cache", "hit"))
			return dishes, nil
		}
		s.cache.Delete(listKey)
	}

	dishes, err := s.dishes.List(ctx, menuUUID, submenuUUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if bytes, err := json.Marshal(dishes); err == nil {
		s.cache.Set(listKey, bytes)
	}

	return dishes, nil
}

func (s *Service) Get(ctx context.Context, menuUUID, submenuUUID, dishUUID uuid.UUID) (*models.Dish, error) {
	const op = "services.dish.Get"

	if value, ok := s.cache.Get(cache.DishKey(dishUUID)); ok {
		var dish models.Dish
		if err := json.Unmarshal(value, &dish); err == nil {
			s.log.DebugContext(ctx, op, slog.String("cache", "hit"))
			return &dish, nil
		}
		s.cache.Delete(cache.DishKey(dishUUID))
	}

	dish, err := s.dishes.Get(ctx, menuUUID, submenuUUID, dishUUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if bytes, err := json.Marshal(dish); err == nil {
		s.cache.Set(cache.DishKey(dishUUID), bytes)
	}

	return dish, nil
}

func (s *Service) Update(ctx context.Context, menuUUID, submenuUUID, dishUUID uuid.UUID, upd models.DishUpdate) (*models.Dish, error) {
	const op = "services.dish.Update"

	dish, err := s.dishes.Update(ctx, menuUUID, submenuUUID, dishUUID, upd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Delete(cache.KeysOnDishWrite(menuUUID, submenuUUID, dishUUID)...)

	return dish, nil
}

func (s *Service) Delete(ctx context.Context, menuUUID, submenuUUID, dishUUID uuid.UUID) error {
	const op = "services.dish.Delete"

	deleted, err := s.dishes.Delete(ctx, menuUUID, submenuUUID, dishUUID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Delete(cache.KeysOnDishWrite(menuUUID, submenuUUID, dishUUID)...)

	if !deleted {
		return internalErrors.ErrDishNotFound
	}

	return nil
}
