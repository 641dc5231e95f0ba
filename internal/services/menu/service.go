package menu

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

type menuRepository interface {
	Create(ctx context.Context, menu *models.Menu) (uuid.UUID, error)
	List(ctx context.Context) ([]models.MenuDetail, error)
	GetDetail(ctx context.Context, menuUUID uuid.UUID) (*models.MenuDetail, error)
	Update(ctx context.Context, menuUUID uuid.UUID, upd models.MenuUpdate) (*models.Menu, error)
	Delete(ctx context.Context, menuUUID uuid.UUID) (bool, error)
}

type responseCache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(keys ...string)
}

type Service struct {
	log   *slog.Logger
	cache responseCache

	menus menuRepository
}

func New(log *slog.Logger, responseCache responseCache, menus menuRepository) *Service {
	return &Service{
		log:   log,
		cache: responseCache,
		menus: menus,
	}
}

func (s *Service) Create(ctx context.Context, menu *models.Menu) (*models.Menu, error) {
	const op = "services.menu.Create"

	menuUUID, err := s.menus.Create(ctx, menu)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	menu.ID = menuUUID

	s.cache.Delete(cache.KeysOnMenuWrite(menuUUID)...)

	return menu, nil
}

func (s *Service) List(ctx context.Context) ([]models.MenuDetail, error) {
	const op = "services.menu.List"

	if value, ok := s.cache.Get(cache.MenuListKey); ok {
		var menus []models.MenuDetail
		if err := json.Unmarshal(value, &menus); err == nil {
			s.log.DebugContext(ctx, op, slog.String("cache", "hit"))
			return menus, nil
		}
		// An unreadable entry behaves like a miss.
		s.cache.Delete(cache.MenuListKey)
	}

	menus, err := s.menus.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if bytes, err := json.Marshal(menus); err == nil {
		s.cache.Set(cache.MenuListKey, bytes)
	}

	return menus, nil
}

func (s *Service) Get(ctx context.Context, menuUUID uuid.UUID) (*models.MenuDetail, error) {
	const op = "services.menu.Get"

	if value, ok := s.cache.Get(cache.MenuKey(menuUUID)); ok {
		var menu models.MenuDetail
		if err := json.Unmarshal(value, &menu); err == nil {
			s.log.DebugContext(ctx, op, slog.String("cache", "hit"))
			return &menu, nil
		}
		s.cache.Delete(cache.MenuKey(menuUUID))
	}

	menu, err := s.menus.GetDetail(ctx, menuUUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if bytes, err := json.Marshal(menu); err == nil {
		s.cache.Set(cache.MenuKey(menuUUID), bytes)
	}

	return menu, nil
}

func (s *Service) Update(ctx context.Context, menuUUID uuid.UUID, upd models.MenuUpdate) (*models.Menu, error) {
	const op = "services.menu.Update"

	menu, err := s.menus.Update(ctx, menuUUID, upd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Delete(cache.KeysOnMenuWrite(menuUUID)...)

	return menu, nil
}

func (s *Service) Delete(ctx context.Context, menuUUID uuid.UUID) error {
	const op = "services.menu.Delete"

	deleted, err := s.menus.Delete(ctx, menuUUID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Delete(cache.KeysOnMenuWrite(menuUUID)...)

	if !deleted {
		return internalErrors.ErrMenuNotFound
	}

	return nil
}
