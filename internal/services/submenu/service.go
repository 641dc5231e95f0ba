package submenu

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

type submenuRepository interface {
	Create(ctx context.Context, menuUUID uuid.UUID, submenu *models.Submenu) (uuid.UUID, error)
	List(ctx context.Context, menuUUID uuid.UUID) ([]models.SubmenuDetail, error)
	GetDetail(ctx context.Context, menuUUID, submenuUUID uuid.UUID) (*models.SubmenuDetail, error)
	Update(ctx context.Context, menuUUID, submenuUUID uuid.UUID, upd models.SubmenuUpdate) (*models.Submenu, error)
	Delete(ctx context.Context, menuUUID, submenuUUID uuid.UUID) (bool, error)
}

// menuGetter is the ancestor-existence guard: it reports ErrMenuNotFound when
// the owning menu is missing.
type menuGetter interface {
	GetByID(ctx context.Context, menuUUID uuid.UUID) (*models.Menu, error)
}

type responseCache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(keys ...string)
}

type Service struct {
	log   *slog.Logger
	cache responseCache

	submenus submenuRepository
	menus    menuGetter
}

func New(log *slog.Logger, responseCache responseCache, submenus submenuRepository, menus menuGetter) *Service {
	return &Service{
		log:      log,
		cache:    responseCache,
		submenus: submenus,
		menus:    menus,
	}
}

func (s *Service) Create(ctx context.Context, menuUUID uuid.UUID, submenu *models.Submenu) (*models.Submenu, error) {
	const op = "services.submenu.Create"

	if _, err := s.menus.GetByID(ctx, menuUUID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	submenuUUID, err := s.submenus.Create(ctx, menuUUID, submenu)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	submenu.ID = submenuUUID
	submenu.MenuID = menuUUID

	s.cache.Delete(cache.KeysOnSubmenuWrite(menuUUID, submenuUUID)...)

	return submenu, nil
}

func (s *Service) List(ctx context.Context, menuUUID uuid.UUID) ([]models.SubmenuDetail, error) {
	const op = "services.submenu.List"

	if _, err := s.menus.GetByID(ctx, menuUUID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	listKey := cache.SubmenuListKey(menuUUID)

	if value, ok := s.cache.Get(listKey); ok {
		var submenus []models.SubmenuDetail
		if err := json.Unmarshal(value, &submenus); err == nil {
			s.log.DebugContext(ctx, op, slog.String("cache", "hit"))
			return submenus, nil
		}
		s.cache.Delete(listKey)
	}

	submenus, err := s.submenus.List(ctx, menuUUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if bytes, err := json.Marshal(submenus); err == nil {
		s.cache.Set(listKey, bytes)
	}

	return submenus, nil
}

func (s *Service) Get(ctx context.Context, menuUUID, submenuUUID uuid.UUID) (*models.SubmenuDetail, error) {
	const op = "services.submenu.Get"

	if value, ok := s.cache.Get(cache.SubmenuKey(submenuUUID)); ok {
		var submenu models.SubmenuDetail
		if err := json.Unmarshal(value, &submenu); err == nil {
			s.log.DebugContext(ctx, op, slog.String("cache", "hit"))
			return &submenu, nil
		}
		s.cache.Delete(cache.SubmenuKey(submenuUUID))
	}

	submenu, err := s.submenus.GetDetail(ctx, menuUUID, submenuUUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if bytes, err := json.Marshal(submenu); err == nil {
		s.cache.Set(cache.SubmenuKey(submenuUUID), bytes)
	}

	return submenu, nil
}

func (s *Service) Update(ctx context.Context, menuUUID, submenuUUID uuid.UUID, upd models.SubmenuUpdate) (*models.Submenu, error) {
	const op = "services.submenu.Update"

	submenu, err := s.submenus.Update(ctx, menuUUID, submenuUUID, upd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Delete(cache.KeysOnSubmenuWrite(menuUUID, submenuUUID)...)

	return submenu, nil
}

func (s *Service) Delete(ctx context.Context, menuUUID, submenuUUID uuid.UUID) error {
	const op = "services.submenu.Delete"

	deleted, err := s.submenus.Delete(ctx, menuUUID, submenuUUID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Delete(cache.KeysOnSubmenuWrite(menuUUID, submenuUUID)...)

	if !deleted {
		return internalErrors.ErrSubmenuNotFound
	}

	return nil
}
