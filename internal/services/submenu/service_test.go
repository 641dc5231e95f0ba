package submenu

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/restomenu/menu_service/internal/cache"
	"github.com/restomenu/menu_service/internal/domain/models"
	internalErrors "github.com/restomenu/menu_service/internal/lib/errors"
	"github.com/restomenu/menu_service/internal/repository/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestSubmenuCreateUnderMissingMenu(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ctx := context.Background()
	submenus := mocks.NewMockSubmenuRepository(ctl)
	menus := mocks.NewMockMenuRepository(ctl)
	responseCache := cache.New(testLogger(), 16, time.Minute)

	service := New(testLogger(), responseCache, submenus, menus)

	menuUUID := uuid.New()

	menus.EXPECT().GetByID(ctx, menuUUID).Return(nil, internalErrors.ErrMenuNotFound)

	_, err := service.Create(ctx, menuUUID, &models.Submenu{
		Title:       "Soups",
		Description: "Eaten with a spoon",
	})
	require.ErrorIs(t, err, internalErrors.ErrMenuNotFound)
}

func TestSubmenuCreateSetsOwnership(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ctx := context.Background()
	submenus := mocks.NewMockSubmenuRepository(ctl)
	menus := mocks.NewMockMenuRepository(ctl)
	responseCache := cache.New(testLogger(), 16, time.Minute)

	service := New(testLogger(), responseCache, submenus, menus)

	menuUUID := uuid.New()
	submenuUUID := uuid.New()

	menus.EXPECT().GetByID(ctx, menuUUID).Return(&models.Menu{ID: menuUUID}, nil)
	submenus.EXPECT().Create(ctx, menuUUID, gomock.Any()).Return(submenuUUID, nil)

	created, err := service.Create(ctx, menuUUID, &models.Submenu{
		Title:       "Hot dishes",
		Description: "Portions 1.3% bigger",
	})
	require.NoError(t, err)
	require.Equal(t, submenuUUID, created.ID)
	require.Equal(t, menuUUID, created.MenuID)
}

func TestSubmenuListUnderMissingMenu(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ctx := context.Background()
	submenus := mocks.NewMockSubmenuRepository(ctl)
	menus := mocks.NewMockMenuRepository(ctl)
	responseCache := cache.New(testLogger(), 16, time.Minute)

	service := New(testLogger(), responseCache, submenus, menus)

	menuUUID := uuid.New()

	menus.EXPECT().GetByID(ctx, menuUUID).Return(nil, internalErrors.ErrMenuNotFound)

	_, err := service.List(ctx, menuUUID)
	require.ErrorIs(t, err, internalErrors.ErrMenuNotFound)
}

func TestSubmenuUpdateInvalidatesAncestorKeys(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ctx := context.Background()
	submenus := mocks.NewMockSubmenuRepository(ctl)
	menus := mocks.NewMockMenuRepository(ctl)
	responseCache := cache.New(testLogger(), 16, time.Minute)

	service := New(testLogger(), responseCache, submenus, menus)

	menuUUID := uuid.New()
	submenuUUID := uuid.New()

	for _, key := range cache.KeysOnSubmenuWrite(menuUUID, submenuUUID) {
		responseCache.Set(key, []byte(`{}`))
	}

	newTitle := "Cold dishes"
	submenus.EXPECT().
		Update(ctx, menuUUID, submenuUUID, models.SubmenuUpdate{Title: &newTitle}).
		Return(&models.Submenu{ID: submenuUUID, Title: newTitle, MenuID: menuUUID}, nil)

	_, err := service.Update(ctx, menuUUID, submenuUUID, models.SubmenuUpdate{Title: &newTitle})
	require.NoError(t, err)

	for _, key := range cache.KeysOnSubmenuWrite(menuUUID, submenuUUID) {
		_, ok := responseCache.Get(key)
		require.False(t, ok, "key %q should have been invalidated", key)
	}
}

func TestSubmenuDeleteMissingRow(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ctx := context.Background()
	submenus := mocks.NewMockSubmenuRepository(ctl)
	menus := mocks.NewMockMenuRepository(ctl)
	responseCache := cache.New(testLogger(), 16, time.Minute)

	service := New(testLogger(), responseCache, submenus, menus)

	menuUUID := uuid.New()
	submenuUUID := uuid.New()

	submenus.EXPECT().Delete(ctx, menuUUID, submenuUUID).Return(false, nil)

	err := service.Delete(ctx, menuUUID, submenuUUID)
	require.ErrorIs(t, err, internalErrors.ErrSubmenuNotFound)
}
