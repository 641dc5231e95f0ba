package dish

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/restomenu/menu_service/internal/cache"
	"github.com/restomenu/menu_service/internal/domain/models"
	internalErrors "github.com/restomenu/menu_service/internal/lib/errors"
	"github.com/restomenu/menu_service/internal/repository/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestDishCreateUnderMissingSubmenu(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ctx := context.Background()
	dishes := mocks.NewMockDishRepository(ctl)
	submenus := mocks.NewMockSubmenuRepository(ctl)
	responseCache := cache.New(testLogger(), 16, time.Minute)

	service := New(testLogger(), responseCache, dishes, submenus)

	menuUUID := uuid.New()
	submenuUUID := uuid.New()

	submenus.EXPECT().Get(ctx, menuUUID, submenuUUID).Return(nil, internalErrors.ErrSubmenuNotFound)

	_, err := service.Create(ctx, menuUUID, submenuUUID, &models.Dish{
		Title: "Borscht",
		Price: decimal.RequireFromString("251.50"),
	})
	require.ErrorIs(t, err, internalErrors.ErrSubmenuNotFound)
}

func TestDishCreateSetsOwnership(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ctx := context.Background()
	dishes := mocks.NewMockDishRepository(ctl)
	submenus := mocks.NewMockSubmenuRepository(ctl)
	responseCache := cache.New(testLogger(), 16, time.Minute)

	service := New(testLogger(), responseCache, dishes, submenus)

	menuUUID := uuid.New()
	submenuUUID := uuid.New()
	dishUUID := uuid.New()

	submenus.EXPECT().Get(ctx, menuUUID, submenuUUID).Return(&models.Submenu{ID: submenuUUID, MenuID: menuUUID}, nil)
	dishes.EXPECT().Create(ctx, menuUUID, submenuUUID, gomock.Any()).Return(dishUUID, nil)

	created, err := service.Create(ctx, menuUUID, submenuUUID, &models.Dish{
		Title:       "Mojito",
		Description: "Maybe plain rum is better",
		Price:       decimal.RequireFromString("200.05"),
	})
	require.NoError(t, err)
	require.Equal(t, dishUUID, created.ID)
	require.Equal(t, submenuUUID, created.SubmenuID)
}

func TestDishUpdateInvalidatesAncestorKeys(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ctx := context.Background()
	dishes := mocks.NewMockDishRepository(ctl)
	submenus := mocks.NewMockSubmenuRepository(ctl)
	responseCache := cache.New(testLogger(), 16, time.Minute)

	service := New(testLogger(), responseCache, dishes, submenus)

	menuUUID := uuid.New()
	submenuUUID := uuid.New()
	dishUUID := uuid.New()

	for _, key := range cache.KeysOnDishWrite(menuUUID, submenuUUID, dishUUID) {
		responseCache.Set(key, []byte(`{}`))
	}

	newTitle := "Aspic"
	dishes.EXPECT().
		Update(ctx, menuUUID, submenuUUID, dishUUID, models.DishUpdate{Title: &newTitle}).
		Return(&models.Dish{ID: dishUUID, Title: newTitle, SubmenuID: submenuUUID}, nil)

	_, err := service.Update(ctx, menuUUID, submenuUUID, dishUUID, models.DishUpdate{Title: &newTitle})
	require.NoError(t, err)

	for _, key := range cache.KeysOnDishWrite(menuUUID, submenuUUID, dishUUID) {
		_, ok := responseCache.Get(key)
		require.False(t, ok, "key %q should have been invalidated", key)
	}
}

func TestDishDeleteMissingRow(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ctx := context.Background()
	dishes := mocks.NewMockDishRepository(ctl)
	submenus := mocks.NewMockSubmenuRepository(ctl)
	responseCache := cache.New(testLogger(), 16, time.Minute)

	service := New(testLogger(), responseCache, dishes, submenus)

	menuUUID := uuid.New()
	submenuUUID := uuid.New()
	dishUUID := uuid.New()

	dishes.EXPECT().Delete(ctx, menuUUID, submenuUUID, dishUUID).Return(false, nil)

	err := service.Delete(ctx, menuUUID, submenuUUID, dishUUID)
	require.ErrorIs(t, err, internalErrors.ErrDishNotFound)
}
