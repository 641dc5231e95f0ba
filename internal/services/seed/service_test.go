package seed

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
	"github.com/restomenu/menu_service/internal/repository/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestFillInsertsWholeHierarchy(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ctx := context.Background()

	menus := mocks.NewMockMenuRepository(ctl)
	submenus := mocks.NewMockSubmenuRepository(ctl)
	dishes := mocks.NewMockDishRepository(ctl)
	responseCache := cache.New(testLogger(), 16, time.Minute)

	responseCache.Set(cache.MenuListKey, []byte(`[]`))

	menus.EXPECT().Create(ctx, gomock.Any()).Return(uuid.New(), nil).Times(2)
	submenus.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(uuid.New(), nil).Times(4)
	dishes.EXPECT().Create(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil).Times(9)

	service := New(testLogger(), responseCache, menus, submenus, dishes)

	require.NoError(t, service.Fill(ctx))

	_, ok := responseCache.Get(cache.MenuListKey)
	require.False(t, ok, "menu list entry should have been invalidated")
}

func TestFillStopsOnFirstError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ctx := context.Background()

	menus := mocks.NewMockMenuRepository(ctl)
	submenus := mocks.NewMockSubmenuRepository(ctl)
	dishes := mocks.NewMockDishRepository(ctl)
	responseCache := cache.New(testLogger(), 16, time.Minute)

	menus.EXPECT().Create(ctx, gomock.Any()).Return(uuid.New(), nil)
	submenus.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(uuid.Nil, context.DeadlineExceeded)

	service := New(testLogger(), responseCache, menus, submenus, dishes)

	err := service.Fill(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
