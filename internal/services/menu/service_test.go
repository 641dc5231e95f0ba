package menu

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

func TestMenuListServedFromCache(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ctx := context.Background()
	repo := mocks.NewMockMenuRepository(ctl)
	responseCache := cache.New(testLogger(), 16, time.Minute)

	service := New(testLogger(), responseCache, repo)

	stored := []models.MenuDetail{
		{
			Menu:          models.Menu{ID: uuid.New(), Title: "Main menu", Description: "Timeless classics"},
			SubmenusCount: 2,
			DishesCount:   5,
		},
	}

	// The repository must be hit exactly once, the second read is a cache hit.
	repo.EXPECT().List(ctx).Return(stored, nil).Times(1)

	first, err := service.List(ctx)
	require.NoError(t, err)
	require.Equal(t, stored, first)

	second, err := service.List(ctx)
	require.NoError(t, err)
	require.Equal(t, stored, second)
}

func TestMenuCreateInvalidatesList(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ctx := context.Background()
	repo := mocks.NewMockMenuRepository(ctl)
	responseCache := cache.New(testLogger(), 16, time.Minute)

	service := New(testLogger(), responseCache, repo)

	repo.EXPECT().List(ctx).Return([]models.MenuDetail{}, nil).Times(2)

	_, err := service.List(ctx)
	require.NoError(t, err)

	menuUUID := uuid.New()
	repo.EXPECT().Create(ctx, gomock.Any()).Return(menuUUID, nil)

	created, err := service.Create(ctx, &models.Menu{Title: "Seasonal menu", Description: "Changes with the weather"})
	require.NoError(t, err)
	require.Equal(t, menuUUID, created.ID)

	// List key was dropped by the write, so this call reaches the repository.
	_, err = service.List(ctx)
	require.NoError(t, err)
}

func TestMenuGetNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ctx := context.Background()
	repo := mocks.NewMockMenuRepository(ctl)
	responseCache := cache.New(testLogger(), 16, time.Minute)

	service := New(testLogger(), responseCache, repo)

	menuUUID := uuid.New()
	repo.EXPECT().GetDetail(ctx, menuUUID).Return(nil, internalErrors.ErrMenuNotFound)

	_, err := service.Get(ctx, menuUUID)
	require.ErrorIs(t, err, internalErrors.ErrMenuNotFound)
}

func TestMenuDeleteMissingRow(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ctx := context.Background()
	repo := mocks.NewMockMenuRepository(ctl)
	responseCache := cache.New(testLogger(), 16, time.Minute)

	service := New(testLogger(), responseCache, repo)

	menuUUID := uuid.New()
	repo.EXPECT().Delete(ctx, menuUUID).Return(false, nil)

	err := service.Delete(ctx, menuUUID)
	require.ErrorIs(t, err, internalErrors.ErrMenuNotFound)
}
