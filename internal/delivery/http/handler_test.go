package menu_service_http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
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
	dishService "github.com/restomenu/menu_service/internal/services/dish"
	exportService "github.com/restomenu/menu_service/internal/services/export"
	menuService "github.com/restomenu/menu_service/internal/services/menu"
	seedService "github.com/restomenu/menu_service/internal/services/seed"
	submenuService "github.com/restomenu/menu_service/internal/services/submenu"
)

type testEnv struct {
	handler  http.Handler
	menus    *mocks.MockMenuRepository
	submenus *mocks.MockSubmenuRepository
	dishes   *mocks.MockDishRepository
	exports  *mocks.MockExportRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ctl := gomock.NewController(t)
	t.Cleanup(ctl.Finish)

	menus := mocks.NewMockMenuRepository(ctl)
	submenus := mocks.NewMockSubmenuRepository(ctl)
	dishes := mocks.NewMockDishRepository(ctl)
	exports := mocks.NewMockExportRepository(ctl)

	responseCache := cache.New(log, 16, time.Minute)

	h := NewHandler(
		log,
		menuService.New(log, responseCache, menus),
		submenuService.New(log, responseCache, submenus, menus),
		dishService.New(log, responseCache, dishes, submenus),
		seedService.New(log, responseCache, menus, submenus, dishes),
		exportService.New(log, exports),
	)

	return &testEnv{
		handler:  h.InitRoutes(),
		menus:    menus,
		submenus: submenus,
		dishes:   dishes,
		exports:  exports,
	}
}

func (e *testEnv) do(t *testing.T, method, target string, body []byte) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewBuffer(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)

	return rec.Result()
}

func readBody(t *testing.T, res *http.Response) string {
	t.Helper()

	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	require.NoError(t, res.Body.Close())

	return string(data)
}

func TestCreateMenu(t *testing.T) {
	env := newTestEnv(t)

	menuUUID := uuid.New()
	env.menus.EXPECT().Create(gomock.Any(), gomock.Any()).Return(menuUUID, nil)

	res := env.do(t, http.MethodPost, "/api/v1/menus/", []byte(`{"title":"Main menu","description":"Timeless classics"}`))

	require.Equal(t, http.StatusCreated, res.StatusCode)
	require.JSONEq(
		t,
		fmt.Sprintf(`{"id":"%s","title":"Main menu","description":"Timeless classics"}`, menuUUID),
		readBody(t, res),
	)
}

func TestCreateMenuMissingTitle(t *testing.T) {
	env := newTestEnv(t)

	res := env.do(t, http.MethodPost, "/api/v1/menus/", []byte(`{"description":"No title"}`))

	require.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestGetMenuNotFound(t *testing.T) {
	env := newTestEnv(t)

	menuUUID := uuid.New()
	env.menus.EXPECT().GetDetail(gomock.Any(), menuUUID).Return(nil, internalErrors.ErrMenuNotFound)

	res := env.do(t, http.MethodGet, "/api/v1/menus/"+menuUUID.String()+"/", nil)

	require.Equal(t, http.StatusNotFound, res.StatusCode)
	require.JSONEq(t, `{"detail":"menu not found"}`, readBody(t, res))
}

func TestGetMenuMalformedUUID(t *testing.T) {
	env := newTestEnv(t)

	res := env.do(t, http.MethodGet, "/api/v1/menus/not-a-uuid/", nil)

	require.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestGetMenuWithCounts(t *testing.T) {
	env := newTestEnv(t)

	menuUUID := uuid.New()
	env.menus.EXPECT().GetDetail(gomock.Any(), menuUUID).Return(&models.MenuDetail{
		Menu:          models.Menu{ID: menuUUID, Title: "Main menu", Description: "Timeless classics"},
		SubmenusCount: 2,
		DishesCount:   5,
	}, nil)

	res := env.do(t, http.MethodGet, "/api/v1/menus/"+menuUUID.String()+"/", nil)

	require.Equal(t, http.StatusOK, res.StatusCode)
	require.JSONEq(
		t,
		fmt.Sprintf(
			`{"id":"%s","title":"Main menu","description":"Timeless classics","submenus_count":2,"dishes_count":5}`,
			menuUUID,
		),
		readBody(t, res),
	)
}

func TestCreateSubmenuUnderMissingMenu(t *testing.T) {
	env := newTestEnv(t)

	menuUUID := uuid.New()
	env.menus.EXPECT().GetByID(gomock.Any(), menuUUID).Return(nil, internalErrors.ErrMenuNotFound)

	res := env.do(
		t,
		http.MethodPost,
		fmt.Sprintf("/api/v1/menus/%s/submenus/", menuUUID),
		[]byte(`{"title":"Soups","description":"Eaten with a spoon"}`),
	)

	require.Equal(t, http.StatusNotFound, res.StatusCode)
	require.JSONEq(t, `{"detail":"menu not found"}`, readBody(t, res))
}

func TestDeleteSubmenu(t *testing.T) {
	env := newTestEnv(t)

	menuUUID := uuid.New()
	submenuUUID := uuid.New()
	env.submenus.EXPECT().Delete(gomock.Any(), menuUUID, submenuUUID).Return(true, nil)

	res := env.do(
		t,
		http.MethodDelete,
		fmt.Sprintf("/api/v1/menus/%s/submenus/%s/", menuUUID, submenuUUID),
		nil,
	)

	require.Equal(t, http.StatusOK, res.StatusCode)
	require.JSONEq(t, `{"deleted":true}`, readBody(t, res))
}

func TestDeleteMissingDish(t *testing.T) {
	env := newTestEnv(t)

	menuUUID := uuid.New()
	submenuUUID := uuid.New()
	dishUUID := uuid.New()
	env.dishes.EXPECT().Delete(gomock.Any(), menuUUID, submenuUUID, dishUUID).Return(false, nil)

	res := env.do(
		t,
		http.MethodDelete,
		fmt.Sprintf("/api/v1/menus/%s/submenus/%s/dishes/%s/", menuUUID, submenuUUID, dishUUID),
		nil,
	)

	require.Equal(t, http.StatusNotFound, res.StatusCode)
	require.JSONEq(t, `{"detail":"dish not found"}`, readBody(t, res))
}

func TestCreateDishNegativePrice(t *testing.T) {
	env := newTestEnv(t)

	res := env.do(
		t,
		http.MethodPost,
		fmt.Sprintf("/api/v1/menus/%s/submenus/%s/dishes/", uuid.New(), uuid.New()),
		[]byte(`{"title":"Borscht","description":"Just like grandma's","price":"-1.00"}`),
	)

	require.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestPatchDishPrice(t *testing.T) {
	env := newTestEnv(t)

	menuUUID := uuid.New()
	submenuUUID := uuid.New()
	dishUUID := uuid.New()

	env.dishes.EXPECT().
		Update(gomock.Any(), menuUUID, submenuUUID, dishUUID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, _ uuid.UUID, upd models.DishUpdate) (*models.Dish, error) {
			require.Nil(t, upd.Title)
			require.NotNil(t, upd.Price)
			require.Equal(t, "300.5", upd.Price.String())

			return &models.Dish{
				ID:          dishUUID,
				Title:       "Borscht",
				Description: "Just like grandma's",
				Price:       *upd.Price,
				SubmenuID:   submenuUUID,
			}, nil
		})

	res := env.do(
		t,
		http.MethodPatch,
		fmt.Sprintf("/api/v1/menus/%s/submenus/%s/dishes/%s/", menuUUID, submenuUUID, dishUUID),
		[]byte(`{"price":"300.50"}`),
	)

	require.Equal(t, http.StatusOK, res.StatusCode)
}

func TestSeedEndpoint(t *testing.T) {
	env := newTestEnv(t)

	env.menus.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.New(), nil).Times(2)
	env.submenus.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil).Times(4)
	env.dishes.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil).Times(9)

	res := env.do(t, http.MethodPost, "/api/v1/data/", nil)

	require.Equal(t, http.StatusCreated, res.StatusCode)
	require.JSONEq(t, `{"push_test_data":true}`, readBody(t, res))
}

func TestCreateExportTask(t *testing.T) {
	env := newTestEnv(t)

	taskUUID := uuid.New()
	env.exports.EXPECT().CreateTask(gomock.Any()).Return(taskUUID, nil)

	res := env.do(t, http.MethodPost, "/api/v1/data/tasks", nil)

	require.Equal(t, http.StatusCreated, res.StatusCode)
	require.JSONEq(t, fmt.Sprintf(`{"task_id":"%s"}`, taskUUID), readBody(t, res))
}

func TestExportTaskStatusQueued(t *testing.T) {
	env := newTestEnv(t)

	taskUUID := uuid.New()
	env.exports.EXPECT().TaskByID(gomock.Any(), taskUUID).Return(&models.ExportTask{
		ID:     taskUUID,
		Status: models.ExportStatusQueued,
	}, nil)

	res := env.do(t, http.MethodGet, "/api/v1/data/tasks/"+taskUUID.String(), nil)

	require.Equal(t, http.StatusOK, res.StatusCode)
	require.JSONEq(
		t,
		fmt.Sprintf(`{"task_id":"%s","task_status":"queued","task_result":null}`, taskUUID),
		readBody(t, res),
	)
}

func TestExportTaskStatusFailed(t *testing.T) {
	env := newTestEnv(t)

	taskUUID := uuid.New()
	env.exports.EXPECT().TaskByID(gomock.Any(), taskUUID).Return(&models.ExportTask{
		ID:     taskUUID,
		Status: models.ExportStatusFailed,
	}, nil)

	res := env.do(t, http.MethodGet, "/api/v1/data/tasks/"+taskUUID.String(), nil)

	require.Equal(t, http.StatusOK, res.StatusCode)
	require.JSONEq(
		t,
		fmt.Sprintf(`{"task_id":"%s","task_status":"failed","task_result":null}`, taskUUID),
		readBody(t, res),
	)
}

func TestExportTaskStatusUnknownTask(t *testing.T) {
	env := newTestEnv(t)

	taskUUID := uuid.New()
	env.exports.EXPECT().TaskByID(gomock.Any(), taskUUID).Return(nil, internalErrors.ErrExportTaskNotFound)

	res := env.do(t, http.MethodGet, "/api/v1/data/tasks/"+taskUUID.String(), nil)

	require.Equal(t, http.StatusNotFound, res.StatusCode)
	require.JSONEq(t, `{"detail":"export task not found"}`, readBody(t, res))
}
