package httpapp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	menu_service_http "github.com/restomenu/menu_service/internal/delivery/http"
)

type App struct {
	log        *slog.Logger
	httpServer *http.Server
	port       int
}

func NewApp(
	log *slog.Logger,
	menuService menu_service_http.MenuService,
	submenuService menu_service_http.SubmenuService,
	dishService menu_service_http.DishService,
	seedService menu_service_http.SeedService,
	exportService menu_service_http.ExportService,
	port int,
) *App {
	handler := menu_service_http.NewHandler(
		log,
		menuService,
		submenuService,
		dishService,
		seedService,
		exportService,
	)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: handler.InitRoutes(),
	}

	return &App{
		log:        log,
		httpServer: httpServer,
		port:       port,
	}
}

func (a *App) Run() error {
	const op = "httpapp.run"

	log := a.log.With(slog.String("op", op), slog.Int("port", a.port))

	log.Info("starting http server")

	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

func (a *App) Stop(ctx context.Context) error {
	const op = "httpapp.stop"

	log := a.log.With(slog.String("op", op))

	log.Info("stopping http server")

	return a.httpServer.Shutdown(ctx)
}
