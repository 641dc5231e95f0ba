package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	httpapp "github.com/restomenu/menu_service/internal/app/http"
	"github.com/restomenu/menu_service/internal/cache"
	"github.com/restomenu/menu_service/internal/config"
	"github.com/restomenu/menu_service/internal/exporter"
	"github.com/restomenu/menu_service/internal/repository"
	dishService "github.com/restomenu/menu_service/internal/services/dish"
	exportService "github.com/restomenu/menu_service/internal/services/export"
	menuService "github.com/restomenu/menu_service/internal/services/menu"
	seedService "github.com/restomenu/menu_service/internal/services/seed"
	submenuService "github.com/restomenu/menu_service/internal/services/submenu"
	"github.com/restomenu/menu_service/pkg/databases/postgres"
)

type App struct {
	log *slog.Logger

	HTTPServer   *httpapp.App
	ExportWorker *exporter.Worker

	db *postgres.PgDB
}

func NewApp(ctx context.Context, log *slog.Logger, cfg *config.Config, dsn string) (*App, error) {
	db, err := postgres.NewPostgresDB(ctx, log, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	repo := repository.NewRepository(log, db.GetDB())

	responseCache := cache.New(log, cfg.Cache.Size, cfg.Cache.TTL)

	menuSvc := menuService.New(log, responseCache, repo.Menus)
	submenuSvc := submenuService.New(log, responseCache, repo.Submenus, repo.Menus)
	dishSvc := dishService.New(log, responseCache, repo.Dishes, repo.Submenus)
	seedSvc := seedService.New(log, responseCache, repo.Menus, repo.Submenus, repo.Dishes)
	exportSvc := exportService.New(log, repo.Exports)

	httpServer := httpapp.NewApp(
		log,
		menuSvc,
		submenuSvc,
		dishSvc,
		seedSvc,
		exportSvc,
		cfg.HTTP.Port,
	)

	exportWorker := exporter.NewWorker(log, repo.Exports, cfg.Export.MediaPath, cfg.Export.PollInterval)

	return &App{
		log:          log,
		HTTPServer:   httpServer,
		ExportWorker: exportWorker,
		db:           db,
	}, nil
}

// Run blocks until the context is cancelled or either the server or the
// export worker fails.
func (a *App) Run(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return a.HTTPServer.Run()
	})

	group.Go(func() error {
		return a.ExportWorker.Run(groupCtx)
	})

	group.Go(func() error {
		<-groupCtx.Done()
		return a.HTTPServer.Stop(context.Background())
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

func (a *App) Stop() error {
	a.log.Info("closing postgres db")

	return a.db.Close()
}
