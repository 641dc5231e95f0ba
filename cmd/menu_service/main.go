package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/restomenu/menu_service/internal/app"
	"github.com/restomenu/menu_service/internal/config"
	"github.com/restomenu/menu_service/pkg/logger"
)

func main() {
	cfg := config.InitConfig()

	log := logger.SetupLogger(cfg.Env)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	application, err := app.NewApp(ctx, log, &cfg, postgresDSN(&cfg.Postgres))
	if err != nil {
		panic(fmt.Sprintf("failed to create app: %v", err))
	}

	log.Info("application started")

	if err = application.Run(ctx); err != nil {
		panic(fmt.Sprintf("application run error: %v", err))
	}

	if err = application.Stop(); err != nil {
		panic(fmt.Sprintf("failed to stop app: %v", err))
	}

	log.Info("application stopped")
}

func postgresDSN(psqlCfg *config.PostgresConfig) string {
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=%s",
		psqlCfg.Host, psqlCfg.Port, psqlCfg.User, psqlCfg.DbName, psqlCfg.Pwd, psqlCfg.SslMode)
}
