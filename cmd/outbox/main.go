package main

import (
	"context"
	"fmt"

	"github.com/restomenu/menu_service/internal/config"
	"github.com/restomenu/menu_service/internal/outbox"
	kafkaproducer "github.com/restomenu/menu_service/pkg/brokers/kafka/producer"
	"github.com/restomenu/menu_service/pkg/databases/postgres"
	"github.com/restomenu/menu_service/pkg/logger"
)

func main() {
	cfg := config.InitConfig()

	log := logger.NewSlogLogger(logger.SlogEnvironment(cfg.Env))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := postgres.NewPostgresDB(ctx, log, postgresDSN(&cfg.Postgres))
	if err != nil {
		panic(fmt.Sprintf("failed to connect to db: %v", err))
	}

	producer, err := kafkaproducer.NewSyncProducer(cfg.Kafka.BrokerList)
	if err != nil {
		panic(fmt.Sprintf("failed to create producer: %v", err))
	}

	publisher := outbox.NewPublisher(log, producer, db.GetDB(), cfg.Kafka)

	if err = publisher.PublishPending(ctx); err != nil {
		panic(fmt.Sprintf("publish pending events error: %v", err))
	}

	log.Info("pending events were published to the menu event topic")
}

func postgresDSN(psqlCfg *config.PostgresConfig) string {
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=%s",
		psqlCfg.Host, psqlCfg.Port, psqlCfg.User, psqlCfg.DbName, psqlCfg.Pwd, psqlCfg.SslMode)
}
