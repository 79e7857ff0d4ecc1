package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/lmittmann/tint"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/pflag"
	"go.uber.org/multierr"

	"github.com/SlavaShagalov/rentx/internal/events/repository"
	"github.com/SlavaShagalov/rentx/internal/pkg/app"
	"github.com/SlavaShagalov/rentx/pkg/events"
	"github.com/SlavaShagalov/rentx/pkg/migrations"
)

func main() {
	var configPath, migrationsPath string
	pflag.StringVarP(&configPath, "config", "c", "configs/events.yaml", "Config file path")
	pflag.StringVarP(&migrationsPath, "migrations", "", "migrations", "Migrations directory path")
	pflag.Parse()

	_ = godotenv.Load()

	config, err := app.ReadLocalConfig(configPath)
	if err != nil {
		panic(err)
	}

	logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{Level: slog.Level(config.Logging.Level)}))

	db, err := sqlx.Connect(config.DB.DriverName, config.DB.ConnectionString)
	if err != nil {
		panic(err)
	}

	err = migrations.Do(config.DB.ConnectionString, migrationsPath, logger)
	if err != nil {
		panic(err)
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: config.Kafka.Addresses,
		Topic:   config.Kafka.Topic,
	})

	defer func() {
		err = multierr.Combine(reader.Close(), db.Close())
		if err != nil {
			logger.Error("failed to release resources", slog.String("error", err.Error()))
		}
	}()

	consumer := events.NewConsumer(reader, repository.NewSqlxRepository(db, logger), logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("consuming rental events", slog.String("topic", config.Kafka.Topic))

	if err = consumer.Run(ctx); err != nil {
		logger.Error("consumer stopped", slog.String("error", err.Error()))
	}
}
