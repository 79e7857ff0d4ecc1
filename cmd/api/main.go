package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/lmittmann/tint"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/pflag"
	"go.uber.org/multierr"

	authDelivery "github.com/SlavaShagalov/rentx/internal/auth/delivery"
	authRepository "github.com/SlavaShagalov/rentx/internal/auth/repository"
	"github.com/SlavaShagalov/rentx/internal/auth/revocation"
	authUseCase "github.com/SlavaShagalov/rentx/internal/auth/usecase"
	carsDelivery "github.com/SlavaShagalov/rentx/internal/cars/delivery"
	carsRepository "github.com/SlavaShagalov/rentx/internal/cars/repository"
	carsUseCase "github.com/SlavaShagalov/rentx/internal/cars/usecase"
	eventsRepository "github.com/SlavaShagalov/rentx/internal/events/repository"
	"github.com/SlavaShagalov/rentx/internal/pkg/app"
	"github.com/SlavaShagalov/rentx/internal/pkg/clock"
	pkgHasher "github.com/SlavaShagalov/rentx/internal/pkg/hasher"
	"github.com/SlavaShagalov/rentx/internal/pkg/token"
	"github.com/SlavaShagalov/rentx/internal/pkg/validation"
	rentalsDelivery "github.com/SlavaShagalov/rentx/internal/rentals/delivery"
	rentalsRepository "github.com/SlavaShagalov/rentx/internal/rentals/repository"
	rentalsUseCase "github.com/SlavaShagalov/rentx/internal/rentals/usecase"
	usersDelivery "github.com/SlavaShagalov/rentx/internal/users/delivery"
	usersRepository "github.com/SlavaShagalov/rentx/internal/users/repository"
	usersUseCase "github.com/SlavaShagalov/rentx/internal/users/usecase"
	"github.com/SlavaShagalov/rentx/pkg/events"
	"github.com/SlavaShagalov/rentx/pkg/migrations"
)

type WebApp interface {
	Start() error
	Shutdown(ctx context.Context) error
}

type eventPublisher interface {
	app.HealthChecker
	rentalsUseCase.Publisher
}

type revocationStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

func startApp(webApp WebApp, config app.Config, logger *slog.Logger) {
	logger.Info("web app starts",
		slog.String("addr", config.Web.Host+":"+config.Web.Port),
	)

	go func() {
		err := webApp.Start()
		if err != nil {
			panic(err)
		}
	}()
}

func shutdownApp(webApp WebApp, config app.Config, logger *slog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Debug("shutdown web app ...")

	ctx, cancel := context.WithTimeout(context.Background(), config.Web.ShutdownTimeout)
	defer cancel()

	err := webApp.Shutdown(ctx)
	if err != nil {
		panic(err)
	}

	logger.Debug("web app exited")
}

func newRevocationStore(config app.RedisConfig, logger *slog.Logger) (revocationStore, func() error) {
	if config.Addr == "" {
		logger.Warn("redis is not configured, revoked tokens are kept in memory")
		return revocation.NewMemoryStore(), func() error { return nil }
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})
	return revocation.NewRedisStore(client), client.Close
}

func newPublisher(config app.KafkaConfig, logger *slog.Logger) (eventPublisher, func() error) {
	if len(config.Addresses) == 0 {
		logger.Warn("kafka is not configured, rental events are only logged")
		return events.NewLogPublisher(logger), func() error { return nil }
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(config.Addresses...),
		Topic:                  config.Topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
	publisher := events.NewKafkaPublisher(writer, events.BreakerSettings{
		ConsecutiveFailures: config.BreakerFailures,
		Timeout:             config.BreakerTimeout,
	}, logger)

	return publisher, publisher.Close
}

func main() {
	var configPath, migrationsPath string
	pflag.StringVarP(&configPath, "config", "c", "configs/api.yaml", "Config file path")
	pflag.StringVarP(&migrationsPath, "migrations", "", "migrations", "Migrations directory path")
	pflag.Parse()

	_ = godotenv.Load()

	config, err := app.ReadLocalConfig(configPath)
	if err != nil {
		panic(err)
	}
	if err = config.RequireJWT(); err != nil {
		panic(err)
	}

	logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{Level: slog.Level(config.Logging.Level)}))

	db, err := sqlx.Connect(config.DB.DriverName, config.DB.ConnectionString)
	if err != nil {
		panic(err)
	}
	db.SetMaxOpenConns(config.DB.MaxOpenConns)

	err = migrations.Do(config.DB.ConnectionString, migrationsPath, logger)
	if err != nil {
		panic(err)
	}

	revocations, closeRevocations := newRevocationStore(config.Redis, logger)
	publisher, closePublisher := newPublisher(config.Kafka, logger)

	defer func() {
		err = multierr.Combine(closePublisher(), closeRevocations(), db.Close())
		if err != nil {
			logger.Error("failed to release resources", slog.String("error", err.Error()))
		}
	}()

	clk := clock.Real{}
	hasher := pkgHasher.NewBcryptHasher(config.JWT.BcryptCost)
	tokens := token.NewManager(config.JWT.Secret, config.JWT.Issuer, config.JWT.TTL)
	validator := validation.New()
	auth := app.NewAuth(tokens, revocations, logger)

	usersRepo := usersRepository.NewSqlxRepository(db, logger)
	carsRepo := carsRepository.NewSqlxRepository(db, logger)

	usersUC := usersUseCase.New(usersRepo, logger, hasher)
	authUC := authUseCase.New(
		usersRepo,
		authRepository.NewSqlxRepository(db, logger),
		tokens,
		revocations,
		hasher,
		clk,
		config.JWT.RefreshTTL,
		logger,
	)
	carsUC := carsUseCase.New(carsRepo, logger)
	rentalsUC := rentalsUseCase.New(
		rentalsRepository.NewSqlxRepository(db, logger),
		carsRepo,
		eventsRepository.NewSqlxRepository(db, logger),
		publisher,
		clk,
		logger,
	)

	deliveries := []app.Delivery{
		usersDelivery.New(usersUC, auth, validator, logger),
		authDelivery.New(authUC, auth, validator, logger),
		carsDelivery.New(carsUC, auth, validator, logger),
		rentalsDelivery.New(rentalsUC, auth, validator, logger),
	}

	webApp := app.NewFiberApp(config.Web, deliveries, []app.HealthChecker{publisher}, logger)

	startApp(webApp, config, logger)
	shutdownApp(webApp, config, logger)
}
