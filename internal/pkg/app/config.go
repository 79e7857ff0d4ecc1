package app

import (
	"log/slog"
	"time"

	"github.com/nil-go/konf"
	"github.com/nil-go/konf/provider/env"
	"github.com/nil-go/konf/provider/file"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	configRoot = "rentx"
	envPrefix  = "RENTX_"
)

type WebConfig struct {
	Host            string
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type DBConfig struct {
	DriverName       string
	ConnectionString string
	MaxOpenConns     int
}

type LoggingConfig struct {
	Level int
}

type JWTConfig struct {
	Secret     string
	Issuer     string
	TTL        time.Duration
	RefreshTTL time.Duration
	BcryptCost int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Addresses       []string
	Topic           string
	BreakerFailures uint32
	BreakerTimeout  time.Duration
}

type Config struct {
	Web     WebConfig
	DB      DBConfig
	Logging LoggingConfig
	JWT     JWTConfig
	Redis   RedisConfig
	Kafka   KafkaConfig
}

func defaultConfig() Config {
	return Config{
		Web: WebConfig{
			Host:            "0.0.0.0",
			Port:            "8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: time.Minute,
		},
		DB: DBConfig{
			DriverName:   "postgres",
			MaxOpenConns: 10,
		},
		Logging: LoggingConfig{Level: int(slog.LevelInfo)},
		JWT: JWTConfig{
			Issuer:     "rentx",
			TTL:        24 * time.Hour,
			RefreshTTL: 30 * 24 * time.Hour,
			BcryptCost: 8,
		},
		Kafka: KafkaConfig{
			Topic:           "rentals",
			BreakerFailures: 5,
			BreakerTimeout:  30 * time.Second,
		},
	}
}

// ReadLocalConfig reads the "rentx" section of the YAML file at path and applies
// RENTX_* environment overrides on top of it (e.g. RENTX_DB_CONNECTIONSTRING).
func ReadLocalConfig(path string) (Config, error) {
	loader := konf.New()

	if err := loader.Load(file.New(path, file.WithUnmarshal(yaml.Unmarshal))); err != nil {
		return Config{}, errors.Wrap(err, "load config file")
	}

	if err := loader.Load(env.New(env.WithPrefix(envPrefix))); err != nil {
		return Config{}, errors.Wrap(err, "load config env")
	}

	config := defaultConfig()
	if err := loader.Unmarshal(configRoot, &config); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config")
	}

	return config, nil
}

// RequireJWT fails when the config cannot sign access tokens.
func (c Config) RequireJWT() error {
	if c.JWT.Secret == "" {
		return errors.New("jwt secret is required")
	}
	return nil
}
