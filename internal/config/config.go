package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	envconfig "github.com/you-humble/material-catalog/internal/config/env"
)

var cfg *config

type config struct {
	Server    Server
	Logger    Logger
	Mongo     Database
	ImageHost ImageHost
	Staging   Staging
	CORS      CORS
	Kafka     Kafka
}

func Load(path ...string) error {
	const op = "config.Load"

	if shouldLoadDotenv() {
		if err := godotenv.Load(path...); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: load .env: %w", op, err)
		}
	}

	serverCfg, err := envconfig.NewHTTPServerConfig()
	if err != nil {
		return fmt.Errorf("%s Server: %w", op, err)
	}

	loggerCfg, err := envconfig.NewLoggerConfig()
	if err != nil {
		return fmt.Errorf("%s Logger: %w", op, err)
	}

	mongoCfg, err := envconfig.NewMongoConfig()
	if err != nil {
		return fmt.Errorf("%s Mongo: %w", op, err)
	}

	imgbbCfg, err := envconfig.NewImgbbConfig()
	if err != nil {
		return fmt.Errorf("%s ImageHost: %w", op, err)
	}

	stagingCfg, err := envconfig.NewStagingConfig()
	if err != nil {
		return fmt.Errorf("%s Staging: %w", op, err)
	}

	corsCfg, err := envconfig.NewCORSConfig()
	if err != nil {
		return fmt.Errorf("%s CORS: %w", op, err)
	}

	kafkaCfg, err := envconfig.NewKafkaConfig()
	if err != nil {
		return fmt.Errorf("%s Kafka: %w", op, err)
	}

	cfg = &config{
		Server:    serverCfg,
		Logger:    loggerCfg,
		Mongo:     mongoCfg,
		ImageHost: imgbbCfg,
		Staging:   stagingCfg,
		CORS:      corsCfg,
		Kafka:     kafkaCfg,
	}

	return nil
}

func C() *config { return cfg }

// .env files are only read outside deployed environments.
func shouldLoadDotenv() bool {
	appEnv := os.Getenv("APP_ENV")
	return appEnv == "" || appEnv == "local"
}
