package cmd

import (
	"github.com/amanahq/amana-backend/infra"
	"github.com/amanahq/amana-backend/repositories"
	"github.com/amanahq/amana-backend/utils"
)

func RunMigrations() error {
	pgConfig := infra.PgConfig{
		ConnectionString: utils.GetEnv("PG_CONNECTION_STRING", ""),
		Database:         "amana",
		Hostname:         utils.GetEnv("PG_HOSTNAME", ""),
		Password:         utils.GetEnv("PG_PASSWORD", ""),
		Port:             utils.GetEnv("PG_PORT", "5432"),
		User:             utils.GetEnv("PG_USER", ""),
		SslMode:          utils.GetEnv("PG_SSL_MODE", "prefer"),
	}
	logger := utils.NewLogger(utils.GetEnv("LOGGING_FORMAT", "text"))

	return repositories.RunMigrations(pgConfig, logger)
}
