package database

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type ConnectorConfig struct {
	Host     string
	Username string
	DbName   string
	Password string
	SslMode  string
}

func LoadConfigFromEnv(ctx context.Context) ConnectorConfig {
	return ConnectorConfig{
		Host:     env.GetVariableOrDefault(ctx, "POSTGRES_HOST", ""),
		Username: env.GetVariableOrDefault(ctx, "POSTGRES_USER", ""),
		DbName:   env.GetVariableOrDefault(ctx, "POSTGRES_DBNAME", "plantpulse"),
		Password: env.GetVariableOrDefault(ctx, "POSTGRES_PASSWORD", ""),
		SslMode:  env.GetVariableOrDefault(ctx, "POSTGRES_SSLMODE", "disable"),
	}
}

type ConnectorFunc func() (*gorm.DB, error)

func NewSQLiteConnector(ctx context.Context) ConnectorFunc {
	return func() (*gorm.DB, error) {
		db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})

		if err == nil {
			db.Exec("PRAGMA foreign_keys = ON")
			sqldb, _ := db.DB()
			sqldb.SetMaxOpenConns(1)
		}

		return db, err
	}
}

func NewPostgreSQLConnector(ctx context.Context, cfg ConnectorConfig) ConnectorFunc {
	dbURI := fmt.Sprintf("host=%s user=%s dbname=%s sslmode=%s password=%s", cfg.Host, cfg.Username, cfg.DbName, cfg.SslMode, cfg.Password)

	log := logging.GetFromContext(ctx)

	return func() (*gorm.DB, error) {
		sublogger := log.With(
			slog.String("host", cfg.Host),
			slog.String("database", cfg.DbName),
		)

		var db *gorm.DB
		var err error

		for attempt := 0; attempt < 5; attempt++ {
			sublogger.Info("connecting to database host")

			db, err = gorm.Open(postgres.Open(dbURI), &gorm.Config{
				Logger: logger.New(
					&logadapter{logger: sublogger},
					logger.Config{
						SlowThreshold:             time.Second,
						LogLevel:                  logger.Warn,
						IgnoreRecordNotFoundError: true,
						Colorful:                  false,
					},
				),
			})
			if err == nil {
				return db, nil
			}

			sublogger.Error("failed to connect to database", "err", err.Error())
			time.Sleep(3 * time.Second)
		}

		return nil, err
	}
}

// logadapter provides a Printf interface to the gorm logger
// so that we can forward the log data to slog
type logadapter struct {
	logger *slog.Logger
}

func (adapter *logadapter) Printf(format string, args ...interface{}) {
	adapter.logger.Info(fmt.Sprintf(format, args...))
}
