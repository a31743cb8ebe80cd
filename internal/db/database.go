package db

import (
	"fmt"

	"github.com/ikkim/dinehub-backend/config"
	appLogger "github.com/ikkim/dinehub-backend/pkg/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Initialize opens the postgres connection pool.
func Initialize(cfg *config.DatabaseConfig) error {
	appLogger.Info("Connecting to database", map[string]interface{}{
		"host":     cfg.Host,
		"port":     cfg.Port,
		"database": cfg.DBName,
		"user":     cfg.User,
	})

	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), newGormConfig())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	appLogger.Info("Database connection established successfully", map[string]interface{}{
		"max_idle_conns":    cfg.MaxIdleConns,
		"max_open_conns":    cfg.MaxOpenConns,
		"conn_max_lifetime": cfg.ConnMaxLifetime.String(),
	})
	return nil
}

// newGormConfig is shared by the server and the test database. Driver errors
// are translated so unique violations surface as gorm.ErrDuplicatedKey.
func newGormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	}
}

func Close() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func GetDB() *gorm.DB {
	return DB
}
