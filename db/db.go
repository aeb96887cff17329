// db/db.go
package db

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/staffledger/api/config"
	logger "github.com/staffledger/api/logging"
	"github.com/staffledger/api/model"
)

// InitPostgres opens the primary store connection pool and verifies it.
func InitPostgres(cfg config.DatabaseConfiguration) (*gorm.DB, error) {
	logger.Info("Connecting to primary store")

	gormDB, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open primary store: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access primary store pool: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to primary store: %w", err)
	}

	if cfg.AutoMigrate {
		if err := Migrate(gormDB); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	}

	logger.Info("Successfully connected to primary store")
	return gormDB, nil
}

// Migrate creates or updates the employees table. Safe to run on every startup.
func Migrate(gormDB *gorm.DB) error {
	if err := gormDB.AutoMigrate(&model.Employee{}); err != nil {
		return fmt.Errorf("failed to migrate employees table: %w", err)
	}
	return nil
}

func ClosePostgres(gormDB *gorm.DB) {
	if gormDB == nil {
		return
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Error("Error accessing primary store pool", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing primary store connection", zap.Error(err))
	} else {
		logger.Info("Primary store connection closed successfully")
	}
}
