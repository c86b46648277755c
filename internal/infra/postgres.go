package infra

import (
	"os"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitPostgresql connects using POSTGRES_URL. The database is optional: with
// no URL configured the app runs on the in-memory vault store instead, so a
// nil return here is not an error.
func InitPostgresql(logger *zap.Logger) *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")
	if dsn == "" {
		logger.Info("POSTGRES_URL not set, running without a database")
		return nil
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Warn("database connection failed, falling back to in-memory storage", zap.Error(err))
		return nil
	}

	return db
}

func ClosePostgresql(db *gorm.DB, logger *zap.Logger) {
	if db == nil {
		return
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("failed to get database instance", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Warn("failed to close database connection", zap.Error(err))
	} else {
		logger.Info("database connection closed")
	}
}
