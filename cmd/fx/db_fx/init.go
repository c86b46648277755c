package db_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"wander/internal/infra"
	"wander/internal/models/db_models"
)

var Module = fx.Provide(provideDB)

func provideDB(logger *zap.Logger) *gorm.DB {
	db := infra.InitPostgresql(logger)
	if db == nil {
		return nil
	}

	if err := db.AutoMigrate(&db_models.Account{}, &db_models.VaultEntry{}); err != nil {
		logger.Warn("auto migration failed", zap.Error(err))
	}
	return db
}
