package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"wander/internal/models/db_models"
	"wander/pkg/kvstore"
)

// vaultRepository is the gorm-backed kvstore.Store. Each key maps to one
// row; Set upserts in place.
type vaultRepository struct {
	db *gorm.DB
}

func NewVaultRepository(db *gorm.DB) kvstore.Store {
	return &vaultRepository{
		db: db,
	}
}

func (v *vaultRepository) Get(ctx context.Context, key string) (string, error) {
	var entry db_models.VaultEntry
	err := v.db.WithContext(ctx).First(&entry, "vault_key = ?", key).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", kvstore.ErrKeyNotFound
		}
		return "", err
	}

	return entry.Value, nil
}

func (v *vaultRepository) Set(ctx context.Context, key string, value string) error {
	var entry db_models.VaultEntry
	err := v.db.WithContext(ctx).First(&entry, "vault_key = ?", key).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return v.db.WithContext(ctx).Create(&db_models.VaultEntry{
				Key:   key,
				Value: value,
			}).Error
		}
		return err
	}

	entry.Value = value
	return v.db.WithContext(ctx).Save(&entry).Error
}

func (v *vaultRepository) Delete(ctx context.Context, key string) error {
	return v.db.WithContext(ctx).
		Where("vault_key = ?", key).
		Delete(&db_models.VaultEntry{}).Error
}

func (v *vaultRepository) Clear(ctx context.Context) error {
	return v.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&db_models.VaultEntry{}).Error
}
