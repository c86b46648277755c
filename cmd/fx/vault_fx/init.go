package vault_fx

import (
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"wander/internal/repositories"
	"wander/internal/services"
	"wander/pkg/kvstore"
	"wander/pkg/utils"
)

// Passphrase used when VAULT_PASSPHRASE is not configured. Matches the key
// older deployments encrypted their vaults with.
const defaultVaultPassphrase = "agentic-wander-secret-key-2025"

var Module = fx.Provide(
	provideStore, provideCipher, provideVaultService)

func provideStore(db *gorm.DB, logger *zap.Logger) kvstore.Store {
	if db == nil {
		logger.Info("using in-memory trip vault store")
		return kvstore.NewMemoryStore()
	}
	return repositories.NewVaultRepository(db)
}

func provideCipher() (*utils.VaultCipher, error) {
	passphrase := os.Getenv("VAULT_PASSPHRASE")
	if passphrase == "" {
		passphrase = defaultVaultPassphrase
	}
	return utils.NewVaultCipher(passphrase)
}

func provideVaultService(store kvstore.Store, cipher *utils.VaultCipher, logger *zap.Logger) services.TripVaultServiceInterface {
	return services.NewTripVaultService(store, cipher, logger)
}
