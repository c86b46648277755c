package db_models

// VaultEntry is one key/value row of the trip vault. The value is stored
// exactly as the vault service produced it, encrypted or not.
type VaultEntry struct {
	BaseModel
	Key   string `gorm:"uniqueIndex;column:vault_key"`
	Value string `gorm:"type:text;column:vault_value"`
}

func (VaultEntry) TableName() string {
	return "vault_entries"
}
