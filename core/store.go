package core

import (
	"encoding/json"
	"fmt"
)

// Storage keys. All identity state lives under exactly three keys so a
// store can be anything from a map to a kv table.
const (
	KeyUsers       = "users"        // serialized account directory
	KeyCurrentUser = "current_user" // serialized session snapshot
	KeyAuthToken   = "auth_token"   // opaque token, raw bytes
)

// Store is the persistence port for the identity module.
//
// Get returns ErrKeyNotFound for absent keys. Delete of an absent key is a
// no-op, not an error.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// loadDirectory reads the full account directory blob.
// A store that has never seen a registration yields an empty directory.
func loadDirectory(store Store) ([]*Account, error) {
	raw, err := store.Get(KeyUsers)
	if err != nil {
		if err == ErrKeyNotFound {
			return []*Account{}, nil
		}
		return nil, fmt.Errorf("failed to load directory: %w", err)
	}

	var accounts []*Account
	if err := json.Unmarshal(raw, &accounts); err != nil {
		return nil, fmt.Errorf("failed to decode directory: %w", err)
	}
	return accounts, nil
}

// saveDirectory writes the full account directory blob back.
func saveDirectory(store Store, accounts []*Account) error {
	raw, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("failed to encode directory: %w", err)
	}
	if err := store.Set(KeyUsers, raw); err != nil {
		return fmt.Errorf("failed to persist directory: %w", err)
	}
	return nil
}
