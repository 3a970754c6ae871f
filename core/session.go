package core

import (
	"encoding/json"
	"fmt"
)

// persistSession writes the session snapshot and token under their keys.
// Called at login and again after every list mutation so the snapshot
// never drifts from the directory account.
func persistSession(store Store, session *Session) error {
	raw, err := json.Marshal(session.Account)
	if err != nil {
		return fmt.Errorf("failed to encode session snapshot: %w", err)
	}
	if err := store.Set(KeyCurrentUser, raw); err != nil {
		return fmt.Errorf("failed to persist session snapshot: %w", err)
	}
	if err := store.Set(KeyAuthToken, []byte(session.Token)); err != nil {
		return fmt.Errorf("failed to persist auth token: %w", err)
	}
	return nil
}

// restoreSession rebuilds a session from storage at startup.
//
// Both the snapshot and the token must be present and the snapshot must
// parse; anything less means the initial state is anonymous. The token is
// opaque and checked for presence only.
func restoreSession(store Store) *Session {
	rawAccount, err := store.Get(KeyCurrentUser)
	if err != nil || len(rawAccount) == 0 {
		return nil
	}

	rawToken, err := store.Get(KeyAuthToken)
	if err != nil || len(rawToken) == 0 {
		return nil
	}

	account := &Account{}
	if err := json.Unmarshal(rawAccount, account); err != nil {
		return nil
	}

	return &Session{Account: account, Token: string(rawToken)}
}

// clearSession removes both session entries. Deleting absent keys is a
// no-op, which keeps logout idempotent.
func clearSession(store Store) error {
	if err := store.Delete(KeyAuthToken); err != nil {
		return fmt.Errorf("failed to clear auth token: %w", err)
	}
	if err := store.Delete(KeyCurrentUser); err != nil {
		return fmt.Errorf("failed to clear session snapshot: %w", err)
	}
	return nil
}
