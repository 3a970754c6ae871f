// Package marquee wires the identity module of the movie browser: account
// directory, session lifecycle and watch-list membership over a pluggable
// key-value store.
package marquee

import (
	"github.com/marquee-app/marquee/core"
	"github.com/marquee-app/marquee/pkg/crypto"
)

// interfaces
type (
	Store = core.Store

	PasswordHandler = crypto.PasswordHandler
)

// structs
type (
	Identity = core.Identity

	Account     = core.Account
	Session     = core.Session
	SessionData = core.SessionData
)

// Storage keys
const (
	KeyUsers       = core.KeyUsers
	KeyCurrentUser = core.KeyCurrentUser
	KeyAuthToken   = core.KeyAuthToken
)

// Constructors & helpers (convenience re-exports)
var (
	NewArgon2 = crypto.NewArgon2
)

var (
	ErrDuplicateEmail     = core.ErrDuplicateEmail
	ErrInvalidCredentials = core.ErrInvalidCredentials
	ErrNotAuthenticated   = core.ErrNotAuthenticated
	ErrAccountNotFound    = core.ErrAccountNotFound
)

var (
	ErrKeyNotFound   = core.ErrKeyNotFound
	ErrStoreRequired = core.ErrStoreRequired
)

type Config struct {
	Store Store

	// Optional config
	PasswordHasher PasswordHandler
}

// New builds the identity module over the configured store, restoring any
// persisted session. The password hasher defaults to argon2id.
func New(config Config) (*Identity, error) {
	if config.Store == nil {
		return nil, ErrStoreRequired
	}

	passwordHasher := config.PasswordHasher
	if passwordHasher == nil {
		passwordHasher = crypto.NewArgon2()
	}

	return core.NewIdentity(config.Store, passwordHasher), nil
}
