package core

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/marquee-app/marquee/pkg/crypto"
)

// Identity owns the account directory and the current session. It is the
// only component that touches the three storage keys; callers interact
// through the operations below and the Current/LoggedIn state.
//
// Every mutation is a full read-modify-write cycle over the directory blob.
// Operations are serialized with a mutex; concurrent writers to the same
// store from other processes are last-write-wins.
type Identity struct {
	mu        sync.RWMutex
	store     Store
	passwords crypto.PasswordHandler

	session *Session // nil while anonymous
}

// NewIdentity builds an identity service over the given store and attempts
// to restore a persisted session. A missing or partial session (either key
// absent, or an unparseable snapshot) means the initial state is anonymous.
func NewIdentity(store Store, passwords crypto.PasswordHandler) *Identity {
	return &Identity{
		store:     store,
		passwords: passwords,
		session:   restoreSession(store),
	}
}

// newAccountID returns a fresh opaque account ID. The millisecond prefix
// keeps IDs monotonically distinguishing; the uuid suffix breaks ties.
func newAccountID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.New().String())
}

// Register creates a new account with an empty watch list and appends it to
// the directory. Emails are unique (case-sensitive) across the directory;
// a duplicate registration fails with ErrDuplicateEmail.
//
// Register does not establish a session.
func (i *Identity) Register(name, email, password string) (*Account, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	accounts, err := loadDirectory(i.store)
	if err != nil {
		return nil, err
	}

	for _, existing := range accounts {
		if existing.Email == email {
			return nil, ErrDuplicateEmail
		}
	}

	hash, err := i.passwords.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &Account{
		ID:           newAccountID(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		MyList:       []string{},
		CreatedAt:    time.Now().UTC(),
	}

	accounts = append(accounts, account)
	if err := saveDirectory(i.store, accounts); err != nil {
		return nil, err
	}

	return account.Clone(), nil
}

// Login authenticates by exact email match plus password verification and
// establishes the session. Unknown email and wrong password both fail with
// ErrInvalidCredentials so the caller learns nothing about which was wrong.
func (i *Identity) Login(email, password string) (*Account, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	accounts, err := loadDirectory(i.store)
	if err != nil {
		return nil, err
	}

	var found *Account
	for _, account := range accounts {
		if account.Email == email {
			found = account
			break
		}
	}
	if found == nil {
		return nil, ErrInvalidCredentials
	}

	valid, err := i.passwords.Verify(password, found.PasswordHash)
	if err != nil || !valid {
		return nil, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	session := &Session{Account: found.Clone(), Token: token}
	if err := persistSession(i.store, session); err != nil {
		return nil, err
	}

	i.session = session
	return found.Clone(), nil
}

// Logout clears both session entries and resets the in-memory state.
// Calling it while already anonymous is a no-op.
func (i *Identity) Logout() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if err := clearSession(i.store); err != nil {
		return err
	}
	i.session = nil
	return nil
}

// AddToList appends contentID to the authenticated account's watch list if
// it is not already present. Order is preserved and duplicates never occur.
func (i *Identity) AddToList(contentID string) error {
	return i.mutateList(func(list []string) []string {
		for _, id := range list {
			if id == contentID {
				return list
			}
		}
		return append(list, contentID)
	})
}

// RemoveFromList filters contentID out of the watch list. Removing an
// absent entry is a no-op.
func (i *Identity) RemoveFromList(contentID string) error {
	return i.mutateList(func(list []string) []string {
		filtered := list[:0]
		for _, id := range list {
			if id != contentID {
				filtered = append(filtered, id)
			}
		}
		return filtered
	})
}

// mutateList runs one read-modify-write cycle against the session account's
// directory entry, then re-persists the session snapshot so it matches the
// directory again.
func (i *Identity) mutateList(mutate func([]string) []string) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.session == nil {
		return ErrNotAuthenticated
	}

	accounts, err := loadDirectory(i.store)
	if err != nil {
		return err
	}

	var found *Account
	for _, account := range accounts {
		if account.ID == i.session.Account.ID {
			found = account
			break
		}
	}
	if found == nil {
		// Storage was cleared or tampered with behind the session's back.
		// State stays untouched.
		return ErrAccountNotFound
	}

	found.MyList = mutate(found.MyList)

	if err := saveDirectory(i.store, accounts); err != nil {
		return err
	}

	session := &Session{Account: found.Clone(), Token: i.session.Token}
	if err := persistSession(i.store, session); err != nil {
		return err
	}

	i.session = session
	return nil
}

// IsInList reports whether contentID is on the current account's watch
// list. It is false, not an error, while anonymous.
func (i *Identity) IsInList(contentID string) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if i.session == nil {
		return false
	}
	for _, id := range i.session.Account.MyList {
		if id == contentID {
			return true
		}
	}
	return false
}

// Current returns a copy of the authenticated account, or nil while
// anonymous.
func (i *Identity) Current() *Account {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if i.session == nil {
		return nil
	}
	return i.session.Account.Clone()
}

// LoggedIn reports whether a session is active.
func (i *Identity) LoggedIn() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.session != nil
}

// Token returns the current session's opaque token, or "" while anonymous.
func (i *Identity) Token() string {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if i.session == nil {
		return ""
	}
	return i.session.Token
}
