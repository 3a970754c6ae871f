package core

import "time"

// Account represents a registered viewer.
//
// This is the "identity" - who someone is, plus the watch list they own.
type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash,omitempty"`
	MyList       []string  `json:"myList"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Clone returns a deep copy of the account.
//
// The session keeps a denormalized snapshot rather than a live reference,
// so every hand-off across the directory boundary copies.
func (a *Account) Clone() *Account {
	if a == nil {
		return nil
	}
	dup := *a
	dup.MyList = make([]string, len(a.MyList))
	copy(dup.MyList, a.MyList)
	return &dup
}

// Redacted returns a copy safe to serialize towards clients.
// The password hash never leaves the server.
func (a *Account) Redacted() *Account {
	dup := a.Clone()
	if dup != nil {
		dup.PasswordHash = ""
	}
	return dup
}

// Session represents the currently authenticated account: a denormalized
// Account snapshot plus the opaque token handed out at login.
type Session struct {
	Account *Account `json:"account"`
	Token   string   `json:"-"` // Never expose in JSON
}

// SessionData is the session view returned to clients.
type SessionData struct {
	Account  *Account `json:"account"`
	LoggedIn bool     `json:"loggedIn"`
}
