package core

import "errors"

// Identity errors
var (
	ErrDuplicateEmail     = errors.New("an account with this email already exists") // 409 Conflict
	ErrInvalidCredentials = errors.New("invalid email or password")                 // 401 Unauthorized
	ErrNotAuthenticated   = errors.New("not authenticated")                         // 401 Unauthorized
	ErrAccountNotFound    = errors.New("account not found")                         // 404 Not Found
)

// Storage errors
var (
	ErrKeyNotFound = errors.New("key not found")
)

// Config errors (server-side configuration)
var (
	ErrStoreRequired = errors.New("store is required") // 500
)
