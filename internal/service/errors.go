package service

import "errors"

// Sentinel errors surfaced by the service layer. The handler layer maps these to
// HTTP status codes; nothing below it knows about HTTP.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrNotFound           = errors.New("not found")

	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")

	ErrCorruptDigest = errors.New("corrupt password digest")

	ErrStoreUnavailable = errors.New("store unavailable")
	ErrMisconfigured    = errors.New("auth config invalid")
)
