package services

import "errors"

var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrArtistNotFound     = errors.New("artist not found")
	ErrServiceNotFound    = errors.New("service not found")
	ErrPasswordTooLong    = errors.New("password exceeds 72 bytes")
	ErrDuplicateID        = errors.New("id already in use")
)
