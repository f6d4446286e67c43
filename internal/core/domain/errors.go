package domain

import "errors"

var (
	ErrNotFound           = errors.New("record not found")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access forbidden")
)
