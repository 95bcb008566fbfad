package domain

import "errors"

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrSecretNotFound   = errors.New("secret not found")
)
