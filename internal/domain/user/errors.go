package user

import "errors"

var (
	ErrInvalidToken    = errors.New("invalid token")
	ErrUnauthenticated = errors.New("authentication required")
	ErrInvalidRole     = errors.New("invalid role")
)
