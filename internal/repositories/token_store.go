package repository

import (
	"context"
	"errors"
)

// TokenStore holds one-time confirmation and password-reset codes. Codes
// expire on their own after the store's TTL; application code never checks
// timestamps.
type TokenStore interface {
	// Save associates a code with a user for the TTL window.
	Save(ctx context.Context, code, userID string) error

	// Peek returns the user a code belongs to without consuming it.
	Peek(ctx context.Context, code string) (string, error)

	// Consume returns the user a code belongs to and invalidates the code.
	Consume(ctx context.Context, code string) (string, error)
}

var ErrTokenNotFound = errors.New("token not found or expired")
