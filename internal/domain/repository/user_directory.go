package repository

import (
	"context"

	"github.com/sangkips/kasirpos/internal/domain/entity"
)

// UserDirectory validates operator identities. Two implementations
// exist, selected at construction time: an in-memory directory seeded
// with a fixed user list, and an HTTP directory that delegates to a
// remote identity backend.
type UserDirectory interface {
	// Authenticate validates credentials and returns the matching user,
	// or apperror.ErrInvalidCredentials. A directory backed by a remote
	// identity provider also returns the bearer token that provider
	// issued; the in-memory directory returns an empty token and the
	// caller mints one locally.
	Authenticate(ctx context.Context, username, password string) (*entity.User, string, error)

	// Verify re-validates a cached session. The in-memory directory
	// trusts the local cache and returns the cached profile; the HTTP
	// directory presents the token upstream and rejects it if the
	// backend does.
	Verify(ctx context.Context, token string, cached *entity.User) (*entity.User, error)

	// Logout notifies the backend that the token is retired. Failures
	// must not block local logout.
	Logout(ctx context.Context, token string) error
}
