package repository

import (
	"context"

	"github.com/sangkips/kasirpos/internal/domain/entity"
)

// SessionRepository defines the interface for the local session cache,
// a token+profile store keyed by the opaque bearer token. Absence of a
// record forces re-authentication.
type SessionRepository interface {
	Save(ctx context.Context, record *entity.SessionRecord) error
	GetByToken(ctx context.Context, token string) (*entity.SessionRecord, error)
	DeleteByToken(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) error
}
