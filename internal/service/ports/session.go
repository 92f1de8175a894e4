package ports

import (
	"context"

	"github.com/rachmurali02/social-app/internal/domain"
)

// SessionStore holds ephemeral negotiation sessions. Upsert merges only the
// fields set in the patch and creates the session when it is missing.
type SessionStore interface {
	Create(ctx context.Context, s *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Upsert(ctx context.Context, id string, patch domain.SessionPatch) (*domain.Session, error)
	DeleteExpired(ctx context.Context) (int, error)
}
