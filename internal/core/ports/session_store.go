package ports

import (
	"context"

	"github.com/ninzizah/mount-kigali-grading-system/internal/core/domain"
)

// SessionStore is the server-side session table. Tokens are opaque; a
// missing or expired token yields domain.ErrSessionNotFound.
type SessionStore interface {
	Create(ctx context.Context, user *domain.User) (string, error)
	Get(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
}
