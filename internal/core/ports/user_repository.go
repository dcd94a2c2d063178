package ports

import (
	"context"

	"github.com/ninzizah/mount-kigali-grading-system/internal/core/domain"
)

// UserUpdate carries a partial update. Nil fields are left unchanged; the
// record ID and creation timestamp are never updatable.
type UserUpdate struct {
	Name         *string
	Email        *string
	Role         *string
	PasswordHash *string
}

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// List returns all users except those with excludeRole, newest first.
	List(ctx context.Context, excludeRole string) ([]domain.User, error)
	FindByEmailAndRole(ctx context.Context, email, role string) (*domain.User, error)
	// Insert stores a new user. A duplicate email yields domain.ErrEmailTaken.
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateByID(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	// DeleteByID reports whether a record existed and was removed.
	DeleteByID(ctx context.Context, id string) (bool, error)
}
