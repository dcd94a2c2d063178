package ports

import (
	"context"

	"github.com/ninzizah/mount-kigali-grading-system/internal/core/domain"
)

// UpdateUserInput is the service-level partial update. Password, when set,
// is the plaintext credential to be hashed before storage.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Role     *string
	Password *string
}

type UserService interface {
	// Authenticate resolves (email, role, password) to a user. The admin role
	// is checked against the configured identity and never hits the store.
	Authenticate(ctx context.Context, email, role, password string) (*domain.User, error)
	Register(ctx context.Context, name, email, role, password string) (*domain.User, error)
	// ListUsers returns every persisted user; the admin identity is not
	// persisted and therefore never appears.
	ListUsers(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	Remove(ctx context.Context, id string) (bool, error)
}
