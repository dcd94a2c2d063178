package service

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ninzizah/mount-kigali-grading-system/internal/api/metrics"
	"github.com/ninzizah/mount-kigali-grading-system/internal/core/domain"
	"github.com/ninzizah/mount-kigali-grading-system/internal/core/ports"
)

// AdminIdentity is the single out-of-band admin credential pair. It is never
// written to the store.
type AdminIdentity struct {
	Email    string
	Password string
}

// UserService implements account management and authentication lookups over
// the user repository, owning the admin special case.
type UserService struct {
	repo   ports.UserRepository
	admin  AdminIdentity
	logger zerolog.Logger

	adminUser domain.User
}

func NewUserService(repo ports.UserRepository, admin AdminIdentity, logger zerolog.Logger) *UserService {
	return &UserService{
		repo:   repo,
		admin:  admin,
		logger: logger,
		adminUser: domain.User{
			ID:        "admin",
			Name:      "Admin",
			Email:     admin.Email,
			Role:      domain.RoleAdmin,
			CreatedAt: time.Now().UTC(),
		},
	}
}

// Authenticate resolves (email, role, password) to a user. Every failure mode
// collapses into ErrInvalidCredentials so callers cannot enumerate accounts.
func (s *UserService) Authenticate(ctx context.Context, email, role, password string) (*domain.User, error) {
	if role == domain.RoleAdmin {
		if email == s.admin.Email && constantTimeEqual(password, s.admin.Password) {
			metrics.LoginsTotal.WithLabelValues(role, "success").Inc()
			u := s.adminUser
			return &u, nil
		}
		metrics.LoginsTotal.WithLabelValues(role, "failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmailAndRole(ctx, email, role)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(role, "failure").Inc()
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues(role, "failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	metrics.LoginsTotal.WithLabelValues(role, "success").Inc()
	return user, nil
}

func (s *UserService) Register(ctx context.Context, name, email, role, password string) (*domain.User, error) {
	if !domain.PersistableRole(role) {
		return nil, domain.ErrInvalidRole
	}
	if name == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.UsersCreatedTotal.WithLabelValues(role).Inc()
	s.logger.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user registered")
	return created, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx, domain.RoleAdmin)
}

func (s *UserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	if input.Role != nil && !domain.PersistableRole(*input.Role) {
		return nil, domain.ErrInvalidRole
	}

	update := ports.UserUpdate{
		Name:  input.Name,
		Email: input.Email,
		Role:  input.Role,
	}
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashed := string(hash)
		update.PasswordHash = &hashed
	}

	updated, err := s.repo.UpdateByID(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", id).Msg("user updated")
	return updated, nil
}

func (s *UserService) Remove(ctx context.Context, id string) (bool, error) {
	removed, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return false, err
	}
	if removed {
		s.logger.Info().Str("user_id", id).Msg("user deleted")
	}
	return removed, nil
}

func constantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
