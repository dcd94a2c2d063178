package service

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/rs/zerolog"

	"github.com/ninzizah/mount-kigali-grading-system/internal/core/domain"
	"github.com/ninzizah/mount-kigali-grading-system/internal/core/ports"
)

var testAdmin = AdminIdentity{Email: "Admin", Password: "1212"}

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by id
	nextID int
	calls  int // store round trips, to prove the admin path never hits it
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) List(_ context.Context, excludeRole string) ([]domain.User, error) {
	r.calls++
	var out []domain.User
	for _, u := range r.users {
		if u.Role != excludeRole {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubUserRepo) FindByEmailAndRole(_ context.Context, email, role string) (*domain.User, error) {
	r.calls++
	for _, u := range r.users {
		if u.Email == email && u.Role == role {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	r.calls++
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("id-%d", r.nextID)
	r.users[created.ID] = cloneUser(created)
	return cloneUser(created), nil
}

func (r *stubUserRepo) UpdateByID(_ context.Context, id string, update ports.UserUpdate) (*domain.User, error) {
	r.calls++
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.Email != nil {
		u.Email = *update.Email
	}
	if update.Role != nil {
		u.Role = *update.Role
	}
	if update.PasswordHash != nil {
		u.PasswordHash = *update.PasswordHash
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) DeleteByID(_ context.Context, id string) (bool, error) {
	r.calls++
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

func newTestService(repo ports.UserRepository) *UserService {
	return NewUserService(repo, testAdmin, zerolog.Nop())
}

func TestUserService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(repo)

	user, err := svc.Register(context.Background(), "Alice", "a@x.com", domain.RoleStudent, "secret12")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if user.PasswordHash == "secret12" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret12")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleStudent {
		t.Fatalf("unexpected role: %s", user.Role)
	}
	if user.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}
}

func TestUserService_Register_RejectsAdminRole(t *testing.T) {
	svc := newTestService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), "Eve", "e@x.com", domain.RoleAdmin, "pass1234"); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "Eve", "e@x.com", "dean", "pass1234"); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole for unknown role, got %v", err)
	}
}

func TestUserService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(repo)

	if _, err := svc.Register(context.Background(), "Bob", "bob@x.com", domain.RoleLecturer, "pass1234"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "Bobby", "bob@x.com", domain.RoleStudent, "other123"); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	users, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("store changed by failed insert: %d users", len(users))
	}
}

func TestUserService_Authenticate_AdminNeverTouchesStore(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(repo)

	user, err := svc.Authenticate(context.Background(), "Admin", domain.RoleAdmin, "1212")
	if err != nil {
		t.Fatalf("admin login failed: %v", err)
	}
	if user.Role != domain.RoleAdmin || user.Email != "Admin" {
		t.Fatalf("unexpected admin identity: %+v", user)
	}
	if repo.calls != 0 {
		t.Fatalf("admin authentication hit the store %d times", repo.calls)
	}

	if _, err := svc.Authenticate(context.Background(), "Admin", domain.RoleAdmin, "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "other", domain.RoleAdmin, "1212"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown admin email, got %v", err)
	}
	if repo.calls != 0 {
		t.Fatalf("failed admin authentication hit the store %d times", repo.calls)
	}
}

func TestUserService_Authenticate_StoredUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(repo)

	created, err := svc.Register(context.Background(), "Alice", "a@x.com", domain.RoleStudent, "secret12")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, err := svc.Authenticate(context.Background(), "a@x.com", domain.RoleStudent, "secret12")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.ID != created.ID {
		t.Fatalf("unexpected user: %+v", user)
	}

	// Role mismatch must be indistinguishable from a wrong password.
	if _, err := svc.Authenticate(context.Background(), "a@x.com", domain.RoleLecturer, "secret12"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials on role mismatch, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "a@x.com", domain.RoleStudent, "badpass1"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials on wrong password, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "ghost@x.com", domain.RoleStudent, "secret12"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestUserService_ListUsers_ExcludesAdminNewestFirst(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(repo)

	first, _ := svc.Register(context.Background(), "Alice", "a@x.com", domain.RoleStudent, "secret12")
	repo.users[first.ID].CreatedAt = time.Now().UTC().Add(-time.Hour)
	second, _ := svc.Register(context.Background(), "Bob", "b@x.com", domain.RoleLecturer, "secret12")

	users, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].ID != second.ID || users[1].ID != first.ID {
		t.Fatalf("expected newest first, got %s then %s", users[0].ID, users[1].ID)
	}
	for _, u := range users {
		if u.Role == domain.RoleAdmin {
			t.Fatalf("admin leaked into user list")
		}
	}
}

func TestUserService_Update_PartialFields(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(repo)

	created, _ := svc.Register(context.Background(), "Alice", "a@x.com", domain.RoleStudent, "secret12")

	name := "X"
	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateUserInput{Name: &name})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "X" {
		t.Fatalf("name not updated: %s", updated.Name)
	}
	if updated.ID != created.ID || !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("immutable fields changed: %+v", updated)
	}
	if updated.Email != "a@x.com" || updated.Role != domain.RoleStudent {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestUserService_Update_RehashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(repo)

	created, _ := svc.Register(context.Background(), "Alice", "a@x.com", domain.RoleStudent, "secret12")

	password := "newpass99"
	if _, err := svc.Update(context.Background(), created.ID, ports.UpdateUserInput{Password: &password}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if _, err := svc.Authenticate(context.Background(), "a@x.com", domain.RoleStudent, "newpass99"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "a@x.com", domain.RoleStudent, "secret12"); err != domain.ErrInvalidCredentials {
		t.Fatalf("old password still accepted")
	}
}

func TestUserService_Update_RejectsAdminRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(repo)

	created, _ := svc.Register(context.Background(), "Alice", "a@x.com", domain.RoleStudent, "secret12")

	role := domain.RoleAdmin
	if _, err := svc.Update(context.Background(), created.ID, ports.UpdateUserInput{Role: &role}); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_Remove_Idempotence(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(repo)

	created, _ := svc.Register(context.Background(), "Alice", "a@x.com", domain.RoleStudent, "secret12")

	removed, err := svc.Remove(context.Background(), created.ID)
	if err != nil || !removed {
		t.Fatalf("expected removal, got %v %v", removed, err)
	}

	if _, err := svc.Authenticate(context.Background(), "a@x.com", domain.RoleStudent, "secret12"); err != domain.ErrInvalidCredentials {
		t.Fatalf("removed user still authenticates")
	}

	removed, err = svc.Remove(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("second remove errored: %v", err)
	}
	if removed {
		t.Fatalf("second remove reported true")
	}
}
