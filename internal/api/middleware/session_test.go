package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/ninzizah/mount-kigali-grading-system/internal/core/domain"
)

type stubSessionStore struct {
	sessions map[string]*domain.Session
}

func (s *stubSessionStore) Create(_ context.Context, user *domain.User) (string, error) {
	return "", nil
}

func (s *stubSessionStore) Get(_ context.Context, token string) (*domain.Session, error) {
	sess, ok := s.sessions[token]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return sess, nil
}

func (s *stubSessionStore) Delete(_ context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}

func runSession(t *testing.T, store *stubSessionStore, authHeader string) (*httptest.ResponseRecorder, bool, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Session(store)
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called, c
}

func TestSession_MissingHeader(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]*domain.Session{}}
	rec, called, _ := runSession(t, store, "")
	if called {
		t.Fatalf("next handler should not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestSession_InvalidScheme(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]*domain.Session{}}
	rec, called, _ := runSession(t, store, "Basic abc123")
	if called {
		t.Fatalf("next handler should not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestSession_UnknownToken(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]*domain.Session{}}
	rec, called, _ := runSession(t, store, "Bearer nope")
	if called {
		t.Fatalf("next handler should not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestSession_InjectsIdentity(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]*domain.Session{
		"token123": {
			Token: "token123",
			User:  domain.User{ID: "u1", Name: "Alice", Email: "a@x.com", Role: domain.RoleLecturer},
		},
	}}

	rec, called, c := runSession(t, store, "Bearer token123")
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if role, _ := c.Get("role").(string); role != domain.RoleLecturer {
		t.Fatalf("role not injected, got %q", role)
	}
	if id, _ := c.Get("user_id").(string); id != "u1" {
		t.Fatalf("user_id not injected, got %q", id)
	}
	if token, _ := c.Get("session_token").(string); token != "token123" {
		t.Fatalf("session_token not injected, got %q", token)
	}
	user, ok := c.Get("user").(domain.User)
	if !ok || user.Email != "a@x.com" {
		t.Fatalf("user snapshot not injected: %+v", user)
	}
}
