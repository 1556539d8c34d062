package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/tastetrek/taste-trek-api/internal/domain"
	"github.com/tastetrek/taste-trek-api/internal/repository/memory"
	"github.com/tastetrek/taste-trek-api/internal/repository/ports"
)

func newTestAuth(t *testing.T) (*AuthService, ports.Storage, ports.SessionRepository) {
	t.Helper()
	store := memory.NewStore()
	sessions := memory.NewSessionRepo()

	svc, err := NewAuthService(context.Background(), AuthConfig{
		SessionSecret: "test-secret",
		SessionTTL:    time.Hour,
	}, store, sessions)
	if err != nil {
		t.Fatalf("NewAuthService returned error: %v", err)
	}
	return svc, store, sessions
}

func openSession(t *testing.T, store ports.Storage, sessions ports.SessionRepository, accessExpiresAt time.Time) (string, *domain.User) {
	t.Helper()
	ctx := context.Background()

	user, err := store.UpsertUser(ctx, domain.User{ID: "sub-1", Email: "trek@example.com"})
	if err != nil {
		t.Fatalf("UpsertUser returned error: %v", err)
	}

	token := uuid.NewString()
	err = sessions.Create(ctx, &domain.Session{
		Token:           token,
		UserID:          user.ID,
		AccessToken:     "access",
		AccessExpiresAt: accessExpiresAt,
		ExpiresAt:       time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("Create session returned error: %v", err)
	}
	return token, user
}

func TestAuthService_DisabledWithoutProvider(t *testing.T) {
	svc, _, _ := newTestAuth(t)

	if svc.Enabled() {
		t.Fatalf("expected provider flow disabled without issuer")
	}
	if _, err := svc.LoginURL("example.com"); !errors.Is(err, ErrAuthDisabled) {
		t.Fatalf("expected ErrAuthDisabled, got %v", err)
	}
	if url := svc.LogoutURL("example.com"); url != "/" {
		t.Fatalf("expected local logout redirect, got %s", url)
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	svc, store, sessions := newTestAuth(t)
	token, want := openSession(t, store, sessions, time.Now().Add(time.Hour))

	user, err := svc.Authenticate(context.Background(), token)
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if user.ID != want.ID {
		t.Fatalf("expected user %s, got %s", want.ID, user.ID)
	}
}

func TestAuthService_Authenticate_EmptyToken(t *testing.T) {
	svc, _, _ := newTestAuth(t)

	if _, err := svc.Authenticate(context.Background(), ""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthService_Authenticate_UnknownToken(t *testing.T) {
	svc, _, _ := newTestAuth(t)

	if _, err := svc.Authenticate(context.Background(), "missing"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthService_Authenticate_ExpiredAccessWithoutProvider(t *testing.T) {
	svc, store, sessions := newTestAuth(t)
	token, _ := openSession(t, store, sessions, time.Now().Add(-time.Minute))

	// Refresh needs the provider, so an expired access token ends the
	// session when none is configured.
	if _, err := svc.Authenticate(context.Background(), token); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	svc, store, sessions := newTestAuth(t)
	token, _ := openSession(t, store, sessions, time.Now().Add(time.Hour))
	ctx := context.Background()

	if err := svc.Logout(ctx, token); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if _, err := svc.Authenticate(ctx, token); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected session gone after logout, got %v", err)
	}
	if err := svc.Logout(ctx, token); err != nil {
		t.Fatalf("expected repeated logout to succeed, got %v", err)
	}
	if err := svc.Logout(ctx, ""); err != nil {
		t.Fatalf("expected blank-token logout to succeed, got %v", err)
	}
}
