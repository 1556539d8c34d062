package memory

import (
	"context"
	"sync"
	"time"

	"github.com/tastetrek/taste-trek-api/internal/domain"
	"github.com/tastetrek/taste-trek-api/internal/repository/ports"
)

type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

func NewSessionRepo() *SessionRepository {
	return &SessionRepository{sessions: make(map[string]domain.Session)}
}

func (r *SessionRepository) Create(ctx context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}
	r.sessions[session.Token] = *session
	return nil
}

func (r *SessionRepository) Find(ctx context.Context, token string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[token]
	if !ok || s.Expired(time.Now()) {
		return nil, nil
	}
	return &s, nil
}

func (r *SessionRepository) UpdateTokens(ctx context.Context, token, accessToken, refreshToken string, accessExpiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[token]
	if !ok {
		return ports.ErrNotFound
	}
	s.AccessToken = accessToken
	if refreshToken != "" {
		s.RefreshToken = refreshToken
	}
	s.AccessExpiresAt = accessExpiresAt
	r.sessions[token] = s
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, token)
	return nil
}

var _ ports.SessionRepository = (*SessionRepository)(nil)
