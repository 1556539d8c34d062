package ports

import (
	"context"
	"time"

	"github.com/tastetrek/taste-trek-api/internal/domain"
)

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	// Find returns nil when no live session matches the token.
	Find(ctx context.Context, token string) (*domain.Session, error)
	UpdateTokens(ctx context.Context, token, accessToken, refreshToken string, accessExpiresAt time.Time) error
	Delete(ctx context.Context, token string) error
}
