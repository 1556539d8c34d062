package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tastetrek/taste-trek-api/internal/domain"
	"github.com/tastetrek/taste-trek-api/internal/repository/ports"
)

type SessionRepository struct {
	db *sqlx.DB
}

func NewSessionRepo(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, session *domain.Session) error {
	const query = `
		INSERT INTO sessions (token, user_id, access_token, refresh_token, access_expires_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING token, user_id, access_token, refresh_token, access_expires_at, expires_at, created_at
	`
	row := r.db.QueryRowxContext(ctx, query,
		session.Token, session.UserID, session.AccessToken, session.RefreshToken,
		session.AccessExpiresAt, session.ExpiresAt)
	return row.StructScan(session)
}

func (r *SessionRepository) Find(ctx context.Context, token string) (*domain.Session, error) {
	const query = `
		SELECT token, user_id, access_token, refresh_token, access_expires_at, expires_at, created_at
		FROM sessions
		WHERE token = $1 AND expires_at > NOW()
	`
	var session domain.Session
	if err := r.db.GetContext(ctx, &session, query, token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) UpdateTokens(ctx context.Context, token, accessToken, refreshToken string, accessExpiresAt time.Time) error {
	const query = `
		UPDATE sessions
		SET access_token = $2,
		    refresh_token = COALESCE(NULLIF($3, ''), refresh_token),
		    access_expires_at = $4
		WHERE token = $1
	`
	result, err := r.db.ExecContext(ctx, query, token, accessToken, refreshToken, accessExpiresAt)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	const query = `DELETE FROM sessions WHERE token = $1`
	_, err := r.db.ExecContext(ctx, query, token)
	return err
}

var _ ports.SessionRepository = (*SessionRepository)(nil)
