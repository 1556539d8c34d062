package domain

import "time"

// Session is a server-side login session created by the OIDC callback. Token
// is the opaque cookie value; AccessExpiresAt is the provider access-token
// expiry the auth middleware checks before transparently refreshing.
type Session struct {
	Token           string    `db:"token" json:"token"`
	UserID          string    `db:"user_id" json:"userId"`
	AccessToken     string    `db:"access_token" json:"-"`
	RefreshToken    string    `db:"refresh_token" json:"-"`
	AccessExpiresAt time.Time `db:"access_expires_at" json:"accessExpiresAt"`
	ExpiresAt       time.Time `db:"expires_at" json:"expiresAt"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
}

func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

func (s *Session) AccessExpired(now time.Time) bool {
	return now.After(s.AccessExpiresAt)
}
