package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/tastetrek/taste-trek-api/internal/domain"
	"github.com/tastetrek/taste-trek-api/internal/repository/ports"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrAuthDisabled = errors.New("authentication provider not configured")
)

const stateTTL = 10 * time.Minute

type AuthConfig struct {
	IssuerURL     string
	ClientID      string
	ClientSecret  string
	Scopes        []string
	SessionSecret string
	SessionTTL    time.Duration
	// CallbackURL overrides the per-request callback derived from the
	// request host. Useful behind proxies that rewrite Host.
	CallbackURL string
}

// AuthService implements the OIDC login flow and session authentication.
// When no issuer is configured the service still authenticates existing
// sessions; only the provider-facing operations report ErrAuthDisabled.
type AuthService struct {
	cfg      AuthConfig
	store    ports.Storage
	sessions ports.SessionRepository

	provider *oidc.Provider
	verifier *oidc.IDTokenVerifier

	mu      sync.Mutex
	oauth   map[string]*oauth2.Config
	nowFunc func() time.Time
}

func NewAuthService(ctx context.Context, cfg AuthConfig, store ports.Storage, sessions ports.SessionRepository) (*AuthService, error) {
	s := &AuthService{
		cfg:      cfg,
		store:    store,
		sessions: sessions,
		oauth:    make(map[string]*oauth2.Config),
		nowFunc:  time.Now,
	}
	if cfg.SessionTTL <= 0 {
		s.cfg.SessionTTL = 7 * 24 * time.Hour
	}
	if len(cfg.Scopes) == 0 {
		s.cfg.Scopes = []string{oidc.ScopeOpenID, "email", "profile", "offline_access"}
	}

	if cfg.IssuerURL == "" || cfg.ClientID == "" {
		return s, nil
	}

	provider, err := oidc.NewProvider(ctx, cfg.IssuerURL)
	if err != nil {
		return nil, fmt.Errorf("discover oidc provider: %w", err)
	}
	s.provider = provider
	s.verifier = provider.Verifier(&oidc.Config{ClientID: cfg.ClientID})
	return s, nil
}

// Enabled reports whether the provider flow (login, callback, logout
// redirect) is available.
func (s *AuthService) Enabled() bool { return s.provider != nil }

// oauthConfig returns the oauth2 config for a request host, building the
// callback URL from it. Configs are cached per host because a deployment can
// serve several hostnames.
func (s *AuthService) oauthConfig(host string) *oauth2.Config {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cfg, ok := s.oauth[host]; ok {
		return cfg
	}

	callback := s.cfg.CallbackURL
	if callback == "" {
		callback = "https://" + host + "/api/callback"
	}
	cfg := &oauth2.Config{
		ClientID:     s.cfg.ClientID,
		ClientSecret: s.cfg.ClientSecret,
		Endpoint:     s.provider.Endpoint(),
		RedirectURL:  callback,
		Scopes:       s.cfg.Scopes,
	}
	s.oauth[host] = cfg
	return cfg
}

// LoginURL returns the provider authorization URL for the request host. The
// state parameter is a short-lived signed token carrying the host so the
// callback can rebuild the same redirect URL.
func (s *AuthService) LoginURL(host string) (string, error) {
	if !s.Enabled() {
		return "", ErrAuthDisabled
	}

	now := s.nowFunc()
	claims := jwt.MapClaims{
		"host": host,
		"iat":  now.Unix(),
		"exp":  now.Add(stateTTL).Unix(),
	}
	state, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.SessionSecret))
	if err != nil {
		return "", fmt.Errorf("sign state: %w", err)
	}

	return s.oauthConfig(host).AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "login consent")), nil
}

// HandleCallback exchanges the authorization code, verifies the identity
// token, upserts the user, and opens a session.
func (s *AuthService) HandleCallback(ctx context.Context, host, code, state string) (*domain.Session, *domain.User, error) {
	if !s.Enabled() {
		return nil, nil, ErrAuthDisabled
	}

	stateHost, err := s.verifyState(state)
	if err != nil {
		return nil, nil, ErrUnauthorized
	}
	if stateHost != host {
		host = stateHost
	}

	token, err := s.oauthConfig(host).Exchange(ctx, code)
	if err != nil {
		return nil, nil, fmt.Errorf("exchange code: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return nil, nil, errors.New("token response missing id_token")
	}
	idToken, err := s.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, nil, fmt.Errorf("verify id token: %w", err)
	}

	var claims struct {
		Sub             string `json:"sub"`
		Email           string `json:"email"`
		FirstName       string `json:"first_name"`
		LastName        string `json:"last_name"`
		GivenName       string `json:"given_name"`
		FamilyName      string `json:"family_name"`
		ProfileImageURL string `json:"profile_image_url"`
		Picture         string `json:"picture"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return nil, nil, fmt.Errorf("decode claims: %w", err)
	}
	if claims.FirstName == "" {
		claims.FirstName = claims.GivenName
	}
	if claims.LastName == "" {
		claims.LastName = claims.FamilyName
	}
	if claims.ProfileImageURL == "" {
		claims.ProfileImageURL = claims.Picture
	}

	user, err := s.store.UpsertUser(ctx, domain.User{
		ID:              claims.Sub,
		Email:           claims.Email,
		FirstName:       optional(claims.FirstName),
		LastName:        optional(claims.LastName),
		ProfileImageURL: optional(claims.ProfileImageURL),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("upsert user: %w", err)
	}

	now := s.nowFunc()
	session := &domain.Session{
		Token:           uuid.NewString(),
		UserID:          user.ID,
		AccessToken:     token.AccessToken,
		RefreshToken:    token.RefreshToken,
		AccessExpiresAt: token.Expiry,
		ExpiresAt:       now.Add(s.cfg.SessionTTL),
		CreatedAt:       now,
	}
	if session.AccessExpiresAt.IsZero() {
		session.AccessExpiresAt = now.Add(time.Hour)
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, nil, fmt.Errorf("create session: %w", err)
	}
	return session, user, nil
}

// Authenticate resolves a session cookie token to its user, transparently
// refreshing the provider access token when it has expired.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	session, err := s.sessions.Find(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrUnauthorized
	}

	if session.AccessExpired(s.nowFunc()) {
		if err := s.refresh(ctx, session); err != nil {
			return nil, ErrUnauthorized
		}
	}

	user, err := s.store.GetUser(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnauthorized
	}
	return user, nil
}

func (s *AuthService) refresh(ctx context.Context, session *domain.Session) error {
	if !s.Enabled() || session.RefreshToken == "" {
		return ErrUnauthorized
	}

	// Any cached config works here, the token endpoint does not depend on
	// the callback host.
	cfg := s.oauthConfig("refresh")
	src := cfg.TokenSource(ctx, &oauth2.Token{RefreshToken: session.RefreshToken})
	token, err := src.Token()
	if err != nil {
		return fmt.Errorf("refresh access token: %w", err)
	}

	expiry := token.Expiry
	if expiry.IsZero() {
		expiry = s.nowFunc().Add(time.Hour)
	}
	if err := s.sessions.UpdateTokens(ctx, session.Token, token.AccessToken, token.RefreshToken, expiry); err != nil {
		return err
	}
	session.AccessToken = token.AccessToken
	if token.RefreshToken != "" {
		session.RefreshToken = token.RefreshToken
	}
	session.AccessExpiresAt = expiry
	return nil
}

// Logout deletes the session. Unknown tokens are not an error, logout is
// idempotent.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, token); err != nil && !errors.Is(err, ports.ErrNotFound) {
		return err
	}
	return nil
}

// LogoutURL returns the provider end-session redirect for the request host,
// or "/" when the provider does not advertise one.
func (s *AuthService) LogoutURL(host string) string {
	if !s.Enabled() {
		return "/"
	}

	var meta struct {
		EndSessionEndpoint string `json:"end_session_endpoint"`
	}
	if err := s.provider.Claims(&meta); err != nil || meta.EndSessionEndpoint == "" {
		return "/"
	}
	return fmt.Sprintf("%s?client_id=%s&post_logout_redirect_uri=%s",
		meta.EndSessionEndpoint, s.cfg.ClientID, "https://"+host)
}

func (s *AuthService) verifyState(state string) (string, error) {
	parsed, err := jwt.Parse(state, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.cfg.SessionSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !parsed.Valid {
		return "", errors.New("invalid state")
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid state claims")
	}
	host, _ := claims["host"].(string)
	if host == "" {
		return "", errors.New("state missing host")
	}
	return host, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
