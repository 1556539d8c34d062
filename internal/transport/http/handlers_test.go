package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/tastetrek/taste-trek-api/internal/domain"
	"github.com/tastetrek/taste-trek-api/internal/repository/memory"
	"github.com/tastetrek/taste-trek-api/internal/service"
)

type testEnv struct {
	e       *echo.Echo
	store   *memory.Store
	country domain.Country
	dest    domain.Destination
	cookie  *http.Cookie
	user    *domain.User
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	store := memory.NewStore()
	sessions := memory.NewSessionRepo()

	country, err := store.CreateCountry(ctx, domain.CountryInput{
		Name: "Japan", Slug: "japan", Description: "Ancient traditions and modern cities.",
	})
	if err != nil {
		t.Fatalf("CreateCountry returned error: %v", err)
	}
	dest, err := store.CreateDestination(ctx, domain.DestinationInput{
		CountryID: country.ID, Name: "Tokyo", Slug: "tokyo", Description: "The bustling capital.",
	})
	if err != nil {
		t.Fatalf("CreateDestination returned error: %v", err)
	}

	user, err := store.UpsertUser(ctx, domain.User{ID: "sub-1", Email: "trek@example.com"})
	if err != nil {
		t.Fatalf("UpsertUser returned error: %v", err)
	}
	token := uuid.NewString()
	err = sessions.Create(ctx, &domain.Session{
		Token:           token,
		UserID:          user.ID,
		AccessToken:     "access",
		AccessExpiresAt: time.Now().Add(time.Hour),
		ExpiresAt:       time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("Create session returned error: %v", err)
	}

	auth, err := service.NewAuthService(ctx, service.AuthConfig{
		SessionSecret: "test-secret",
		SessionTTL:    time.Hour,
	}, store, sessions)
	if err != nil {
		t.Fatalf("NewAuthService returned error: %v", err)
	}

	e := NewRouter([]string{"*"})
	RegisterCatalog(e, service.NewCatalogService(store))
	RegisterFavorites(e, auth, service.NewFavoriteService(store))
	RegisterAuth(e, auth)

	return &testEnv{
		e:       e,
		store:   store,
		country: *country,
		dest:    *dest,
		cookie:  &http.Cookie{Name: SessionCookieName, Value: token},
		user:    user,
	}
}

func (env *testEnv) request(t *testing.T, method, path, body string, authed bool) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if authed {
		req.AddCookie(env.cookie)
	}

	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func TestGetCountry(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodGet, "/api/countries/"+strconv.FormatInt(env.country.ID, 10), "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var got domain.Country
	decodeBody(t, rec, &got)
	if got.ID != env.country.ID || got.Name != "Japan" {
		t.Fatalf("unexpected country: %+v", got)
	}
}

func TestGetCountry_NotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodGet, "/api/countries/999", "", false)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var body map[string]string
	decodeBody(t, rec, &body)
	if body["message"] == "" {
		t.Fatalf("expected message in error body, got %s", rec.Body.String())
	}
}

func TestGetCountry_InvalidID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodGet, "/api/countries/abc", "", false)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestListDestinations_FilteredByCountry(t *testing.T) {
	env := newTestEnv(t)

	other, err := env.store.CreateCountry(context.Background(), domain.CountryInput{
		Name: "France", Slug: "france", Description: "Medieval cities.",
	})
	if err != nil {
		t.Fatalf("CreateCountry returned error: %v", err)
	}

	rec := env.request(t, http.MethodGet, "/api/countries/"+strconv.FormatInt(other.ID, 10)+"/destinations", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got []domain.Destination
	decodeBody(t, rec, &got)
	if len(got) != 0 {
		t.Fatalf("expected no destinations for France, got %+v", got)
	}
}

func TestSearch(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodGet, "/api/search?q=tokyo", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got domain.SearchResult
	decodeBody(t, rec, &got)
	if len(got.Destinations) != 1 || got.Destinations[0].Name != "Tokyo" {
		t.Fatalf("expected Tokyo match, got %+v", got)
	}
}

func TestListFavorites_AnonymousGetsEmptyList(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodGet, "/api/favorites", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("expected empty array, got %s", body)
	}
}

func TestCreateFavorite_RequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	body := `{"itemId": ` + strconv.FormatInt(env.country.ID, 10) + `, "itemType": "country"}`
	rec := env.request(t, http.MethodPost, "/api/favorites", body, false)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestFavoriteLifecycle(t *testing.T) {
	env := newTestEnv(t)

	// Save.
	body := `{"itemId": ` + strconv.FormatInt(env.dest.ID, 10) + `, "itemType": "destination"}`
	rec := env.request(t, http.MethodPost, "/api/favorites", body, true)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var favorite domain.Favorite
	decodeBody(t, rec, &favorite)
	if favorite.UserID != env.user.ID || favorite.ItemID != env.dest.ID {
		t.Fatalf("unexpected favorite: %+v", favorite)
	}

	// Check reports it with its id.
	rec = env.request(t, http.MethodGet, "/api/favorites/check/destination/"+strconv.FormatInt(env.dest.ID, 10), "", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var check struct {
		IsFavorite bool  `json:"isFavorite"`
		FavoriteID int64 `json:"favoriteId"`
	}
	decodeBody(t, rec, &check)
	if !check.IsFavorite || check.FavoriteID != favorite.ID {
		t.Fatalf("unexpected check result: %+v", check)
	}

	// List joins the destination.
	rec = env.request(t, http.MethodGet, "/api/favorites", "", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var list []domain.FavoriteWithItem
	decodeBody(t, rec, &list)
	if len(list) != 1 || list[0].ID != favorite.ID {
		t.Fatalf("unexpected favorites list: %+v", list)
	}

	// Delete.
	rec = env.request(t, http.MethodDelete, "/api/favorites/"+strconv.FormatInt(favorite.ID, 10), "", true)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	// Deleting again is a 404.
	rec = env.request(t, http.MethodDelete, "/api/favorites/"+strconv.FormatInt(favorite.ID, 10), "", true)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCreateFavorite_Validation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPost, "/api/favorites", `{"itemId": 0, "itemType": "country"}`, true)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for zero item id, got %d", rec.Code)
	}

	rec = env.request(t, http.MethodPost, "/api/favorites", `{"itemId": 1, "itemType": "restaurant"}`, true)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unsupported item type, got %d", rec.Code)
	}

	rec = env.request(t, http.MethodPost, "/api/favorites", `{"itemId": 999, "itemType": "country"}`, true)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown country, got %d", rec.Code)
	}
}

func TestCheckFavorite_Anonymous(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodGet, "/api/favorites/check/country/"+strconv.FormatInt(env.country.ID, 10), "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var check struct {
		IsFavorite bool `json:"isFavorite"`
	}
	decodeBody(t, rec, &check)
	if check.IsFavorite {
		t.Fatalf("expected isFavorite false for anonymous caller")
	}
}

func TestCheckFavorite_RejectsUnknownType(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodGet, "/api/favorites/check/restaurant/1", "", false)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthUser(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodGet, "/api/auth/user", "", false)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for anonymous caller, got %d", rec.Code)
	}

	rec = env.request(t, http.MethodGet, "/api/auth/user", "", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var got domain.User
	decodeBody(t, rec, &got)
	if got.ID != env.user.ID {
		t.Fatalf("expected user %s, got %+v", env.user.ID, got)
	}
}

func TestLoginRoutesAbsentWhenProviderDisabled(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodGet, "/api/login", "", false)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for disabled login flow, got %d", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodGet, "/health", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
