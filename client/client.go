// Package client is the Go SDK for the Taste-Trek API. It builds its URLs
// from the same route registry the server registers handlers with, and keeps
// favorites usable offline through a local store.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/tastetrek/taste-trek-api/internal/api"
	"github.com/tastetrek/taste-trek-api/internal/domain"
)

const (
	favoritesKey = "taste-trek-favorites"
	userKey      = "taste-trek-user"
)

// ErrNotSignedIn is returned by favorite mutations when neither a local user
// nor a server session exists.
var ErrNotSignedIn = errors.New("not signed in")

// KV is the persistence the client needs for offline state. localstore.Store
// satisfies it.
type KV interface {
	Get(key string, v any) (bool, error)
	Set(key string, v any) error
	Delete(key string) error
}

type Client struct {
	baseURL string
	http    *http.Client
	store   KV
}

// New builds a client for baseURL. The HTTP client carries a cookie jar so a
// login session set by the server persists across calls.
func New(baseURL string, store KV) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("client: cookie jar: %w", err)
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Jar: jar, Timeout: 15 * time.Second},
		store:   store,
	}, nil
}

func (c *Client) get(ctx context.Context, op string, params map[string]string, query string, out any) error {
	r := api.Get(op)
	url := c.baseURL + api.BuildURL(r.Path, params)
	if query != "" {
		url += "?" + query
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, url, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return decodeError(res)
	}
	if out == nil || res.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

// APIError is a non-2xx response decoded into its message body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

func decodeError(res *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
	var payload struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &payload)
	if payload.Message == "" {
		payload.Message = http.StatusText(res.StatusCode)
	}
	return &APIError{StatusCode: res.StatusCode, Message: payload.Message}
}

// Countries lists all countries in the catalog.
func (c *Client) Countries(ctx context.Context) ([]domain.Country, error) {
	var out []domain.Country
	err := c.get(ctx, api.OpListCountries, nil, "", &out)
	return out, err
}

func (c *Client) Country(ctx context.Context, id int64) (*domain.Country, error) {
	var out domain.Country
	err := c.get(ctx, api.OpGetCountry, idParam(id), "", &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Destinations(ctx context.Context, countryID int64) ([]domain.Destination, error) {
	var out []domain.Destination
	err := c.get(ctx, api.OpCountryDestinations, idParam(countryID), "", &out)
	return out, err
}

func (c *Client) Destination(ctx context.Context, id int64) (*domain.Destination, error) {
	var out domain.Destination
	err := c.get(ctx, api.OpGetDestination, idParam(id), "", &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Restaurants(ctx context.Context, destinationID int64) ([]domain.Restaurant, error) {
	var out []domain.Restaurant
	err := c.get(ctx, api.OpRestaurants, idParam(destinationID), "", &out)
	return out, err
}

func (c *Client) CulturalSites(ctx context.Context, destinationID int64) ([]domain.CulturalSite, error) {
	var out []domain.CulturalSite
	err := c.get(ctx, api.OpCulturalSites, idParam(destinationID), "", &out)
	return out, err
}

func (c *Client) Search(ctx context.Context, query string) (*domain.SearchResult, error) {
	var out domain.SearchResult
	err := c.get(ctx, api.OpSearch, nil, "q="+url.QueryEscape(query), &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SignInLocal fabricates a local identity without contacting the server.
// Favorites saved under it live only in the local store until the user signs
// in through the provider.
func (c *Client) SignInLocal(email, firstName, lastName string) (*domain.User, error) {
	user := &domain.User{
		ID:        domain.LocalUserIDPrefix + uuid.NewString(),
		Email:     email,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if firstName != "" {
		user.FirstName = &firstName
	}
	if lastName != "" {
		user.LastName = &lastName
	}
	if err := c.store.Set(userKey, user); err != nil {
		return nil, err
	}
	return user, nil
}

// CurrentUser returns the local user when one is stored, otherwise asks the
// server for the session user.
func (c *Client) CurrentUser(ctx context.Context) (*domain.User, error) {
	var local domain.User
	ok, err := c.store.Get(userKey, &local)
	if err != nil {
		return nil, err
	}
	if ok {
		return &local, nil
	}

	var out domain.User
	if err := c.get(ctx, api.OpAuthUser, nil, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SignOut clears the local identity and local favorites, and best-effort
// ends any server session.
func (c *Client) SignOut(ctx context.Context) error {
	if err := c.store.Delete(userKey); err != nil {
		return err
	}
	if err := c.store.Delete(favoritesKey); err != nil {
		return err
	}
	_ = c.get(ctx, api.OpLogout, nil, "", nil)
	return nil
}

// Favorites prefers the server list and falls back to locally stored
// favorites when the server is unreachable or rejects the session.
func (c *Client) Favorites(ctx context.Context) ([]domain.Favorite, error) {
	var remote []domain.FavoriteWithItem
	if err := c.get(ctx, api.OpListFavorites, nil, "", &remote); err == nil {
		if len(remote) > 0 {
			out := make([]domain.Favorite, 0, len(remote))
			for _, f := range remote {
				out = append(out, f.Favorite)
			}
			return out, nil
		}
	}
	return c.localFavorites()
}

// AddFavorite records the favorite locally first so the result survives a
// dead server, then best-effort syncs it to the server session.
func (c *Client) AddFavorite(ctx context.Context, itemType string, itemID int64) (*domain.Favorite, error) {
	user, err := c.CurrentUser(ctx)
	if err != nil || user == nil {
		return nil, ErrNotSignedIn
	}

	locals, err := c.localFavorites()
	if err != nil {
		return nil, err
	}

	var nextID int64 = 1
	for _, f := range locals {
		if f.ItemType == itemType && f.ItemID == itemID {
			return &f, nil
		}
		if f.ID >= nextID {
			nextID = f.ID + 1
		}
	}

	now := time.Now()
	favorite := domain.Favorite{
		ID:        nextID,
		UserID:    user.ID,
		ItemID:    itemID,
		ItemType:  itemType,
		CreatedAt: &now,
	}
	locals = append(locals, favorite)
	if err := c.store.Set(favoritesKey, locals); err != nil {
		return nil, err
	}

	if created, err := c.postFavorite(ctx, itemType, itemID); err == nil {
		return created, nil
	}
	return &favorite, nil
}

// RemoveFavorite drops the favorite from the local store and best-effort
// deletes the matching server row.
func (c *Client) RemoveFavorite(ctx context.Context, itemType string, itemID int64) error {
	locals, err := c.localFavorites()
	if err != nil {
		return err
	}

	kept := locals[:0]
	for _, f := range locals {
		if f.ItemType == itemType && f.ItemID == itemID {
			continue
		}
		kept = append(kept, f)
	}
	if err := c.store.Set(favoritesKey, kept); err != nil {
		return err
	}

	if id, ok, err := c.serverFavoriteID(ctx, itemType, itemID); err == nil && ok {
		r := api.Get(api.OpDeleteFavorite)
		url := c.baseURL + api.BuildURL(r.Path, map[string]string{"id": strconv.FormatInt(id, 10)})
		if req, err := http.NewRequestWithContext(ctx, r.Method, url, nil); err == nil {
			_ = c.do(req, nil)
		}
	}
	return nil
}

// IsFavorite reports true when either the local store or the server session
// knows the item. Server errors are treated as "not favorited" rather than
// surfaced.
func (c *Client) IsFavorite(ctx context.Context, itemType string, itemID int64) (bool, error) {
	locals, err := c.localFavorites()
	if err != nil {
		return false, err
	}
	for _, f := range locals {
		if f.ItemType == itemType && f.ItemID == itemID {
			return true, nil
		}
	}

	_, ok, err := c.serverFavoriteID(ctx, itemType, itemID)
	if err != nil {
		return false, nil
	}
	return ok, nil
}

func (c *Client) localFavorites() ([]domain.Favorite, error) {
	var locals []domain.Favorite
	if _, err := c.store.Get(favoritesKey, &locals); err != nil {
		return nil, err
	}
	return locals, nil
}

func (c *Client) postFavorite(ctx context.Context, itemType string, itemID int64) (*domain.Favorite, error) {
	r := api.Get(api.OpCreateFavorite)
	body, err := json.Marshal(domain.FavoriteInput{ItemID: itemID, ItemType: itemType})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, c.baseURL+r.Path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var created domain.Favorite
	if err := c.do(req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) serverFavoriteID(ctx context.Context, itemType string, itemID int64) (int64, bool, error) {
	var out struct {
		IsFavorite bool  `json:"isFavorite"`
		FavoriteID int64 `json:"favoriteId"`
	}
	params := map[string]string{"type": itemType, "id": strconv.FormatInt(itemID, 10)}
	if err := c.get(ctx, api.OpCheckFavorite, params, "", &out); err != nil {
		return 0, false, err
	}
	return out.FavoriteID, out.IsFavorite, nil
}

func idParam(id int64) map[string]string {
	return map[string]string{"id": strconv.FormatInt(id, 10)}
}
