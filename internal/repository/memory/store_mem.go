// Package memory provides the in-memory storage backend. It is the default
// when no database is configured and the fallback when the configured
// database is unreachable at startup. Nothing persists across restarts; the
// seed routine repopulates the catalog on every boot.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/tastetrek/taste-trek-api/internal/domain"
	"github.com/tastetrek/taste-trek-api/internal/repository/ports"
)

type Store struct {
	mu sync.RWMutex

	countries     map[int64]domain.Country
	destinations  map[int64]domain.Destination
	restaurants   map[int64]domain.Restaurant
	culturalSites map[int64]domain.CulturalSite
	favorites     map[int64]domain.Favorite
	users         map[string]domain.User

	nextCountryID     int64
	nextDestinationID int64
	nextRestaurantID  int64
	nextSiteID        int64
	nextFavoriteID    int64
}

func NewStore() *Store {
	return &Store{
		countries:         make(map[int64]domain.Country),
		destinations:      make(map[int64]domain.Destination),
		restaurants:       make(map[int64]domain.Restaurant),
		culturalSites:     make(map[int64]domain.CulturalSite),
		favorites:         make(map[int64]domain.Favorite),
		users:             make(map[string]domain.User),
		nextCountryID:     1,
		nextDestinationID: 1,
		nextRestaurantID:  1,
		nextSiteID:        1,
		nextFavoriteID:    1,
	}
}

func (s *Store) GetCountries(ctx context.Context) ([]domain.Country, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Country, 0, len(s.countries))
	for id := int64(1); id < s.nextCountryID; id++ {
		if c, ok := s.countries[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *Store) GetCountry(ctx context.Context, id int64) (*domain.Country, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.countries[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (s *Store) CreateCountry(ctx context.Context, input domain.CountryInput) (*domain.Country, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := domain.Country{
		ID:          s.nextCountryID,
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
		HeroImage:   input.HeroImage,
		Continent:   input.Continent,
	}
	s.nextCountryID++
	s.countries[c.ID] = c
	return &c, nil
}

func (s *Store) GetDestinationsByCountry(ctx context.Context, countryID int64) ([]domain.Destination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Destination, 0)
	for id := int64(1); id < s.nextDestinationID; id++ {
		if d, ok := s.destinations[id]; ok && d.CountryID == countryID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *Store) GetDestination(ctx context.Context, id int64) (*domain.Destination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.destinations[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (s *Store) CreateDestination(ctx context.Context, input domain.DestinationInput) (*domain.Destination, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := domain.Destination{
		ID:          s.nextDestinationID,
		CountryID:   input.CountryID,
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
		Image:       input.Image,
		Coordinates: input.Coordinates,
	}
	s.nextDestinationID++
	s.destinations[d.ID] = d
	return &d, nil
}

func (s *Store) GetRestaurantsByDestination(ctx context.Context, destinationID int64) ([]domain.Restaurant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Restaurant, 0)
	for id := int64(1); id < s.nextRestaurantID; id++ {
		if r, ok := s.restaurants[id]; ok && r.DestinationID == destinationID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Store) CreateRestaurant(ctx context.Context, input domain.RestaurantInput) (*domain.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := domain.Restaurant{
		ID:            s.nextRestaurantID,
		DestinationID: input.DestinationID,
		Name:          input.Name,
		Description:   input.Description,
		Cuisine:       input.Cuisine,
		PriceRange:    input.PriceRange,
		ImageURL:      input.ImageURL,
		Coordinates:   input.Coordinates,
	}
	s.nextRestaurantID++
	s.restaurants[r.ID] = r
	return &r, nil
}

func (s *Store) GetCulturalSitesByDestination(ctx context.Context, destinationID int64) ([]domain.CulturalSite, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.CulturalSite, 0)
	for id := int64(1); id < s.nextSiteID; id++ {
		if cs, ok := s.culturalSites[id]; ok && cs.DestinationID == destinationID {
			out = append(out, cs)
		}
	}
	return out, nil
}

func (s *Store) CreateCulturalSite(ctx context.Context, input domain.CulturalSiteInput) (*domain.CulturalSite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cs := domain.CulturalSite{
		ID:            s.nextSiteID,
		DestinationID: input.DestinationID,
		Name:          input.Name,
		Description:   input.Description,
		TicketPrice:   input.TicketPrice,
		ImageURL:      input.ImageURL,
		Coordinates:   input.Coordinates,
	}
	s.nextSiteID++
	s.culturalSites[cs.ID] = cs
	return &cs, nil
}

func (s *Store) Search(ctx context.Context, query string) (*domain.SearchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	result := &domain.SearchResult{
		Countries:    make([]domain.Country, 0),
		Destinations: make([]domain.Destination, 0),
	}
	for id := int64(1); id < s.nextCountryID; id++ {
		c, ok := s.countries[id]
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(strings.ToLower(c.Description), q) {
			result.Countries = append(result.Countries, c)
		}
	}
	for id := int64(1); id < s.nextDestinationID; id++ {
		d, ok := s.destinations[id]
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(d.Name), q) || strings.Contains(strings.ToLower(d.Description), q) {
			result.Destinations = append(result.Destinations, d)
		}
	}
	return result, nil
}

func (s *Store) GetFavorites(ctx context.Context, userID string) ([]domain.FavoriteWithItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.FavoriteWithItem, 0)
	for id := int64(1); id < s.nextFavoriteID; id++ {
		f, ok := s.favorites[id]
		if !ok || f.UserID != userID {
			continue
		}
		item := s.itemLocked(f.ItemType, f.ItemID)
		if item == nil {
			continue
		}
		out = append(out, domain.FavoriteWithItem{Favorite: f, Item: item})
	}
	return out, nil
}

func (s *Store) itemLocked(itemType string, itemID int64) any {
	switch itemType {
	case domain.FavoriteItemCountry:
		if c, ok := s.countries[itemID]; ok {
			return c
		}
	case domain.FavoriteItemDestination:
		if d, ok := s.destinations[itemID]; ok {
			return d
		}
	}
	return nil
}

func (s *Store) CreateFavorite(ctx context.Context, input domain.FavoriteInput) (*domain.Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	f := domain.Favorite{
		ID:        s.nextFavoriteID,
		UserID:    input.UserID,
		ItemID:    input.ItemID,
		ItemType:  input.ItemType,
		CreatedAt: &now,
	}
	s.nextFavoriteID++
	s.favorites[f.ID] = f
	return &f, nil
}

func (s *Store) DeleteFavorite(ctx context.Context, id int64, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.favorites[id]
	if !ok || f.UserID != userID {
		return ports.ErrNotFound
	}
	delete(s.favorites, id)
	return nil
}

func (s *Store) GetFavoriteByItem(ctx context.Context, userID, itemType string, itemID int64) (*domain.Favorite, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for id := int64(1); id < s.nextFavoriteID; id++ {
		f, ok := s.favorites[id]
		if ok && f.UserID == userID && f.ItemType == itemType && f.ItemID == itemID {
			return &f, nil
		}
	}
	return nil, nil
}

func (s *Store) UpsertUser(ctx context.Context, user domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	existing, ok := s.users[user.ID]
	if ok {
		user.CreatedAt = existing.CreatedAt
	} else {
		user.CreatedAt = now
	}
	user.UpdatedAt = now
	s.users[user.ID] = user
	return &user, nil
}

func (s *Store) GetUser(ctx context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

var _ ports.Storage = (*Store)(nil)
