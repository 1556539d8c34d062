// Package postgres provides the relational storage backend over sqlx and the
// pgx stdlib driver.
package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/tastetrek/taste-trek-api/internal/domain"
	"github.com/tastetrek/taste-trek-api/internal/repository/ports"
)

type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetCountries(ctx context.Context) ([]domain.Country, error) {
	const query = `
		SELECT id, name, slug, description, hero_image, continent
		FROM countries
		ORDER BY id
	`
	countries := make([]domain.Country, 0)
	if err := s.db.SelectContext(ctx, &countries, query); err != nil {
		return nil, err
	}
	return countries, nil
}

func (s *Store) GetCountry(ctx context.Context, id int64) (*domain.Country, error) {
	const query = `
		SELECT id, name, slug, description, hero_image, continent
		FROM countries
		WHERE id = $1
	`
	var country domain.Country
	if err := s.db.GetContext(ctx, &country, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &country, nil
}

func (s *Store) CreateCountry(ctx context.Context, input domain.CountryInput) (*domain.Country, error) {
	const query = `
		INSERT INTO countries (name, slug, description, hero_image, continent)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, slug, description, hero_image, continent
	`
	var country domain.Country
	row := s.db.QueryRowxContext(ctx, query, input.Name, input.Slug, input.Description, input.HeroImage, input.Continent)
	if err := row.StructScan(&country); err != nil {
		return nil, err
	}
	return &country, nil
}

func (s *Store) GetDestinationsByCountry(ctx context.Context, countryID int64) ([]domain.Destination, error) {
	const query = `
		SELECT id, country_id, name, slug, description, image, coordinates
		FROM destinations
		WHERE country_id = $1
		ORDER BY id
	`
	destinations := make([]domain.Destination, 0)
	if err := s.db.SelectContext(ctx, &destinations, query, countryID); err != nil {
		return nil, err
	}
	return destinations, nil
}

func (s *Store) GetDestination(ctx context.Context, id int64) (*domain.Destination, error) {
	const query = `
		SELECT id, country_id, name, slug, description, image, coordinates
		FROM destinations
		WHERE id = $1
	`
	var dest domain.Destination
	if err := s.db.GetContext(ctx, &dest, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &dest, nil
}

func (s *Store) CreateDestination(ctx context.Context, input domain.DestinationInput) (*domain.Destination, error) {
	const query = `
		INSERT INTO destinations (country_id, name, slug, description, image, coordinates)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, country_id, name, slug, description, image, coordinates
	`
	var dest domain.Destination
	row := s.db.QueryRowxContext(ctx, query, input.CountryID, input.Name, input.Slug, input.Description, input.Image, input.Coordinates)
	if err := row.StructScan(&dest); err != nil {
		return nil, err
	}
	return &dest, nil
}

func (s *Store) GetRestaurantsByDestination(ctx context.Context, destinationID int64) ([]domain.Restaurant, error) {
	const query = `
		SELECT id, destination_id, name, description, cuisine, price_range, image_url, coordinates
		FROM restaurants
		WHERE destination_id = $1
		ORDER BY id
	`
	restaurants := make([]domain.Restaurant, 0)
	if err := s.db.SelectContext(ctx, &restaurants, query, destinationID); err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *Store) CreateRestaurant(ctx context.Context, input domain.RestaurantInput) (*domain.Restaurant, error) {
	const query = `
		INSERT INTO restaurants (destination_id, name, description, cuisine, price_range, image_url, coordinates)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, destination_id, name, description, cuisine, price_range, image_url, coordinates
	`
	var restaurant domain.Restaurant
	row := s.db.QueryRowxContext(ctx, query, input.DestinationID, input.Name, input.Description, input.Cuisine, input.PriceRange, input.ImageURL, input.Coordinates)
	if err := row.StructScan(&restaurant); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (s *Store) GetCulturalSitesByDestination(ctx context.Context, destinationID int64) ([]domain.CulturalSite, error) {
	const query = `
		SELECT id, destination_id, name, description, ticket_price, image_url, coordinates
		FROM cultural_sites
		WHERE destination_id = $1
		ORDER BY id
	`
	sites := make([]domain.CulturalSite, 0)
	if err := s.db.SelectContext(ctx, &sites, query, destinationID); err != nil {
		return nil, err
	}
	return sites, nil
}

func (s *Store) CreateCulturalSite(ctx context.Context, input domain.CulturalSiteInput) (*domain.CulturalSite, error) {
	const query = `
		INSERT INTO cultural_sites (destination_id, name, description, ticket_price, image_url, coordinates)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, destination_id, name, description, ticket_price, image_url, coordinates
	`
	var site domain.CulturalSite
	row := s.db.QueryRowxContext(ctx, query, input.DestinationID, input.Name, input.Description, input.TicketPrice, input.ImageURL, input.Coordinates)
	if err := row.StructScan(&site); err != nil {
		return nil, err
	}
	return &site, nil
}

func (s *Store) Search(ctx context.Context, query string) (*domain.SearchResult, error) {
	const countryQuery = `
		SELECT id, name, slug, description, hero_image, continent
		FROM countries
		WHERE name ILIKE $1 OR description ILIKE $1
		ORDER BY id
	`
	const destinationQuery = `
		SELECT id, country_id, name, slug, description, image, coordinates
		FROM destinations
		WHERE name ILIKE $1 OR description ILIKE $1
		ORDER BY id
	`
	pattern := "%" + query + "%"

	result := &domain.SearchResult{
		Countries:    make([]domain.Country, 0),
		Destinations: make([]domain.Destination, 0),
	}
	if err := s.db.SelectContext(ctx, &result.Countries, countryQuery, pattern); err != nil {
		return nil, err
	}
	if err := s.db.SelectContext(ctx, &result.Destinations, destinationQuery, pattern); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Store) GetFavorites(ctx context.Context, userID string) ([]domain.FavoriteWithItem, error) {
	const query = `
		SELECT id, user_id, item_id, item_type, created_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY id
	`
	favorites := make([]domain.Favorite, 0)
	if err := s.db.SelectContext(ctx, &favorites, query, userID); err != nil {
		return nil, err
	}

	out := make([]domain.FavoriteWithItem, 0, len(favorites))
	for _, f := range favorites {
		var item any
		switch f.ItemType {
		case domain.FavoriteItemCountry:
			country, err := s.GetCountry(ctx, f.ItemID)
			if err != nil {
				return nil, err
			}
			if country != nil {
				item = *country
			}
		case domain.FavoriteItemDestination:
			dest, err := s.GetDestination(ctx, f.ItemID)
			if err != nil {
				return nil, err
			}
			if dest != nil {
				item = *dest
			}
		}
		if item == nil {
			// Dangling favorite, drop it from results.
			continue
		}
		out = append(out, domain.FavoriteWithItem{Favorite: f, Item: item})
	}
	return out, nil
}

func (s *Store) CreateFavorite(ctx context.Context, input domain.FavoriteInput) (*domain.Favorite, error) {
	const query = `
		INSERT INTO favorites (user_id, item_id, item_type)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, item_id, item_type, created_at
	`
	var favorite domain.Favorite
	row := s.db.QueryRowxContext(ctx, query, input.UserID, input.ItemID, input.ItemType)
	if err := row.StructScan(&favorite); err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (s *Store) DeleteFavorite(ctx context.Context, id int64, userID string) error {
	const query = `
		DELETE FROM favorites
		WHERE id = $1 AND user_id = $2
	`
	result, err := s.db.ExecContext(ctx, query, id, userID)
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

func (s *Store) GetFavoriteByItem(ctx context.Context, userID, itemType string, itemID int64) (*domain.Favorite, error) {
	const query = `
		SELECT id, user_id, item_id, item_type, created_at
		FROM favorites
		WHERE user_id = $1 AND item_type = $2 AND item_id = $3
	`
	var favorite domain.Favorite
	if err := s.db.GetContext(ctx, &favorite, query, userID, itemType, itemID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &favorite, nil
}

func (s *Store) UpsertUser(ctx context.Context, user domain.User) (*domain.User, error) {
	const query = `
		INSERT INTO users (id, email, first_name, last_name, profile_image_url)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET email = EXCLUDED.email,
		    first_name = COALESCE(EXCLUDED.first_name, users.first_name),
		    last_name = COALESCE(EXCLUDED.last_name, users.last_name),
		    profile_image_url = COALESCE(EXCLUDED.profile_image_url, users.profile_image_url),
		    updated_at = NOW()
		RETURNING id, email, first_name, last_name, profile_image_url, created_at, updated_at
	`
	var out domain.User
	row := s.db.QueryRowxContext(ctx, query, user.ID, user.Email, user.FirstName, user.LastName, user.ProfileImageURL)
	if err := row.StructScan(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Store) GetUser(ctx context.Context, id string) (*domain.User, error) {
	const query = `
		SELECT id, email, first_name, last_name, profile_image_url, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	var user domain.User
	if err := s.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

var _ ports.Storage = (*Store)(nil)
