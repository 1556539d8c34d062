// Package api holds the route registry shared by the HTTP server and the
// client SDK. Both sides read the same table, so a path or method can never
// drift between them.
package api

import "strings"

type Route struct {
	Name   string
	Method string
	Path   string
}

const (
	OpListCountries       = "countries.list"
	OpGetCountry          = "countries.get"
	OpCountryDestinations = "countries.destinations"
	OpGetDestination      = "destinations.get"
	OpRestaurants         = "destinations.restaurants"
	OpCulturalSites       = "destinations.culturalSites"
	OpSearch              = "search"
	OpListFavorites       = "favorites.list"
	OpCreateFavorite      = "favorites.create"
	OpDeleteFavorite      = "favorites.delete"
	OpCheckFavorite       = "favorites.check"
	OpLogin               = "auth.login"
	OpCallback            = "auth.callback"
	OpLogout              = "auth.logout"
	OpAuthUser            = "auth.user"
)

var Routes = map[string]Route{
	OpListCountries:       {OpListCountries, "GET", "/api/countries"},
	OpGetCountry:          {OpGetCountry, "GET", "/api/countries/:id"},
	OpCountryDestinations: {OpCountryDestinations, "GET", "/api/countries/:id/destinations"},
	OpGetDestination:      {OpGetDestination, "GET", "/api/destinations/:id"},
	OpRestaurants:         {OpRestaurants, "GET", "/api/destinations/:id/restaurants"},
	OpCulturalSites:       {OpCulturalSites, "GET", "/api/destinations/:id/cultural-sites"},
	OpSearch:              {OpSearch, "GET", "/api/search"},
	OpListFavorites:       {OpListFavorites, "GET", "/api/favorites"},
	OpCreateFavorite:      {OpCreateFavorite, "POST", "/api/favorites"},
	OpDeleteFavorite:      {OpDeleteFavorite, "DELETE", "/api/favorites/:id"},
	OpCheckFavorite:       {OpCheckFavorite, "GET", "/api/favorites/check/:type/:id"},
	OpLogin:               {OpLogin, "GET", "/api/login"},
	OpCallback:            {OpCallback, "GET", "/api/callback"},
	OpLogout:              {OpLogout, "GET", "/api/logout"},
	OpAuthUser:            {OpAuthUser, "GET", "/api/auth/user"},
}

// Get looks up a route by operation name. It panics on an unknown name,
// which can only happen through a programming error.
func Get(name string) Route {
	r, ok := Routes[name]
	if !ok {
		panic("api: unknown route " + name)
	}
	return r
}

// BuildURL substitutes :param tokens in a path template with the supplied
// values, matched by name. Unmatched tokens are left in place.
func BuildURL(path string, params map[string]string) string {
	if len(params) == 0 {
		return path
	}
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if !strings.HasPrefix(seg, ":") {
			continue
		}
		if v, ok := params[seg[1:]]; ok {
			segments[i] = v
		}
	}
	return strings.Join(segments, "/")
}
