package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tastetrek/taste-trek-api/internal/api"
	"github.com/tastetrek/taste-trek-api/internal/service"
	"github.com/tastetrek/taste-trek-api/internal/util"
)

type CatalogHandler struct {
	catalog *service.CatalogService
}

func RegisterCatalog(e *echo.Echo, catalog *service.CatalogService) {
	handler := &CatalogHandler{catalog: catalog}

	add(e, api.OpListCountries, handler.listCountries)
	add(e, api.OpGetCountry, handler.getCountry)
	add(e, api.OpCountryDestinations, handler.listDestinations)
	add(e, api.OpGetDestination, handler.getDestination)
	add(e, api.OpRestaurants, handler.listRestaurants)
	add(e, api.OpCulturalSites, handler.listCulturalSites)
	add(e, api.OpSearch, handler.search)
}

// add registers a handler through the shared route registry so the server
// cannot diverge from the paths the client builds.
func add(e *echo.Echo, op string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	r := api.Get(op)
	e.Add(r.Method, r.Path, h, m...)
}

func pathID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *CatalogHandler) listCountries(c echo.Context) error {
	countries, err := h.catalog.ListCountries(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("failed to fetch countries"))
	}
	return c.JSON(http.StatusOK, countries)
}

func (h *CatalogHandler) getCountry(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, util.Error("invalid country id"))
	}

	country, err := h.catalog.GetCountry(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCountryNotFound) {
			return c.JSON(http.StatusNotFound, util.Error("Country not found"))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("failed to fetch country"))
	}
	return c.JSON(http.StatusOK, country)
}

func (h *CatalogHandler) listDestinations(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, util.Error("invalid country id"))
	}

	destinations, err := h.catalog.ListDestinations(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCountryNotFound) {
			return c.JSON(http.StatusNotFound, util.Error("Country not found"))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("failed to fetch destinations"))
	}
	return c.JSON(http.StatusOK, destinations)
}

func (h *CatalogHandler) getDestination(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, util.Error("invalid destination id"))
	}

	dest, err := h.catalog.GetDestination(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrDestinationNotFound) {
			return c.JSON(http.StatusNotFound, util.Error("Destination not found"))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("failed to fetch destination"))
	}
	return c.JSON(http.StatusOK, dest)
}

func (h *CatalogHandler) listRestaurants(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, util.Error("invalid destination id"))
	}

	restaurants, err := h.catalog.ListRestaurants(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrDestinationNotFound) {
			return c.JSON(http.StatusNotFound, util.Error("Destination not found"))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("failed to fetch restaurants"))
	}
	return c.JSON(http.StatusOK, restaurants)
}

func (h *CatalogHandler) listCulturalSites(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, util.Error("invalid destination id"))
	}

	sites, err := h.catalog.ListCulturalSites(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrDestinationNotFound) {
			return c.JSON(http.StatusNotFound, util.Error("Destination not found"))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("failed to fetch cultural sites"))
	}
	return c.JSON(http.StatusOK, sites)
}

func (h *CatalogHandler) search(c echo.Context) error {
	result, err := h.catalog.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("search failed"))
	}
	return c.JSON(http.StatusOK, result)
}
