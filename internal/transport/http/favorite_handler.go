package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tastetrek/taste-trek-api/internal/api"
	"github.com/tastetrek/taste-trek-api/internal/domain"
	"github.com/tastetrek/taste-trek-api/internal/service"
	"github.com/tastetrek/taste-trek-api/internal/util"
)

type FavoriteHandler struct {
	favorites *service.FavoriteService
}

func RegisterFavorites(e *echo.Echo, auth *service.AuthService, favorites *service.FavoriteService) {
	handler := &FavoriteHandler{favorites: favorites}

	add(e, api.OpListFavorites, handler.listFavorites, OptionalAuth(auth))
	add(e, api.OpCreateFavorite, handler.createFavorite, RequireAuth(auth))
	add(e, api.OpDeleteFavorite, handler.deleteFavorite, RequireAuth(auth))
	add(e, api.OpCheckFavorite, handler.checkFavorite, OptionalAuth(auth))
}

// listFavorites returns an empty list for anonymous callers so a client with
// only local favorites gets a well-formed response.
func (h *FavoriteHandler) listFavorites(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusOK, []domain.FavoriteWithItem{})
	}

	favorites, err := h.favorites.List(c.Request().Context(), user.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("failed to fetch favorites"))
	}
	if favorites == nil {
		favorites = []domain.FavoriteWithItem{}
	}
	return c.JSON(http.StatusOK, favorites)
}

func (h *FavoriteHandler) createFavorite(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	var input domain.FavoriteInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if err := input.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	favorite, err := h.favorites.Save(c.Request().Context(), user.ID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCountryNotFound), errors.Is(err, service.ErrDestinationNotFound):
			return c.JSON(http.StatusNotFound, util.Error(err.Error()))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("failed to save favorite"))
		}
	}
	return c.JSON(http.StatusCreated, favorite)
}

func (h *FavoriteHandler) deleteFavorite(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	id, valid := pathID(c, "id")
	if !valid {
		return c.JSON(http.StatusBadRequest, util.Error("invalid favorite id"))
	}

	if err := h.favorites.Remove(c.Request().Context(), id, user.ID); err != nil {
		if errors.Is(err, service.ErrFavoriteNotFound) {
			return c.JSON(http.StatusNotFound, util.Error("Favorite not found"))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("failed to remove favorite"))
	}
	return c.NoContent(http.StatusNoContent)
}

// checkFavorite answers {isFavorite, favoriteId?}. Anonymous callers always
// get false, the client overlays its local state on top.
func (h *FavoriteHandler) checkFavorite(c echo.Context) error {
	itemType := c.Param("type")
	if itemType != domain.FavoriteItemCountry && itemType != domain.FavoriteItemDestination {
		return c.JSON(http.StatusBadRequest, util.Error("itemType must be 'country' or 'destination'"))
	}
	itemID, valid := pathID(c, "id")
	if !valid {
		return c.JSON(http.StatusBadRequest, util.Error("invalid item id"))
	}

	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusOK, util.Envelope{"isFavorite": false})
	}

	favorite, err := h.favorites.CheckItem(c.Request().Context(), user.ID, itemType, itemID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("failed to check favorite"))
	}
	if favorite == nil {
		return c.JSON(http.StatusOK, util.Envelope{"isFavorite": false})
	}
	return c.JSON(http.StatusOK, util.Envelope{"isFavorite": true, "favoriteId": favorite.ID})
}
