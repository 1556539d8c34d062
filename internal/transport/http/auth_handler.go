package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tastetrek/taste-trek-api/internal/api"
	"github.com/tastetrek/taste-trek-api/internal/service"
	"github.com/tastetrek/taste-trek-api/internal/util"
)

type AuthHandler struct {
	auth *service.AuthService
}

// RegisterAuth wires the session endpoint always, and the provider flow only
// when an identity provider is configured.
func RegisterAuth(e *echo.Echo, auth *service.AuthService) {
	handler := &AuthHandler{auth: auth}

	add(e, api.OpAuthUser, handler.currentUser, OptionalAuth(auth))

	if !auth.Enabled() {
		return
	}
	add(e, api.OpLogin, handler.login)
	add(e, api.OpCallback, handler.callback)
	add(e, api.OpLogout, handler.logout)
}

func (h *AuthHandler) login(c echo.Context) error {
	url, err := h.auth.LoginURL(c.Request().Host)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("failed to start login"))
	}
	return c.Redirect(http.StatusFound, url)
}

func (h *AuthHandler) callback(c echo.Context) error {
	code := c.QueryParam("code")
	state := c.QueryParam("state")
	if code == "" || state == "" {
		return c.JSON(http.StatusBadRequest, util.Error("missing code or state"))
	}

	session, _, err := h.auth.HandleCallback(c.Request().Context(), c.Request().Host, code, state)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, util.Error("login failed"))
	}

	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   c.Scheme() == "https",
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) logout(c echo.Context) error {
	if token := sessionToken(c); token != "" {
		_ = h.auth.Logout(c.Request().Context(), token)
	}

	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.Redirect(http.StatusFound, h.auth.LogoutURL(c.Request().Host))
}

func (h *AuthHandler) currentUser(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("Unauthorized"))
	}
	return c.JSON(http.StatusOK, user)
}
