package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/usermgmt/user-service/internal/api/metrics"
	"github.com/usermgmt/user-service/internal/core/domain"
	"github.com/usermgmt/user-service/internal/core/ports"
)

// AuthHandler owns the login/logout flow. Authentication failures are
// answered here directly instead of flowing through the API error handler:
// credential errors belong to this channel only.
type AuthHandler struct {
	authService ports.AuthService
	sessions    ports.SessionStore
	cookieName  string
}

func NewAuthHandler(authService ports.AuthService, sessions ports.SessionStore, cookieName string) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions, cookieName: cookieName}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// loginResponse is the success body emitted on authentication. The field
// names and nesting are fixed for existing clients; role carries the granted
// authorities, always exactly one entry.
type loginResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Message   string    `json:"message"`
	Username  string    `json:"username"`
	Role      []string  `json:"role"`
}

// Login handles POST /login.
//
// @Summary      Authenticate with username and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	principal, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrCredentialsLookup) || errors.Is(err, domain.ErrInvalidPassword) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
		}
		return err
	}

	session, err := h.sessions.Create(c.Request().Context(), principal.Username, principal.Authorities[0])
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    session.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		Timestamp: time.Now().UTC(),
		Status:    http.StatusOK,
		Message:   "Authentication successful",
		Username:  principal.Username,
		Role:      principal.Authorities,
	})
}

// Logout handles POST /logout.
//
// @Summary      Terminate the current session
// @Tags         auth
// @Success      204
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(h.cookieName); err == nil && cookie.Value != "" {
		if err := h.sessions.Delete(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	return c.NoContent(http.StatusNoContent)
}
