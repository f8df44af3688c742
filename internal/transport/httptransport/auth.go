package httptransport

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

const tokenContextKey = "session_token"

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, token string) error
	IsAuthenticated(ctx context.Context, token string) bool
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthHandler - вход/выход для заглушки авторизации.
type AuthHandler struct {
	logger  *slog.Logger
	svc     AuthService
	timeout time.Duration
}

func NewAuthHandler(logger *slog.Logger, svc AuthService, timeout time.Duration) *AuthHandler {
	if logger == nil {
		log.Fatal("nil logger")
	}
	if svc == nil {
		log.Fatal("nil service")
	}
	if timeout <= 0 {
		timeout = time.Second * 3
	}
	return &AuthHandler{logger: logger, svc: svc, timeout: timeout}
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad_request"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	token, err := h.svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		return writeError(c, h.logger, "Login", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	token, _ := c.Get(tokenContextKey).(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.svc.Logout(ctx, token); err != nil {
		return writeError(c, h.logger, "Logout", err)
	}
	return c.NoContent(http.StatusNoContent)
}

// RequireSession - пропускает запрос только с действующим Bearer-токеном.
func RequireSession(svc AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if token == "" || !svc.IsAuthenticated(c.Request().Context(), token) {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
			}
			c.Set(tokenContextKey, token)
			return next(c)
		}
	}
}

func bearerToken(header string) string {
	const prefix = "bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
