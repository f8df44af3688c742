package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewServer - echo с логированием запросов в slog, /healthz и /api.
func NewServer(logger *slog.Logger, market *MarketHandler, auth *AuthHandler, sessions AuthService) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.Any("err", v.Error))
				logger.LogAttrs(context.Background(), slog.LevelError, "http request", attrs...)
				return nil
			}
			logger.LogAttrs(context.Background(), slog.LevelDebug, "http request", attrs...)
			return nil
		},
	}))

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	api := e.Group("/api")
	api.POST("/login", auth.Login)

	protected := api.Group("", RequireSession(sessions))
	protected.POST("/logout", auth.Logout)
	market.RegisterRoutes(protected)

	return e
}
