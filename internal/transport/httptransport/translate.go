package httptransport

import (
	"errors"
	"log/slog"
	"net/http"

	derrors "github.com/NastyaGoryachaya/crypto-tracker/internal/errors"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/ports/errcode"
	"github.com/labstack/echo/v4"
)

func FromServiceError(err error) errcode.Code {
	switch {
	case errors.Is(err, derrors.ErrCoinNotFound):
		return errcode.NotFoundCoin
	case errors.Is(err, derrors.ErrMarketUnavailable):
		return errcode.MarketUnavailable
	case errors.Is(err, derrors.ErrInvalidCredentials):
		return errcode.InvalidCredentials
	case errors.Is(err, derrors.ErrUnauthorized):
		return errcode.Unauthorized
	case errors.Is(err, derrors.ErrBadRequest):
		return errcode.BadRequest
	default:
		return errcode.Internal
	}
}

// statusFor - HTTP-статус и snake_case тело ошибки для кода
func statusFor(code errcode.Code) (int, string) {
	switch code {
	case errcode.NotFoundCoin:
		return http.StatusNotFound, "coin_not_found"
	case errcode.MarketUnavailable:
		return http.StatusServiceUnavailable, "market_unavailable"
	case errcode.InvalidCredentials:
		return http.StatusUnauthorized, "invalid_credentials"
	case errcode.Unauthorized:
		return http.StatusUnauthorized, "unauthorized"
	case errcode.BadRequest:
		return http.StatusBadRequest, "bad_request"
	default:
		return http.StatusInternalServerError, "internal_server_error"
	}
}

func writeError(c echo.Context, logger *slog.Logger, op string, err error) error {
	code := FromServiceError(err)
	status, msg := statusFor(code)
	if code == errcode.Internal {
		logger.Error("request failed",
			slog.String("op", op),
			slog.String("error", err.Error()),
		)
	}
	return c.JSON(status, echo.Map{"error": msg})
}
