package httptransport

import (
	"errors"
	"fmt"
	"testing"

	derrors "github.com/NastyaGoryachaya/crypto-tracker/internal/errors"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/ports/errcode"
)

func TestFromServiceError(t *testing.T) {
	tests := []struct {
		err  error
		want errcode.Code
	}{
		{err: derrors.ErrCoinNotFound, want: errcode.NotFoundCoin},
		{err: fmt.Errorf("coin %q: %w", "x", derrors.ErrCoinNotFound), want: errcode.NotFoundCoin},
		{err: derrors.ErrMarketUnavailable, want: errcode.MarketUnavailable},
		{err: derrors.ErrInvalidCredentials, want: errcode.InvalidCredentials},
		{err: derrors.ErrUnauthorized, want: errcode.Unauthorized},
		{err: fmt.Errorf("%w: price_min", derrors.ErrBadRequest), want: errcode.BadRequest},
		{err: errors.New("boom"), want: errcode.Internal},
	}
	for _, tt := range tests {
		if got := FromServiceError(tt.err); got != tt.want {
			t.Errorf("FromServiceError(%v) = %s, want %s", tt.err, got, tt.want)
		}
	}
}

func TestBearerToken(t *testing.T) {
	tests := map[string]string{
		"Bearer abc":   "abc",
		"bearer  abc ": "abc",
		"Basic abc":    "",
		"Bearer":       "",
		"":             "",
	}
	for in, want := range tests {
		if got := bearerToken(in); got != want {
			t.Errorf("bearerToken(%q) = %q, want %q", in, got, want)
		}
	}
}
