package errors

import "errors"

var (
	ErrCoinNotFound       = errors.New("coin not found")
	ErrMarketUnavailable  = errors.New("market data unavailable")
	ErrBadRequest         = errors.New("bad request")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInternal           = errors.New("internal error")
)
