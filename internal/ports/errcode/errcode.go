package errcode

type Code string

const (
	NotFoundCoin      Code = "COIN_NOT_FOUND"
	MarketUnavailable Code = "MARKET_UNAVAILABLE"

	InvalidCredentials Code = "INVALID_CREDENTIALS"
	Unauthorized       Code = "UNAUTHORIZED"

	BadRequest Code = "BAD_REQUEST"
	Internal   Code = "INTERNAL_ERROR"
)
