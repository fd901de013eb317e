package errorx

import "net/http"

var (
	ErrNoCredentials      = Error{NoCredentials, "no bearer token configured"}
	ErrNoWriteCredentials = Error{NoWriteCredentials, "no write credentials configured"}
	ErrUnauthorized       = Error{Unauthorized, "credentials rejected by API"}
	ErrNotFound           = Error{NotFound, "not found"}
	ErrRateLimited        = Error{TooManyRequests, "rate limited"}
	ErrTransport          = Error{Transport, "transport failure"}
	ErrBadResponse        = Error{BadResponse, "bad response"}
	ErrReplyTooLong       = Error{ReplyTooLong, "reply text must be 280 characters or less"}
)

// FromStatus maps a non-2xx HTTP status code to the matching error value.
func FromStatus(status int) Error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return ErrBadResponse
	}
}
