package robinhood

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-robinhood/internal/utils"
	"github.com/MKhiriev/go-robinhood/models"
)

// Status sentinels matched by [*StatusError] through errors.Is.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

// Local and authentication failures.
var (
	// ErrAuthentication is matched by [*AuthError].
	ErrAuthentication = errors.New("authentication failed")

	// ErrNoAccount is returned by order placement when no default account
	// could be resolved for the session.
	ErrNoAccount = errors.New("no default account resolved")

	// ErrNoQuoteResults is returned by Popularity when the quote lookup
	// returns an empty result set.
	ErrNoQuoteResults = errors.New("quote lookup returned no results")

	// ErrMalformedInstrumentURL is returned by Popularity when the quoted
	// instrument URL carries no instrument UUID.
	ErrMalformedInstrumentURL = utils.ErrMalformedInstrumentURL

	// ErrEmptySymbol is returned when a symbol-taking operation gets none.
	ErrEmptySymbol = errors.New("empty symbol")

	// ErrInvalidOrder wraps local validation failures of PlaceOrder.
	ErrInvalidOrder = errors.New("invalid order")

	ErrOrderAlreadyCancelled = errors.New("order already cancelled")
	ErrOrderNotCancellable   = errors.New("order cannot be cancelled")
)

// StatusError is a non-2xx response. Body is the raw response body.
type StatusError struct {
	StatusCode int
	Body       []byte

	sentinel error
}

func (e *StatusError) Error() string {
	body := strings.TrimSpace(string(e.Body))
	if e.sentinel != nil {
		return fmt.Sprintf("%s: http %d: %s", e.sentinel, e.StatusCode, body)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, body)
}

// Unwrap returns the status sentinel, or nil for unmapped codes.
func (e *StatusError) Unwrap() error {
	return e.sentinel
}

// AuthError is returned by Login when the token endpoint answers without a
// token and without requesting MFA.
type AuthError struct {
	StatusCode int
	Body       []byte
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("token not found in login response (http %d): %s", e.StatusCode, strings.TrimSpace(string(e.Body)))
}

func (e *AuthError) Unwrap() error {
	return ErrAuthentication
}

// OrderNotCancellableError is returned by CancelOrder when the target has no
// cancellation link. Order is the order the caller passed in, zero for
// ID/URL targets.
type OrderNotCancellableError struct {
	Reason error
	Order  models.Order
}

func (e *OrderNotCancellableError) Error() string {
	if e.Order.ID != "" {
		return fmt.Sprintf("%s: %s", e.Reason, e.Order.ID)
	}
	return e.Reason.Error()
}

func (e *OrderNotCancellableError) Unwrap() error {
	return e.Reason
}
