package robinhood

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-robinhood/models"
)

func TestStatusError_Error(t *testing.T) {
	err := &StatusError{StatusCode: 404, Body: []byte("{\"detail\":\"Not found.\"}\n"), sentinel: ErrNotFound}
	assert.Equal(t, `not found: http 404: {"detail":"Not found."}`, err.Error())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrUnauthorized)
}

func TestAuthError(t *testing.T) {
	err := &AuthError{StatusCode: 400, Body: []byte(`{"non_field_errors":["Unable to log in"]}`)}
	assert.ErrorIs(t, err, ErrAuthentication)
	assert.Contains(t, err.Error(), "http 400")
}

func TestOrderNotCancellableError(t *testing.T) {
	withOrder := &OrderNotCancellableError{Reason: ErrOrderAlreadyCancelled, Order: models.Order{ID: "ord-1"}}
	assert.Equal(t, "order already cancelled: ord-1", withOrder.Error())
	assert.True(t, errors.Is(withOrder, ErrOrderAlreadyCancelled))

	bare := &OrderNotCancellableError{Reason: ErrOrderNotCancellable}
	assert.Equal(t, "order cannot be cancelled", bare.Error())
}

func TestStatusSentinel_Unmapped(t *testing.T) {
	assert.Nil(t, statusSentinel(418))
	assert.Nil(t, statusSentinel(503))
}
