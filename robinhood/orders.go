package robinhood

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/MKhiriev/go-robinhood/models"
)

// Orders fetches orders. models.OrderID returns a page holding that single
// order; models.OrderFilter lists matching orders and always sends
// updated_at[gte].
func (c *Client) Orders(ctx context.Context, q models.OrderQuery) (models.Page[models.Order], error) {
	switch q := q.(type) {
	case models.OrderID:
		if q == "" {
			return models.Page[models.Order]{}, errors.New("empty order id")
		}
		order, err := getJSON[models.Order](ctx, c, opOrders, endpointOrders+url.PathEscape(string(q))+"/", nil)
		if err != nil {
			return models.Page[models.Order]{}, err
		}
		return models.Page[models.Order]{Results: []models.Order{order}}, nil
	case models.OrderFilter:
		return getJSON[models.Page[models.Order]](ctx, c, opOrders, endpointOrders, q.Values())
	default:
		return models.Page[models.Order]{}, fmt.Errorf("unsupported order query %T", q)
	}
}

// CancelOrder requests cancellation of an order and returns the raw response
// body.
//
// models.CancelByID posts to orders/{id}/cancel/. models.CancelByURL and
// models.CancelByOrder post to the cancellation link verbatim. An order
// without a link fails locally with *OrderNotCancellableError.
func (c *Client) CancelOrder(ctx context.Context, target models.CancelTarget) (json.RawMessage, error) {
	var cancelURL string
	switch t := target.(type) {
	case models.CancelByID:
		if t != "" {
			cancelURL = endpointOrders + url.PathEscape(string(t)) + "/cancel/"
		}
	case models.CancelByURL:
		cancelURL = string(t)
	case models.CancelByOrder:
		order := models.Order(t)
		if cancelURL = order.CancelURL(); cancelURL == "" {
			reason := ErrOrderNotCancellable
			if order.State == models.OrderStateCancelled {
				reason = ErrOrderAlreadyCancelled
			}
			return nil, &OrderNotCancellableError{Reason: reason, Order: order}
		}
	default:
		return nil, fmt.Errorf("unsupported cancel target %T", target)
	}

	if cancelURL == "" {
		return nil, &OrderNotCancellableError{Reason: ErrOrderNotCancellable}
	}

	resp, err := c.post(ctx, opCancelOrder, cancelURL, nil)
	if err != nil {
		return nil, err
	}
	return raw(resp), nil
}

// PlaceOrder submits an order against the default account. With a
// pre-supplied token the account is resolved on first use; ErrNoAccount is
// returned when the user has none. Malformed requests fail locally with
// ErrInvalidOrder.
func (c *Client) PlaceOrder(ctx context.Context, order models.OrderRequest) (models.Order, error) {
	if err := c.validator.Validate(ctx, order); err != nil {
		return models.Order{}, fmt.Errorf("%w: %w", ErrInvalidOrder, err)
	}

	account, err := c.accountForOrder(ctx)
	if err != nil {
		return models.Order{}, err
	}
	return postJSON[models.Order](ctx, c, opPlaceOrder, endpointOrders, order.Form(account))
}

// PlaceBuyOrder is PlaceOrder with the side set to buy.
func (c *Client) PlaceBuyOrder(ctx context.Context, order models.OrderRequest) (models.Order, error) {
	order.Transaction = models.SideBuy
	return c.PlaceOrder(ctx, order)
}

// PlaceSellOrder is PlaceOrder with the side set to sell.
func (c *Client) PlaceSellOrder(ctx context.Context, order models.OrderRequest) (models.Order, error) {
	order.Transaction = models.SideSell
	return c.PlaceOrder(ctx, order)
}
