package robinhood

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"

	"github.com/MKhiriev/go-robinhood/models"
)

// Accounts lists the user's brokerage accounts.
func (c *Client) Accounts(ctx context.Context) (models.Page[models.Account], error) {
	return getJSON[models.Page[models.Account]](ctx, c, opAccounts, endpointAccounts, nil)
}

// User returns the authenticated user's profile.
func (c *Client) User(ctx context.Context) (models.User, error) {
	return getJSON[models.User](ctx, c, opUser, endpointUser, nil)
}

// InvestmentProfile returns the user's investment profile.
func (c *Client) InvestmentProfile(ctx context.Context) (models.InvestmentProfile, error) {
	return getJSON[models.InvestmentProfile](ctx, c, opInvestmentProfile, endpointInvestmentProfile, nil)
}

func (c *Client) UserBasicInfo(ctx context.Context) (json.RawMessage, error) {
	return c.getRaw(ctx, opUserBasicInfo, endpointUserBasic)
}

func (c *Client) UserAdditionalInfo(ctx context.Context) (json.RawMessage, error) {
	return c.getRaw(ctx, opUserAdditionalInfo, endpointUserAdditional)
}

func (c *Client) UserEmployment(ctx context.Context) (json.RawMessage, error) {
	return c.getRaw(ctx, opUserEmployment, endpointUserEmployment)
}

// Dividends lists dividends paid or scheduled on the user's positions.
func (c *Client) Dividends(ctx context.Context) (models.Page[models.Dividend], error) {
	return getJSON[models.Page[models.Dividend]](ctx, c, opDividends, endpointDividends, nil)
}

// Positions lists every position, including closed ones.
func (c *Client) Positions(ctx context.Context) (models.Page[models.Position], error) {
	return getJSON[models.Page[models.Position]](ctx, c, opPositions, endpointPositions, nil)
}

// NonZeroPositions lists positions with a non-zero quantity.
func (c *Client) NonZeroPositions(ctx context.Context) (models.Page[models.Position], error) {
	return getJSON[models.Page[models.Position]](ctx, c, opPositions, endpointPositions, url.Values{"nonzero": {"true"}})
}

// Watchlists lists the user's watchlists.
func (c *Client) Watchlists(ctx context.Context) (models.Page[models.Watchlist], error) {
	return getJSON[models.Page[models.Watchlist]](ctx, c, opWatchlists, endpointWatchlists, nil)
}

// CreateWatchList creates an empty watchlist called name.
func (c *Client) CreateWatchList(ctx context.Context, name string) (models.Watchlist, error) {
	if name == "" {
		return models.Watchlist{}, errors.New("empty watchlist name")
	}
	return postJSON[models.Watchlist](ctx, c, opCreateWatchlist, endpointWatchlists, map[string]string{"name": name})
}

func (c *Client) ACHRelationships(ctx context.Context) (models.Page[json.RawMessage], error) {
	return getJSON[models.Page[json.RawMessage]](ctx, c, opACHRelationships, endpointACHRelationships, nil)
}

func (c *Client) ACHTransfers(ctx context.Context) (models.Page[json.RawMessage], error) {
	return getJSON[models.Page[json.RawMessage]](ctx, c, opACHTransfers, endpointACHTransfers, nil)
}

func (c *Client) Documents(ctx context.Context) (models.Page[json.RawMessage], error) {
	return getJSON[models.Page[json.RawMessage]](ctx, c, opDocuments, endpointDocuments, nil)
}

func (c *Client) Notifications(ctx context.Context) (models.Page[json.RawMessage], error) {
	return getJSON[models.Page[json.RawMessage]](ctx, c, opNotifications, endpointNotifications, nil)
}

func (c *Client) getRaw(ctx context.Context, op, path string) (json.RawMessage, error) {
	resp, err := c.get(ctx, op, path, nil)
	if err != nil {
		return nil, err
	}
	return raw(resp), nil
}
