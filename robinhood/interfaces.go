// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package robinhood

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-robinhood/models"
)

//go:generate mockgen -source=interfaces.go -destination=../internal/mock/api_mock.go -package=mock

// API is the full operation surface of [Client]. Consumers depend on it so
// that the session can be replaced by a mock in tests.
type API interface {
	// Login authenticates with the stored token or with credentials. A
	// response with MFARequired set means SetMfaCode must follow.
	Login(ctx context.Context) (models.LoginResponse, error)
	// SetMfaCode stores the one-time code and repeats Login.
	SetMfaCode(ctx context.Context, code string) (models.LoginResponse, error)
	// AuthToken returns the current token, or "" if none is known.
	AuthToken() string
	// SetAuthToken replaces the token and forgets the default account.
	SetAuthToken(token string)
	// ExpireToken revokes the token server side without clearing it locally.
	ExpireToken(ctx context.Context) error
	RequestPasswordReset(ctx context.Context, email string) error
	// DefaultAccountURL returns the account used for order placement.
	DefaultAccountURL() string

	QuoteData(ctx context.Context, symbols ...string) (models.Page[models.Quote], error)
	Instruments(ctx context.Context, symbol string) (models.Page[models.Instrument], error)
	Fundamentals(ctx context.Context, symbols ...string) (models.Page[models.Fundamentals], error)
	Popularity(ctx context.Context, symbol string) (models.Popularity, error)
	Splits(ctx context.Context, instrumentID string) (models.Page[models.Split], error)
	Historicals(ctx context.Context, symbol, interval, span string) (models.Historicals, error)
	Earnings(ctx context.Context, q models.EarningsQuery) (models.Page[models.Earnings], error)
	News(ctx context.Context, symbol string) (models.Page[models.NewsItem], error)
	Tag(ctx context.Context, tag string) (models.Tag, error)
	Markets(ctx context.Context) (models.Page[models.Market], error)
	SP500Up(ctx context.Context) (models.Page[models.Mover], error)
	SP500Down(ctx context.Context) (models.Page[models.Mover], error)

	Accounts(ctx context.Context) (models.Page[models.Account], error)
	User(ctx context.Context) (models.User, error)
	InvestmentProfile(ctx context.Context) (models.InvestmentProfile, error)
	UserBasicInfo(ctx context.Context) (json.RawMessage, error)
	UserAdditionalInfo(ctx context.Context) (json.RawMessage, error)
	UserEmployment(ctx context.Context) (json.RawMessage, error)
	Dividends(ctx context.Context) (models.Page[models.Dividend], error)
	Positions(ctx context.Context) (models.Page[models.Position], error)
	NonZeroPositions(ctx context.Context) (models.Page[models.Position], error)
	Watchlists(ctx context.Context) (models.Page[models.Watchlist], error)
	CreateWatchList(ctx context.Context, name string) (models.Watchlist, error)
	ACHRelationships(ctx context.Context) (models.Page[json.RawMessage], error)
	ACHTransfers(ctx context.Context) (models.Page[json.RawMessage], error)
	Documents(ctx context.Context) (models.Page[json.RawMessage], error)
	Notifications(ctx context.Context) (models.Page[json.RawMessage], error)

	// Orders fetches one order by ID or lists orders by filter.
	Orders(ctx context.Context, q models.OrderQuery) (models.Page[models.Order], error)
	// CancelOrder cancels by ID, by link, or through an order's cancel link.
	CancelOrder(ctx context.Context, target models.CancelTarget) (json.RawMessage, error)
	PlaceOrder(ctx context.Context, order models.OrderRequest) (models.Order, error)
	PlaceBuyOrder(ctx context.Context, order models.OrderRequest) (models.Order, error)
	PlaceSellOrder(ctx context.Context, order models.OrderRequest) (models.Order, error)

	// URL fetches an absolute link returned by the API.
	URL(ctx context.Context, fullURL string) (json.RawMessage, error)
}
