// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Side is the direction of an order.
type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// TimeInForce controls how long an order stays working.
type TimeInForce string

const (
	TimeInForceGFD TimeInForce = "gfd" // good for day
	TimeInForceGTC TimeInForce = "gtc" // good till cancelled
	TimeInForceIOC TimeInForce = "ioc" // immediate or cancel
	TimeInForceOPG TimeInForce = "opg" // market on open
)

// Trigger selects when an order is released to the market.
type Trigger string

const (
	TriggerImmediate Trigger = "immediate"
	TriggerStop      Trigger = "stop"
)

// OrderType is the pricing type of an order.
type OrderType string

const (
	OrderTypeMarket OrderType = "market"
	OrderTypeLimit  OrderType = "limit"
)

// OrderRequest describes a new order. Zero-valued Time, Trigger and Type fall
// back to good-for-day, immediate and market.
type OrderRequest struct {
	// Instrument supplies the instrument URL and symbol sent with the order.
	Instrument Instrument

	Quantity decimal.Decimal

	// BidPrice is sent as the order's limit price when valid.
	BidPrice  decimal.NullDecimal
	StopPrice decimal.NullDecimal

	// Transaction is the order side. PlaceBuyOrder and PlaceSellOrder
	// overwrite it.
	Transaction Side

	Time    TimeInForce
	Trigger Trigger
	Type    OrderType
}

// Form renders the order as the form fields expected by the orders
// endpoint. Optional prices are omitted when unset.
func (r OrderRequest) Form(account string) map[string]string {
	form := map[string]string{
		"account":       account,
		"instrument":    r.Instrument.URL,
		"quantity":      r.Quantity.String(),
		"side":          string(r.Transaction),
		"symbol":        strings.ToUpper(r.Instrument.Symbol),
		"time_in_force": string(TimeInForceGFD),
		"trigger":       string(TriggerImmediate),
		"type":          string(OrderTypeMarket),
	}
	if r.BidPrice.Valid {
		form["price"] = r.BidPrice.Decimal.String()
	}
	if r.StopPrice.Valid {
		form["stop_price"] = r.StopPrice.Decimal.String()
	}
	if r.Time != "" {
		form["time_in_force"] = string(r.Time)
	}
	if r.Trigger != "" {
		form["trigger"] = string(r.Trigger)
	}
	if r.Type != "" {
		form["type"] = string(r.Type)
	}
	return form
}

// OrderQuery selects which orders to fetch. It is satisfied by OrderID and
// OrderFilter only.
type OrderQuery interface {
	isOrderQuery()
}

// OrderID fetches a single order.
type OrderID string

func (OrderID) isOrderQuery() {}

// OrderByID is a convenience constructor for an OrderID query.
func OrderByID(id string) OrderQuery {
	return OrderID(id)
}

// OrderFilter lists orders matching a set of filters.
type OrderFilter struct {
	// UpdatedAt is sent as updated_at[gte]. The key is always present.
	UpdatedAt string

	// Instrument restricts the listing to one instrument URL.
	Instrument string

	// Params carries any additional upstream filters (status, cursor, ...).
	Params map[string]string
}

func (OrderFilter) isOrderQuery() {}

// Values renders the filter as query parameters.
func (f OrderFilter) Values() url.Values {
	v := url.Values{}
	for k, val := range f.Params {
		v.Set(k, val)
	}
	if f.Instrument != "" {
		v.Set("instrument", f.Instrument)
	}
	v.Set("updated_at[gte]", f.UpdatedAt)
	return v
}

// CancelTarget identifies an order to cancel. It is satisfied by
// CancelByID, CancelByURL and CancelByOrder only.
type CancelTarget interface {
	isCancelTarget()
}

// CancelByID cancels by order ID through the orders endpoint.
type CancelByID string

func (CancelByID) isCancelTarget() {}

// CancelByURL posts to a cancellation link verbatim.
type CancelByURL string

func (CancelByURL) isCancelTarget() {}

// CancelByOrder cancels through the order's own hypermedia cancel link.
type CancelByOrder Order

func (CancelByOrder) isCancelTarget() {}

// EarningsQuery selects earnings reports. Exactly one filter is sent, in
// priority order Instrument, Symbol, Range.
type EarningsQuery struct {
	Instrument string
	Symbol     string

	// Range is a look-ahead window in days; zero means one day.
	Range int
}

// Values renders the single query parameter for the query.
func (q EarningsQuery) Values() url.Values {
	v := url.Values{}
	switch {
	case q.Instrument != "":
		v.Set("instrument", q.Instrument)
	case q.Symbol != "":
		v.Set("symbol", q.Symbol)
	default:
		days := q.Range
		if days <= 0 {
			days = 1
		}
		v.Set("range", strconv.Itoa(days)+"day")
	}
	return v
}
