package models

import "github.com/shopspring/decimal"

// Order states reported by the API.
const (
	OrderStateQueued      = "queued"
	OrderStateUnconfirmed = "unconfirmed"
	OrderStateConfirmed   = "confirmed"
	OrderStatePartial     = "partially_filled"
	OrderStateFilled      = "filled"
	OrderStateRejected    = "rejected"
	OrderStateCancelled   = "cancelled"
	OrderStateFailed      = "failed"
)

// Order is a placed order. Cancel is the hypermedia cancellation link and is
// nil once the order can no longer be cancelled.
type Order struct {
	ID                 string              `json:"id"`
	URL                string              `json:"url"`
	Account            string              `json:"account"`
	Instrument         string              `json:"instrument"`
	Position           string              `json:"position"`
	Cancel             *string             `json:"cancel"`
	State              string              `json:"state"`
	Side               Side                `json:"side"`
	Type               OrderType           `json:"type"`
	Trigger            Trigger             `json:"trigger"`
	TimeInForce        TimeInForce         `json:"time_in_force"`
	Price              decimal.NullDecimal `json:"price"`
	StopPrice          decimal.NullDecimal `json:"stop_price"`
	Quantity           decimal.Decimal     `json:"quantity"`
	CumulativeQuantity decimal.Decimal     `json:"cumulative_quantity"`
	AveragePrice       decimal.NullDecimal `json:"average_price"`
	Fees               decimal.Decimal     `json:"fees"`
	RejectReason       *string             `json:"reject_reason,omitempty"`
	RefID              *string             `json:"ref_id,omitempty"`
	Executions         []Execution         `json:"executions"`
	CreatedAt          string              `json:"created_at"`
	UpdatedAt          string              `json:"updated_at"`
	LastTransactionAt  string              `json:"last_transaction_at"`
}

// CancelURL returns the cancellation link, or "" if there is none.
func (o Order) CancelURL() string {
	if o.Cancel == nil {
		return ""
	}
	return *o.Cancel
}

// Execution is a (partial) fill of an order.
type Execution struct {
	ID             string          `json:"id"`
	Price          decimal.Decimal `json:"price"`
	Quantity       decimal.Decimal `json:"quantity"`
	SettlementDate string          `json:"settlement_date"`
	Timestamp      string          `json:"timestamp"`
}
