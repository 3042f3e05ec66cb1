package models

import "github.com/shopspring/decimal"

// Quote is a real-time quote for a single symbol.
type Quote struct {
	Symbol                      string              `json:"symbol"`
	AskPrice                    decimal.Decimal     `json:"ask_price"`
	AskSize                     int64               `json:"ask_size"`
	BidPrice                    decimal.Decimal     `json:"bid_price"`
	BidSize                     int64               `json:"bid_size"`
	LastTradePrice              decimal.Decimal     `json:"last_trade_price"`
	LastExtendedHoursTradePrice decimal.NullDecimal `json:"last_extended_hours_trade_price"`
	PreviousClose               decimal.Decimal     `json:"previous_close"`
	AdjustedPreviousClose       decimal.Decimal     `json:"adjusted_previous_close"`
	PreviousCloseDate           string              `json:"previous_close_date"`
	TradingHalted               bool                `json:"trading_halted"`
	HasTraded                   bool                `json:"has_traded"`
	LastTradePriceSource        string              `json:"last_trade_price_source"`
	UpdatedAt                   string              `json:"updated_at"`

	// Instrument is the instrument resource URL; its fifth path segment is
	// the instrument UUID.
	Instrument string `json:"instrument"`
}

// Popularity is the number of open positions held in an instrument across
// the platform.
type Popularity struct {
	Instrument       string `json:"instrument"`
	NumOpenPositions int64  `json:"num_open_positions"`
}
