package models

import "github.com/shopspring/decimal"

// Market is an exchange the brokerage routes orders to.
type Market struct {
	URL          string `json:"url"`
	TodaysHours  string `json:"todays_hours"`
	MIC          string `json:"mic"`
	OperatingMIC string `json:"operating_mic"`
	Acronym      string `json:"acronym"`
	Name         string `json:"name"`
	City         string `json:"city"`
	Country      string `json:"country"`
	Timezone     string `json:"timezone"`
	Website      string `json:"website"`
}

// Mover is an S&P 500 constituent returned by the movers endpoints.
type Mover struct {
	InstrumentURL string        `json:"instrument_url"`
	Symbol        string        `json:"symbol"`
	Description   string        `json:"description"`
	PriceMovement PriceMovement `json:"price_movement"`
	UpdatedAt     string        `json:"updated_at"`
}

// PriceMovement is the regular-session move of a Mover.
type PriceMovement struct {
	MarketHoursLastMovementPct decimal.Decimal `json:"market_hours_last_movement_pct"`
	MarketHoursLastPrice       decimal.Decimal `json:"market_hours_last_price"`
}

// NewsItem is an article linked to a symbol.
type NewsItem struct {
	UUID            string `json:"uuid"`
	URL             string `json:"url"`
	Title           string `json:"title"`
	Source          string `json:"source"`
	APISource       string `json:"api_source"`
	Author          string `json:"author"`
	Summary         string `json:"summary"`
	Instrument      string `json:"instrument"`
	PreviewImageURL string `json:"preview_image_url"`
	RelayURL        string `json:"relay_url"`
	NumClicks       int64  `json:"num_clicks"`
	PublishedAt     string `json:"published_at"`
	UpdatedAt       string `json:"updated_at"`
}

// Tag is a curated collection of instruments (e.g. "top-movers").
type Tag struct {
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Instruments []string `json:"instruments"`
}

// Earnings is one quarterly earnings report.
type Earnings struct {
	Symbol     string `json:"symbol"`
	Instrument string `json:"instrument"`
	Year       int    `json:"year"`
	Quarter    int    `json:"quarter"`
	EPS        EPS    `json:"eps"`
	Report     Report `json:"report"`
	Call       *Call  `json:"call,omitempty"`
}

// EPS holds estimated and actual earnings per share.
type EPS struct {
	Estimate *string `json:"estimate,omitempty"`
	Actual   string  `json:"actual"`
}

// Report describes when the report is published.
type Report struct {
	Date     string `json:"date"`
	Timing   string `json:"timing"`
	Verified bool   `json:"verified"`
}

// Call is the earnings call schedule.
type Call struct {
	Datetime     string  `json:"datetime"`
	BroadcastURL *string `json:"broadcast_url,omitempty"`
	ReplayURL    *string `json:"replay_url,omitempty"`
}

// Historicals is a price history series for one symbol.
type Historicals struct {
	Quote       string       `json:"quote"`
	Symbol      string       `json:"symbol"`
	Interval    string       `json:"interval"`
	Span        string       `json:"span"`
	Bounds      string       `json:"bounds"`
	Instrument  string       `json:"instrument"`
	Historicals []Historical `json:"historicals"`
}

// Historical is a single OHLCV bar.
type Historical struct {
	BeginsAt     string          `json:"begins_at"`
	OpenPrice    decimal.Decimal `json:"open_price"`
	ClosePrice   decimal.Decimal `json:"close_price"`
	HighPrice    decimal.Decimal `json:"high_price"`
	LowPrice     decimal.Decimal `json:"low_price"`
	Volume       int64           `json:"volume"`
	Session      string          `json:"session"`
	Interpolated bool            `json:"interpolated"`
}
