package robinhood

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-robinhood/models"
)

const testInstrumentID = "450dfc6d-5510-4d40-abfb-f633b7d9be3e"

func TestJoinSymbols(t *testing.T) {
	tests := []struct {
		name    string
		symbols []string
		want    string
		wantErr bool
	}{
		{name: "single", symbols: []string{"aapl"}, want: "AAPL"},
		{name: "order kept", symbols: []string{"msft", "AAPL", " tsla "}, want: "MSFT,AAPL,TSLA"},
		{name: "none", symbols: nil, wantErr: true},
		{name: "blank entry", symbols: []string{"aapl", " "}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := joinSymbols(tt.symbols)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrEmptySymbol)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuoteData(t *testing.T) {
	f := newFakeUpstream(t)
	f.respond(http.MethodGet, "/quotes/", http.StatusOK,
		`{"results":[{"symbol":"AAPL","last_trade_price":"189.9800"},{"symbol":"MSFT","last_trade_price":"411.2200"}]}`)
	c := newTestClient(t, f)

	page, err := c.QuoteData(context.Background(), "aapl", "msft")
	require.NoError(t, err)
	require.Len(t, page.Results, 2)
	assert.Equal(t, "189.98", page.Results[0].LastTradePrice.String())
	assert.Equal(t, "AAPL,MSFT", f.last(t).Query.Get("symbols"))
}

func TestQuoteData_NoSymbols(t *testing.T) {
	f := newFakeUpstream(t)
	c := newTestClient(t, f)

	_, err := c.QuoteData(context.Background())
	assert.ErrorIs(t, err, ErrEmptySymbol)
	assert.Empty(t, f.all())
}

func TestInstrumentsAndFundamentals(t *testing.T) {
	f := newFakeUpstream(t)
	f.respond(http.MethodGet, "/instruments/", http.StatusOK, `{"results":[{"id":"`+testInstrumentID+`","symbol":"AAPL"}]}`)
	f.respond(http.MethodGet, "/fundamentals/", http.StatusOK, `{"results":[{"sector":"Electronic Technology"}]}`)
	c := newTestClient(t, f)
	ctx := context.Background()

	instruments, err := c.Instruments(ctx, "aapl")
	require.NoError(t, err)
	require.Len(t, instruments.Results, 1)
	assert.Equal(t, testInstrumentID, instruments.Results[0].ID)
	assert.Equal(t, "AAPL", f.last(t).Query.Get("query"))

	fundamentals, err := c.Fundamentals(ctx, "aapl", "goog")
	require.NoError(t, err)
	require.Len(t, fundamentals.Results, 1)
	assert.Equal(t, "AAPL,GOOG", f.last(t).Query.Get("symbols"))
}

func TestPopularity(t *testing.T) {
	f := newFakeUpstream(t)
	instrumentURL := f.URL + "/instruments/" + testInstrumentID + "/"
	f.respond(http.MethodGet, "/quotes/", http.StatusOK, `{"results":[{"symbol":"AAPL","instrument":"`+instrumentURL+`"}]}`)
	f.respond(http.MethodGet, "/instruments/{id}/popularity", http.StatusOK,
		`{"instrument":"`+instrumentURL+`","num_open_positions":421337}`)
	c := newTestClient(t, f)

	pop, err := c.Popularity(context.Background(), "aapl")
	require.NoError(t, err)
	assert.Equal(t, int64(421337), pop.NumOpenPositions)
	assert.Equal(t, "/instruments/"+testInstrumentID+"/popularity", f.last(t).Path)
}

// TestPopularity_FailsFast verifies that no popularity request is made when
// the instrument cannot be determined from the quote.
func TestPopularity_FailsFast(t *testing.T) {
	tests := []struct {
		name   string
		quotes string
		want   error
	}{
		{name: "no quote", quotes: `{"results":[]}`, want: ErrNoQuoteResults},
		{name: "malformed instrument", quotes: `{"results":[{"symbol":"AAPL","instrument":"not-a-url"}]}`, want: ErrMalformedInstrumentURL},
		{name: "instrument without uuid", quotes: `{"results":[{"symbol":"AAPL","instrument":"https://api.robinhood.com/instruments/latest/"}]}`, want: ErrMalformedInstrumentURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeUpstream(t)
			f.respond(http.MethodGet, "/quotes/", http.StatusOK, tt.quotes)
			c := newTestClient(t, f)

			_, err := c.Popularity(context.Background(), "aapl")
			assert.ErrorIs(t, err, tt.want)
			assert.Len(t, f.all(), 1)
		})
	}
}

func TestSplits(t *testing.T) {
	f := newFakeUpstream(t)
	f.respond(http.MethodGet, "/instruments/{id}/splits/", http.StatusOK, `{"results":[{"multiplier":"4.00000000","divisor":"1.00000000"}]}`)
	c := newTestClient(t, f)
	ctx := context.Background()

	page, err := c.Splits(ctx, testInstrumentID)
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "/instruments/"+testInstrumentID+"/splits/", f.last(t).Path)

	_, err = c.Splits(ctx, "../accounts")
	assert.Error(t, err)
	assert.Len(t, f.all(), 1)
}

func TestHistoricals(t *testing.T) {
	f := newFakeUpstream(t)
	f.respond(http.MethodGet, "/quotes/historicals/{symbol}/", http.StatusOK,
		`{"symbol":"AAPL","interval":"day","span":"year","historicals":[{"begins_at":"2024-01-02T00:00:00Z","close_price":"185.64","volume":82488700}]}`)
	c := newTestClient(t, f)

	h, err := c.Historicals(context.Background(), "aapl", "day", "year")
	require.NoError(t, err)
	require.Len(t, h.Historicals, 1)
	assert.Equal(t, int64(82488700), h.Historicals[0].Volume)

	last := f.last(t)
	assert.Equal(t, "/quotes/historicals/AAPL/", last.Path)
	assert.Equal(t, "day", last.Query.Get("interval"))
	assert.Equal(t, "year", last.Query.Get("span"))
}

// TestEarnings verifies that exactly one filter is sent, chosen by priority.
func TestEarnings(t *testing.T) {
	tests := []struct {
		name      string
		query     models.EarningsQuery
		wantKey   string
		wantValue string
	}{
		{
			name:      "instrument wins",
			query:     models.EarningsQuery{Instrument: "https://api.robinhood.com/instruments/x/", Symbol: "AAPL", Range: 7},
			wantKey:   "instrument",
			wantValue: "https://api.robinhood.com/instruments/x/",
		},
		{name: "symbol over range", query: models.EarningsQuery{Symbol: "AAPL", Range: 7}, wantKey: "symbol", wantValue: "AAPL"},
		{name: "range", query: models.EarningsQuery{Range: 7}, wantKey: "range", wantValue: "7day"},
		{name: "default range", query: models.EarningsQuery{}, wantKey: "range", wantValue: "1day"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeUpstream(t)
			f.respond(http.MethodGet, "/marketdata/earnings/", http.StatusOK, `{"results":[]}`)
			c := newTestClient(t, f)

			_, err := c.Earnings(context.Background(), tt.query)
			require.NoError(t, err)

			q := f.last(t).Query
			assert.Len(t, q, 1)
			assert.Equal(t, tt.wantValue, q.Get(tt.wantKey))
		})
	}
}

func TestNewsAndTag(t *testing.T) {
	f := newFakeUpstream(t)
	f.respond(http.MethodGet, "/midlands/news/{symbol}/", http.StatusOK, `{"results":[{"title":"Apple beats estimates"}]}`)
	f.respond(http.MethodGet, "/midlands/tags/tag/{tag}", http.StatusOK, `{"slug":"top-movers","instruments":["a","b"]}`)
	c := newTestClient(t, f)
	ctx := context.Background()

	news, err := c.News(ctx, "AAPL")
	require.NoError(t, err)
	require.Len(t, news.Results, 1)
	assert.Equal(t, "/midlands/news/AAPL/", f.last(t).Path)

	tag, err := c.Tag(ctx, "top-movers")
	require.NoError(t, err)
	assert.Len(t, tag.Instruments, 2)
	assert.Equal(t, "/midlands/tags/tag/top-movers", f.last(t).Path)

	_, err = c.News(ctx, "")
	assert.ErrorIs(t, err, ErrEmptySymbol)
	_, err = c.Tag(ctx, "")
	assert.Error(t, err)
	assert.Len(t, f.all(), 2)
}

func TestMarketsAndMovers(t *testing.T) {
	f := newFakeUpstream(t)
	f.respond(http.MethodGet, "/markets/", http.StatusOK, `{"results":[{"mic":"XNAS","acronym":"NASDAQ"}]}`)
	f.respond(http.MethodGet, "/midlands/movers/sp500/", http.StatusOK,
		`{"results":[{"symbol":"NVDA","price_movement":{"market_hours_last_movement_pct":"4.12"}}]}`)
	c := newTestClient(t, f)
	ctx := context.Background()

	markets, err := c.Markets(ctx)
	require.NoError(t, err)
	require.Len(t, markets.Results, 1)
	assert.Equal(t, "XNAS", markets.Results[0].MIC)

	up, err := c.SP500Up(ctx)
	require.NoError(t, err)
	require.Len(t, up.Results, 1)
	assert.Equal(t, "up", f.last(t).Query.Get("direction"))

	_, err = c.SP500Down(ctx)
	require.NoError(t, err)
	assert.Equal(t, "down", f.last(t).Query.Get("direction"))
}
