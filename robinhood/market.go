package robinhood

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-robinhood/internal/utils"
	"github.com/MKhiriev/go-robinhood/models"
)

// joinSymbols uppercases symbols and joins them with commas in input order.
func joinSymbols(symbols []string) (string, error) {
	if len(symbols) == 0 {
		return "", ErrEmptySymbol
	}
	upper := make([]string, len(symbols))
	for i, s := range symbols {
		s = strings.TrimSpace(s)
		if s == "" {
			return "", ErrEmptySymbol
		}
		upper[i] = strings.ToUpper(s)
	}
	return strings.Join(upper, ","), nil
}

// QuoteData returns quotes for one or more symbols.
func (c *Client) QuoteData(ctx context.Context, symbols ...string) (models.Page[models.Quote], error) {
	joined, err := joinSymbols(symbols)
	if err != nil {
		return models.Page[models.Quote]{}, err
	}
	return getJSON[models.Page[models.Quote]](ctx, c, opQuotes, endpointQuotes, url.Values{"symbols": {joined}})
}

// Instruments searches instruments by symbol.
func (c *Client) Instruments(ctx context.Context, symbol string) (models.Page[models.Instrument], error) {
	joined, err := joinSymbols([]string{symbol})
	if err != nil {
		return models.Page[models.Instrument]{}, err
	}
	return getJSON[models.Page[models.Instrument]](ctx, c, opInstruments, endpointInstruments, url.Values{"query": {joined}})
}

// Fundamentals returns fundamentals for one or more symbols.
func (c *Client) Fundamentals(ctx context.Context, symbols ...string) (models.Page[models.Fundamentals], error) {
	joined, err := joinSymbols(symbols)
	if err != nil {
		return models.Page[models.Fundamentals]{}, err
	}
	return getJSON[models.Page[models.Fundamentals]](ctx, c, opFundamentals, endpointFundamentals, url.Values{"symbols": {joined}})
}

// Popularity resolves the symbol's instrument through a quote lookup and
// returns how many accounts hold it.
//
// It fails with ErrNoQuoteResults when the quote lookup is empty and with
// ErrMalformedInstrumentURL when the instrument link carries no UUID.
func (c *Client) Popularity(ctx context.Context, symbol string) (models.Popularity, error) {
	quotes, err := c.QuoteData(ctx, symbol)
	if err != nil {
		return models.Popularity{}, err
	}
	quote, ok := quotes.First()
	if !ok {
		return models.Popularity{}, fmt.Errorf("%w for %s", ErrNoQuoteResults, strings.ToUpper(symbol))
	}
	id, err := utils.InstrumentIDFromURL(quote.Instrument)
	if err != nil {
		return models.Popularity{}, err
	}

	path := endpointInstruments + id.String() + "/popularity"
	return getJSON[models.Popularity](ctx, c, opPopularity, path, nil)
}

// Splits lists the splits of an instrument by its UUID.
func (c *Client) Splits(ctx context.Context, instrumentID string) (models.Page[models.Split], error) {
	if err := uuid.Validate(instrumentID); err != nil {
		return models.Page[models.Split]{}, fmt.Errorf("instrument id %q: %w", instrumentID, err)
	}
	path := endpointInstruments + instrumentID + "/splits/"
	return getJSON[models.Page[models.Split]](ctx, c, opSplits, path, nil)
}

// Historicals returns price bars for symbol at the given interval (e.g.
// "5minute", "day") over span (e.g. "day", "year").
func (c *Client) Historicals(ctx context.Context, symbol, interval, span string) (models.Historicals, error) {
	if symbol == "" {
		return models.Historicals{}, ErrEmptySymbol
	}
	path := endpointHistoricals + url.PathEscape(strings.ToUpper(symbol)) + "/"
	query := url.Values{
		"interval": {interval},
		"span":     {span},
	}
	return getJSON[models.Historicals](ctx, c, opHistoricals, path, query)
}

// Earnings returns earnings reports. Exactly one filter is sent; see
// models.EarningsQuery.
func (c *Client) Earnings(ctx context.Context, q models.EarningsQuery) (models.Page[models.Earnings], error) {
	return getJSON[models.Page[models.Earnings]](ctx, c, opEarnings, endpointEarnings, q.Values())
}

// News returns news articles for symbol.
func (c *Client) News(ctx context.Context, symbol string) (models.Page[models.NewsItem], error) {
	if symbol == "" {
		return models.Page[models.NewsItem]{}, ErrEmptySymbol
	}
	path := endpointNews + url.PathEscape(symbol) + "/"
	return getJSON[models.Page[models.NewsItem]](ctx, c, opNews, path, nil)
}

// Tag returns the instruments grouped under a tag such as "top-movers".
func (c *Client) Tag(ctx context.Context, tag string) (models.Tag, error) {
	if tag == "" {
		return models.Tag{}, errors.New("empty tag")
	}
	return getJSON[models.Tag](ctx, c, opTag, endpointTag+url.PathEscape(tag), nil)
}

// Markets lists the exchanges known to the API.
func (c *Client) Markets(ctx context.Context) (models.Page[models.Market], error) {
	return getJSON[models.Page[models.Market]](ctx, c, opMarkets, endpointMarkets, nil)
}

// SP500Up lists the top S&P 500 gainers of the session.
func (c *Client) SP500Up(ctx context.Context) (models.Page[models.Mover], error) {
	return c.sp500(ctx, "up")
}

// SP500Down lists the top S&P 500 losers of the session.
func (c *Client) SP500Down(ctx context.Context) (models.Page[models.Mover], error) {
	return c.sp500(ctx, "down")
}

func (c *Client) sp500(ctx context.Context, direction string) (models.Page[models.Mover], error) {
	return getJSON[models.Page[models.Mover]](ctx, c, opSP500Movers, endpointSP500Movers, url.Values{"direction": {direction}})
}
