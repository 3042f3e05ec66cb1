package robinhood

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccounts(t *testing.T) {
	f := newFakeUpstream(t)
	accountURL := f.accounts()
	c := newTestClient(t, f, WithToken("tok"))

	page, err := c.Accounts(context.Background())
	require.NoError(t, err)
	first, ok := page.First()
	require.True(t, ok)
	assert.Equal(t, accountURL, first.URL)
	assert.Equal(t, "5RY82436", first.AccountNumber)
}

func TestUserEndpoints(t *testing.T) {
	f := newFakeUpstream(t)
	f.respond(http.MethodGet, "/user/", http.StatusOK, `{"username":"alice","email":"alice@example.com"}`)
	f.respond(http.MethodGet, "/user/investment_profile/", http.StatusOK, `{"risk_tolerance":"high_risk_tolerance"}`)
	f.respond(http.MethodGet, "/user/basic_info/", http.StatusOK, `{"phone_number":"5555550100"}`)
	f.respond(http.MethodGet, "/user/additional_info/", http.StatusOK, `{"stock_loan_consent_status":"consented"}`)
	f.respond(http.MethodGet, "/user/employment/", http.StatusNoContent, ``)
	c := newTestClient(t, f, WithToken("tok"))
	ctx := context.Background()

	user, err := c.User(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	profile, err := c.InvestmentProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "high_risk_tolerance", profile.RiskTolerance)

	basic, err := c.UserBasicInfo(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"phone_number":"5555550100"}`, string(basic))

	additional, err := c.UserAdditionalInfo(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"stock_loan_consent_status":"consented"}`, string(additional))

	employment, err := c.UserEmployment(ctx)
	require.NoError(t, err)
	assert.Equal(t, "null", string(employment))
}

func TestPositions(t *testing.T) {
	f := newFakeUpstream(t)
	f.respond(http.MethodGet, "/positions/", http.StatusOK, `{"results":[{"quantity":"12.0000","average_buy_price":"101.5000"}]}`)
	c := newTestClient(t, f, WithToken("tok"))
	ctx := context.Background()

	all, err := c.Positions(ctx)
	require.NoError(t, err)
	require.Len(t, all.Results, 1)
	assert.Equal(t, "12", all.Results[0].Quantity.String())
	assert.False(t, f.last(t).Query.Has("nonzero"))

	_, err = c.NonZeroPositions(ctx)
	require.NoError(t, err)
	assert.Equal(t, "true", f.last(t).Query.Get("nonzero"))
}

func TestWatchlists(t *testing.T) {
	f := newFakeUpstream(t)
	f.respond(http.MethodGet, "/watchlists/", http.StatusOK, `{"results":[{"name":"Default"}]}`)
	f.respond(http.MethodPost, "/watchlists/", http.StatusCreated, `{"name":"Tech"}`)
	c := newTestClient(t, f, WithToken("tok"))
	ctx := context.Background()

	lists, err := c.Watchlists(ctx)
	require.NoError(t, err)
	require.Len(t, lists.Results, 1)
	assert.Equal(t, "Default", lists.Results[0].Name)

	created, err := c.CreateWatchList(ctx, "Tech")
	require.NoError(t, err)
	assert.Equal(t, "Tech", created.Name)
	assert.Equal(t, "Tech", f.last(t).Form.Get("name"))

	_, err = c.CreateWatchList(ctx, "")
	assert.Error(t, err)
	assert.Len(t, f.all(), 2)
}

// TestRawCollections verifies that loosely typed collections come back with
// their items untouched.
func TestRawCollections(t *testing.T) {
	f := newFakeUpstream(t)
	f.respond(http.MethodGet, "/dividends/", http.StatusOK, `{"results":[{"amount":"0.96","rate":"0.24"}]}`)
	f.respond(http.MethodGet, "/ach/relationships/", http.StatusOK, `{"results":[{"bank_account_nickname":"Checking"}]}`)
	f.respond(http.MethodGet, "/ach/transfers/", http.StatusOK, `{"results":[{"amount":"500.00","direction":"deposit"}]}`)
	f.respond(http.MethodGet, "/documents/", http.StatusOK, `{"results":[{"type":"account_statement"}]}`)
	f.respond(http.MethodGet, "/notifications/", http.StatusOK, `{"results":[]}`)
	c := newTestClient(t, f, WithToken("tok"))
	ctx := context.Background()

	dividends, err := c.Dividends(ctx)
	require.NoError(t, err)
	require.Len(t, dividends.Results, 1)
	assert.Equal(t, "0.96", dividends.Results[0].Amount)

	relationships, err := c.ACHRelationships(ctx)
	require.NoError(t, err)
	require.Len(t, relationships.Results, 1)
	assert.JSONEq(t, `{"bank_account_nickname":"Checking"}`, string(relationships.Results[0]))

	transfers, err := c.ACHTransfers(ctx)
	require.NoError(t, err)
	require.Len(t, transfers.Results, 1)
	assert.JSONEq(t, `{"amount":"500.00","direction":"deposit"}`, string(transfers.Results[0]))

	documents, err := c.Documents(ctx)
	require.NoError(t, err)
	assert.Len(t, documents.Results, 1)

	notifications, err := c.Notifications(ctx)
	require.NoError(t, err)
	assert.Empty(t, notifications.Results)
}
