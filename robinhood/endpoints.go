package robinhood

// DefaultBaseURL is the fixed API origin.
const DefaultBaseURL = "https://api.robinhood.com"

// Endpoint paths relative to the API origin.
const (
	endpointLogin             = "api-token-auth/"
	endpointLogout            = "api-token-logout/"
	endpointInvestmentProfile = "user/investment_profile/"
	endpointAccounts          = "accounts/"
	endpointACHRelationships  = "ach/relationships/"
	endpointACHTransfers      = "ach/transfers/"
	endpointDividends         = "dividends/"
	endpointDocuments         = "documents/"
	endpointEarnings          = "marketdata/earnings/"
	endpointInstruments       = "instruments/"
	endpointMarkets           = "markets/"
	endpointNotifications     = "notifications/"
	endpointOrders            = "orders/"
	endpointPasswordReset     = "password_reset/request/"
	endpointQuotes            = "quotes/"
	endpointHistoricals       = "quotes/historicals/"
	endpointUser              = "user/"
	endpointUserAdditional    = "user/additional_info/"
	endpointUserBasic         = "user/basic_info/"
	endpointUserEmployment    = "user/employment/"
	endpointWatchlists        = "watchlists/"
	endpointPositions         = "positions/"
	endpointFundamentals      = "fundamentals/"
	endpointSP500Movers       = "midlands/movers/sp500/"
	endpointNews              = "midlands/news/"
	endpointTag               = "midlands/tags/tag/"
)

// Operation names used to label logs and metrics.
const (
	opLogin              = "login"
	opLogout             = "logout"
	opInvestmentProfile  = "investment_profile"
	opAccounts           = "accounts"
	opACHRelationships   = "ach_relationships"
	opACHTransfers       = "ach_transfers"
	opDividends          = "dividends"
	opDocuments          = "documents"
	opEarnings           = "earnings"
	opInstruments        = "instruments"
	opPopularity         = "popularity"
	opSplits             = "splits"
	opMarkets            = "markets"
	opNotifications      = "notifications"
	opOrders             = "orders"
	opCancelOrder        = "cancel_order"
	opPlaceOrder         = "place_order"
	opPasswordReset      = "password_reset"
	opQuotes             = "quotes"
	opHistoricals        = "historicals"
	opUser               = "user"
	opUserAdditionalInfo = "user_additional_info"
	opUserBasicInfo      = "user_basic_info"
	opUserEmployment     = "user_employment"
	opWatchlists         = "watchlists"
	opCreateWatchlist    = "create_watchlist"
	opPositions          = "positions"
	opFundamentals       = "fundamentals"
	opSP500Movers        = "sp500_movers"
	opNews               = "news"
	opTag                = "tag"
	opURL                = "url"
)

// Header names and the literal values the upstream allowlists clients by.
const (
	hdrAuthorization = "Authorization"
	hdrContentType   = "Content-Type"
	hdrAPIVersion    = "X-Robinhood-API-Version"
	hdrUserAgent     = "User-Agent"

	APIVersion = "1.152.0"
	UserAgent  = "Robinhood/5.32.0 (com.robinhood.release.Robinhood; build:3814; iOS 10.3.3)"

	formContentType = "application/x-www-form-urlencoded; charset=utf-8"
)

// fixedHeaders is sent with every request. It is never mutated; session
// snapshots copy it.
var fixedHeaders = map[string]string{
	"Accept":          "*/*",
	"Accept-Encoding": "gzip",
	"Accept-Language": "en;q=1, fr;q=0.9, de;q=0.8, ja;q=0.7, nl;q=0.6, it;q=0.5",
	hdrContentType:    formContentType,
	"Connection":      "keep-alive",
	hdrAPIVersion:     APIVersion,
	hdrUserAgent:      UserAgent,
}
