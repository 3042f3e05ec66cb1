package models

import "github.com/shopspring/decimal"

// Account is a brokerage account owned by the authenticated user. Monetary
// values are passed through as the decimal strings the API returns.
type Account struct {
	URL                        string             `json:"url"`
	AccountNumber              string             `json:"account_number"`
	Type                       string             `json:"type"`
	User                       string             `json:"user"`
	Portfolio                  string             `json:"portfolio"`
	Positions                  string             `json:"positions"`
	Deactivated                bool               `json:"deactivated"`
	WithdrawalHalted           bool               `json:"withdrawal_halted"`
	DepositHalted              bool               `json:"deposit_halted"`
	SweepEnabled               bool               `json:"sweep_enabled"`
	OnlyPositionClosingTrades  bool               `json:"only_position_closing_trades"`
	IsPinnacleAccount          bool               `json:"is_pinnacle_account"`
	CanDowngradeToCash         string             `json:"can_downgrade_to_cash"`
	Cash                       string             `json:"cash"`
	CashBalances               any                `json:"cash_balances,omitempty"`
	CashAvailableForWithdrawal string             `json:"cash_available_for_withdrawal"`
	CashHeldForOrders          string             `json:"cash_held_for_orders"`
	BuyingPower                string             `json:"buying_power"`
	SMA                        string             `json:"sma"`
	SMAHeldForOrders           string             `json:"sma_held_for_orders"`
	MaxACHEarlyAccessAmount    string             `json:"max_ach_early_access_amount"`
	OptionLevel                string             `json:"option_level"`
	UnsettledDebit             string             `json:"unsettled_debit"`
	UnsettledFunds             string             `json:"unsettled_funds"`
	UnclearedDeposits          string             `json:"uncleared_deposits"`
	MarginBalances             MarginBalances     `json:"margin_balances"`
	InstantEligibility         InstantEligibility `json:"instant_eligibility"`
	CreatedAt                  string             `json:"created_at"`
	UpdatedAt                  string             `json:"updated_at"`
}

// MarginBalances is the margin section of an account.
type MarginBalances struct {
	Cash                              string  `json:"cash"`
	CashAvailableForWithdrawal        string  `json:"cash_available_for_withdrawal"`
	CashHeldForOrders                 string  `json:"cash_held_for_orders"`
	CashHeldForOptionsCollateral      string  `json:"cash_held_for_options_collateral"`
	CashHeldForNummusRestrictions     string  `json:"cash_held_for_nummus_restrictions"`
	CashHeldForDividends              *string `json:"cash_held_for_dividends,omitempty"`
	DayTradeBuyingPower               string  `json:"day_trade_buying_power"`
	DayTradeBuyingPowerHeldForOrders  string  `json:"day_trade_buying_power_held_for_orders"`
	DayTradeRatio                     string  `json:"day_trade_ratio"`
	GoldEquityRequirement             string  `json:"gold_equity_requirement"`
	MarginLimit                       string  `json:"margin_limit"`
	MarkedPatternDayTraderDate        *string `json:"marked_pattern_day_trader_date,omitempty"`
	OutstandingInterest               string  `json:"outstanding_interest"`
	OvernightBuyingPower              string  `json:"overnight_buying_power"`
	OvernightBuyingPowerHeldForOrders string  `json:"overnight_buying_power_held_for_orders"`
	OvernightRatio                    string  `json:"overnight_ratio"`
	SMA                               string  `json:"sma"`
	StartOfDayDTBP                    string  `json:"start_of_day_dtbp"`
	StartOfDayOvernightBuyingPower    string  `json:"start_of_day_overnight_buying_power"`
	UnallocatedMarginCash             string  `json:"unallocated_margin_cash"`
	UnclearedDeposits                 string  `json:"uncleared_deposits"`
	UnclearedNummusDeposits           string  `json:"uncleared_nummus_deposits"`
	UnsettledDebit                    string  `json:"unsettled_debit"`
	UnsettledFunds                    string  `json:"unsettled_funds"`
	CreatedAt                         string  `json:"created_at"`
	UpdatedAt                         string  `json:"updated_at"`
}

// InstantEligibility reports whether instant deposits are available.
type InstantEligibility struct {
	State             string  `json:"state"`
	Reason            string  `json:"reason"`
	Reversal          any     `json:"reversal,omitempty"`
	ReinstatementDate *string `json:"reinstatement_date,omitempty"`
	UpdatedAt         *string `json:"updated_at,omitempty"`
}

// Dividend is a dividend payment on a held position.
type Dividend struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Account     string `json:"account"`
	Instrument  string `json:"instrument"`
	Position    string `json:"position"`
	Amount      string `json:"amount"`
	Rate        string `json:"rate"`
	Withholding string `json:"withholding"`
	RecordDate  string `json:"record_date"`
	PayableDate string `json:"payable_date"`
	PaidAt      string `json:"paid_at"`
}

// Position is the account's holding in one instrument.
type Position struct {
	URL                     string              `json:"url"`
	Account                 string              `json:"account"`
	Instrument              string              `json:"instrument"`
	Quantity                decimal.Decimal     `json:"quantity"`
	AverageBuyPrice         decimal.Decimal     `json:"average_buy_price"`
	PendingAverageBuyPrice  decimal.NullDecimal `json:"pending_average_buy_price"`
	IntradayQuantity        decimal.Decimal     `json:"intraday_quantity"`
	IntradayAverageBuyPrice decimal.NullDecimal `json:"intraday_average_buy_price"`
	SharesHeldForBuys       decimal.Decimal     `json:"shares_held_for_buys"`
	SharesHeldForSells      decimal.Decimal     `json:"shares_held_for_sells"`
	CreatedAt               string              `json:"created_at"`
	UpdatedAt               string              `json:"updated_at"`
}

// Watchlist is a named list of instruments.
type Watchlist struct {
	URL  string `json:"url"`
	User string `json:"user"`
	Name string `json:"name"`
}
