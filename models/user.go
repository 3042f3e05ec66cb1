package models

// User is the authenticated user's profile. Most fields are hypermedia links
// to sub-resources.
type User struct {
	ID                string `json:"id"`
	URL               string `json:"url"`
	Username          string `json:"username"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Email             string `json:"email"`
	EmailVerified     bool   `json:"email_verified"`
	CreatedAt         string `json:"created_at"`
	IDInfo            string `json:"id_info"`
	BasicInfo         string `json:"basic_info"`
	InvestmentProfile string `json:"investment_profile"`
	InternationalInfo string `json:"international_info"`
	Employment        string `json:"employment"`
	AdditionalInfo    string `json:"additional_info"`
}

// InvestmentProfile describes the user's declared experience and goals.
// Fields the upstream leaves untyped are kept as raw values.
type InvestmentProfile struct {
	User                          string `json:"user"`
	AnnualIncome                  string `json:"annual_income"`
	InvestmentExperience          string `json:"investment_experience"`
	InvestmentExperienceCollected bool   `json:"investment_experience_collected"`
	InvestmentObjective           string `json:"investment_objective"`
	OptionTradingExperience       string `json:"option_trading_experience"`
	InterestedInOptions           *bool  `json:"interested_in_options,omitempty"`
	UnderstandOptionSpreads       *bool  `json:"understand_option_spreads,omitempty"`
	RiskTolerance                 string `json:"risk_tolerance"`
	TotalNetWorth                 string `json:"total_net_worth"`
	LiquidNetWorth                string `json:"liquid_net_worth"`
	LiquidityNeeds                string `json:"liquidity_needs"`
	SourceOfFunds                 string `json:"source_of_funds"`
	SuitabilityVerified           bool   `json:"suitability_verified"`
	ProfessionalTrader            bool   `json:"professional_trader"`
	TaxBracket                    string `json:"tax_bracket"`
	TimeHorizon                   string `json:"time_horizon"`
	UpdatedAt                     string `json:"updated_at"`
}
