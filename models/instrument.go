package models

// Instrument is a tradable security.
type Instrument struct {
	ID                 string  `json:"id"`
	URL                string  `json:"url"`
	Symbol             string  `json:"symbol"`
	Name               string  `json:"name"`
	SimpleName         string  `json:"simple_name"`
	Type               string  `json:"type"`
	State              string  `json:"state"`
	Market             string  `json:"market"`
	Country            string  `json:"country"`
	Tradeable          bool    `json:"tradeable"`
	Tradability        string  `json:"tradability"`
	RHSTradability     string  `json:"rhs_tradability"`
	MarginInitialRatio string  `json:"margin_initial_ratio"`
	MaintenanceRatio   string  `json:"maintenance_ratio"`
	DayTradeRatio      string  `json:"day_trade_ratio"`
	MinTickSize        *string `json:"min_tick_size,omitempty"`
	Fundamentals       string  `json:"fundamentals"`
	Quote              string  `json:"quote"`
	Splits             string  `json:"splits"`
	TradableChainID    string  `json:"tradable_chain_id"`
	BloombergUnique    string  `json:"bloomberg_unique"`
	ListDate           string  `json:"list_date"`
}

// Fundamentals holds company and trading fundamentals for an instrument.
type Fundamentals struct {
	Instrument          string `json:"instrument"`
	Open                string `json:"open"`
	High                string `json:"high"`
	Low                 string `json:"low"`
	Volume              string `json:"volume"`
	AverageVolume       string `json:"average_volume"`
	AverageVolume2Weeks string `json:"average_volume_2_weeks"`
	High52Weeks         string `json:"high_52_weeks"`
	Low52Weeks          string `json:"low_52_weeks"`
	DividendYield       string `json:"dividend_yield"`
	MarketCap           string `json:"market_cap"`
	PERatio             string `json:"pe_ratio"`
	SharesOutstanding   string `json:"shares_outstanding"`
	Description         string `json:"description"`
	CEO                 string `json:"ceo"`
	HeadquartersCity    string `json:"headquarters_city"`
	HeadquartersState   string `json:"headquarters_state"`
	Sector              string `json:"sector"`
	NumEmployees        int64  `json:"num_employees"`
	YearFounded         int    `json:"year_founded"`
}

// Split is a stock split applied to an instrument.
type Split struct {
	URL           string `json:"url"`
	Instrument    string `json:"instrument"`
	ExecutionDate string `json:"execution_date"`
	Multiplier    string `json:"multiplier"`
	Divisor       string `json:"divisor"`
}
