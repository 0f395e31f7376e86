package finnhub

// SymbolLookup is the result of a symbol search query.
type SymbolLookup struct {
	Count  int           `json:"count"`
	Result []SymbolMatch `json:"result"`
}

// SymbolMatch is one entry of a symbol search result.
type SymbolMatch struct {
	Description   string `json:"description"`
	DisplaySymbol string `json:"displaySymbol"`
	Symbol        string `json:"symbol"`
	Type          string `json:"type"`
}

// StockSymbol describes one security supported by an exchange.
type StockSymbol struct {
	Currency      string `json:"currency"`
	Description   string `json:"description"`
	DisplaySymbol string `json:"displaySymbol"`
	FIGI          string `json:"figi"`
	MIC           string `json:"mic"`
	Symbol        string `json:"symbol"`
	Type          string `json:"type"`
}

// CompanyProfile is the general profile of a company.
type CompanyProfile struct {
	Country              string  `json:"country"`
	Currency             string  `json:"currency"`
	Exchange             string  `json:"exchange"`
	IPO                  string  `json:"ipo"`
	MarketCapitalization float64 `json:"marketCapitalization"`
	Name                 string  `json:"name"`
	Phone                string  `json:"phone"`
	ShareOutstanding     float64 `json:"shareOutstanding"`
	Ticker               string  `json:"ticker"`
	WebURL               string  `json:"weburl"`
	Logo                 string  `json:"logo"`
	FinnhubIndustry      string  `json:"finnhubIndustry"`
}

// MarketNews is one general market news article.
type MarketNews struct {
	Category string `json:"category"`
	Datetime int64  `json:"datetime"`
	Headline string `json:"headline"`
	ID       int64  `json:"id"`
	Image    string `json:"image"`
	Related  string `json:"related"`
	Source   string `json:"source"`
	Summary  string `json:"summary"`
	URL      string `json:"url"`
}

// CompanyNews is one news article related to a specific company.
type CompanyNews struct {
	Category string `json:"category"`
	Datetime int64  `json:"datetime"`
	Headline string `json:"headline"`
	ID       int64  `json:"id"`
	Image    string `json:"image"`
	Related  string `json:"related"`
	Source   string `json:"source"`
	Summary  string `json:"summary"`
	URL      string `json:"url"`
}

// NewsSentiment aggregates news sentiment for a company.
type NewsSentiment struct {
	Buzz                        NewsBuzz       `json:"buzz"`
	CompanyNewsScore            float64        `json:"companyNewsScore"`
	SectorAverageBullishPercent float64        `json:"sectorAverageBullishPercent"`
	SectorAverageNewsScore      float64        `json:"sectorAverageNewsScore"`
	Sentiment                   SentimentScore `json:"sentiment"`
	Symbol                      string         `json:"symbol"`
}

// NewsBuzz describes recent article volume for a company.
type NewsBuzz struct {
	ArticlesInLastWeek int64   `json:"articlesInLastWeek"`
	Buzz               float64 `json:"buzz"`
	WeeklyAverage      float64 `json:"weeklyAverage"`
}

// SentimentScore holds bearish/bullish percentages.
type SentimentScore struct {
	BearishPercent float64 `json:"bearishPercent"`
	BullishPercent float64 `json:"bullishPercent"`
}

// CompanyQuote is a real-time quote with the provider's single-letter fields.
type CompanyQuote struct {
	Current       float64 `json:"c"`
	High          float64 `json:"h"`
	Low           float64 `json:"l"`
	Open          float64 `json:"o"`
	PreviousClose float64 `json:"pc"`
	Timestamp     int64   `json:"t"`
}

// BasicFinancials holds company metrics keyed by metric name.
type BasicFinancials struct {
	Metric     map[string]any `json:"metric"`
	MetricType string         `json:"metricType"`
	Symbol     string         `json:"symbol"`
}

// ForexRates holds conversion rates for all pairs against a base currency.
type ForexRates struct {
	Base  string             `json:"base"`
	Quote map[string]float64 `json:"quote"`
}

// ForexSymbol describes one supported forex symbol.
type ForexSymbol struct {
	Description   string `json:"description"`
	DisplaySymbol string `json:"displaySymbol"`
	Symbol        string `json:"symbol"`
}

// Candle holds OHLCV candle data in the provider's column-oriented layout.
// Status is "ok" when data is present and "no_data" otherwise.
type Candle struct {
	Close      []float64 `json:"c"`
	High       []float64 `json:"h"`
	Low        []float64 `json:"l"`
	Open       []float64 `json:"o"`
	Status     string    `json:"s"`
	Timestamps []int64   `json:"t"`
	Volumes    []float64 `json:"v"`
}
