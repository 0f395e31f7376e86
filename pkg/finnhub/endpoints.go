package finnhub

import (
	"context"
	"net/url"
	"strconv"

	"finnhub/pkg/core"
)

// SymbolLookup searches for a symbol matching the query.
// https://finnhub.io/docs/api/symbol-search
func (c *Client) SymbolLookup(ctx context.Context, query string) (core.APIResponse[SymbolLookup], *url.URL, error) {
	return Get[SymbolLookup](ctx, c, "search", core.NewParams("q", query))
}

// StockSymbols returns the stocks supported by the given exchange, optionally
// filtered by MIC, security type, or currency.
// https://finnhub.io/docs/api/stock-symbols
func (c *Client) StockSymbols(ctx context.Context, exchange string, opts ...CallOption) (core.APIResponse[[]StockSymbol], *url.URL, error) {
	options := ApplyCallOptions(opts...)

	params := core.NewParams("exchange", exchange)
	params = appendIf(params, "mic", options.MIC)
	params = appendIf(params, "securityType", options.SecurityType)
	params = appendIf(params, "currency", options.Currency)

	return Get[[]StockSymbol](ctx, c, "stock/symbol", params)
}

// CompanyProfile2 returns the profile of the company identified by the given
// key and value.
// https://finnhub.io/docs/api/company-profile2
func (c *Client) CompanyProfile2(ctx context.Context, key ProfileKey, value string) (core.APIResponse[CompanyProfile], *url.URL, error) {
	return Get[CompanyProfile](ctx, c, "stock/profile2", core.NewParams(key.String(), value))
}

// MarketNews returns the latest market news in the given category. Use
// WithMinID to fetch only news after a known article id.
// https://finnhub.io/docs/api/market-news
func (c *Client) MarketNews(ctx context.Context, category NewsCategory, opts ...CallOption) (core.APIResponse[[]MarketNews], *url.URL, error) {
	options := ApplyCallOptions(opts...)

	params := core.NewParams("category", category.String())
	params = appendIfNonZero(params, "minId", options.MinID)

	return Get[[]MarketNews](ctx, c, "news", params)
}

// CompanyNews returns news about the company in the given date range
// (dates formatted as 2006-01-02).
// https://finnhub.io/docs/api/company-news
func (c *Client) CompanyNews(ctx context.Context, symbol, from, to string) (core.APIResponse[[]CompanyNews], *url.URL, error) {
	return Get[[]CompanyNews](ctx, c, "company-news", core.NewParams(
		"symbol", symbol,
		"from", from,
		"to", to,
	))
}

// NewsSentiment returns the latest news sentiment for the company.
// https://finnhub.io/docs/api/news-sentiment
func (c *Client) NewsSentiment(ctx context.Context, symbol string) (core.APIResponse[NewsSentiment], *url.URL, error) {
	return Get[NewsSentiment](ctx, c, "news-sentiment", core.NewParams("symbol", symbol))
}

// Peers returns the peers of the given company.
// https://finnhub.io/docs/api/company-peers
func (c *Client) Peers(ctx context.Context, symbol string) (core.APIResponse[[]string], *url.URL, error) {
	return Get[[]string](ctx, c, "stock/peers", core.NewParams("symbol", symbol))
}

// Quote returns the company's current stock quote.
// https://finnhub.io/docs/api/quote
func (c *Client) Quote(ctx context.Context, symbol string) (core.APIResponse[CompanyQuote], *url.URL, error) {
	return Get[CompanyQuote](ctx, c, "quote", core.NewParams("symbol", symbol))
}

// BasicFinancials returns all basic financial metrics for the company.
// https://finnhub.io/docs/api/company-basic-financials
func (c *Client) BasicFinancials(ctx context.Context, symbol string) (core.APIResponse[BasicFinancials], *url.URL, error) {
	return Get[BasicFinancials](ctx, c, "stock/metric", core.NewParams(
		"symbol", symbol,
		"metric", "all",
	))
}

// ForexRates returns the rates for all forex pairs against the base currency.
func (c *Client) ForexRates(ctx context.Context, base string) (core.APIResponse[ForexRates], *url.URL, error) {
	return Get[ForexRates](ctx, c, "forex/rates", core.NewParams("base", base))
}

// ForexExchanges returns the supported forex exchanges.
func (c *Client) ForexExchanges(ctx context.Context) (core.APIResponse[[]string], *url.URL, error) {
	return Get[[]string](ctx, c, "forex/exchange", nil)
}

// ForexSymbols returns the forex symbols supported by the given exchange.
func (c *Client) ForexSymbols(ctx context.Context, exchange string) (core.APIResponse[[]ForexSymbol], *url.URL, error) {
	return Get[[]ForexSymbol](ctx, c, "forex/symbol", core.NewParams("exchange", exchange))
}

// StockCandles returns OHLCV candle data for the symbol between the from and
// to UNIX timestamps at the given resolution.
// https://finnhub.io/docs/api/stock-candles
func (c *Client) StockCandles(ctx context.Context, symbol string, resolution Resolution, from, to int64) (core.APIResponse[Candle], *url.URL, error) {
	return Get[Candle](ctx, c, "stock/candle", core.NewParams(
		"symbol", symbol,
		"resolution", resolution.String(),
		"from", strconv.FormatInt(from, 10),
		"to", strconv.FormatInt(to, 10),
	))
}
