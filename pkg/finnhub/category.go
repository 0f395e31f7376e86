package finnhub

import "fmt"

// NewsCategory represents a market news category.
type NewsCategory int

// News category constants define the categories accepted by the news endpoint.
const (
	// NewsCategoryGeneral covers general market news.
	NewsCategoryGeneral NewsCategory = iota
	// NewsCategoryForex covers foreign exchange news.
	NewsCategoryForex
	// NewsCategoryCrypto covers cryptocurrency news.
	NewsCategoryCrypto
	// NewsCategoryMerger covers mergers and acquisitions news.
	NewsCategoryMerger
)

// String returns the lowercase category name the provider expects.
func (c NewsCategory) String() string {
	return [...]string{
		"general",
		"forex",
		"crypto",
		"merger",
	}[c]
}

// ParseNewsCategory converts a lowercase category name to a NewsCategory.
func ParseNewsCategory(name string) (NewsCategory, error) {
	for c := NewsCategoryGeneral; c <= NewsCategoryMerger; c++ {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown news category %q", name)
}

// ProfileKey selects the identifier used to look up a company profile.
type ProfileKey int

// Profile key constants define the supported company identifiers.
const (
	// ProfileKeySymbol looks up a profile by ticker symbol.
	ProfileKeySymbol ProfileKey = iota
	// ProfileKeyISIN looks up a profile by ISIN.
	ProfileKeyISIN
	// ProfileKeyCUSIP looks up a profile by CUSIP.
	ProfileKeyCUSIP
)

// String returns the query parameter name for the profile key.
func (k ProfileKey) String() string {
	return [...]string{
		"symbol",
		"isin",
		"cusip",
	}[k]
}
