package finnhub

import "fmt"

// Resolution represents a candle resolution supported by the provider.
type Resolution int

// Resolution constants define the available candle intervals.
const (
	// ResolutionMinute is a 1 minute candle.
	ResolutionMinute Resolution = iota
	// ResolutionFiveMinutes is a 5 minute candle.
	ResolutionFiveMinutes
	// ResolutionFifteenMinutes is a 15 minute candle.
	ResolutionFifteenMinutes
	// ResolutionThirtyMinutes is a 30 minute candle.
	ResolutionThirtyMinutes
	// ResolutionHour is a 60 minute candle.
	ResolutionHour
	// ResolutionDay is a daily candle.
	ResolutionDay
	// ResolutionWeek is a weekly candle.
	ResolutionWeek
	// ResolutionMonth is a monthly candle.
	ResolutionMonth
)

// String returns the provider-defined resolution code.
func (r Resolution) String() string {
	return [...]string{
		"1",
		"5",
		"15",
		"30",
		"60",
		"D",
		"W",
		"M",
	}[r]
}

// ParseResolution converts a provider resolution code back to a Resolution.
func ParseResolution(code string) (Resolution, error) {
	for r := ResolutionMinute; r <= ResolutionMonth; r++ {
		if r.String() == code {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown resolution code %q", code)
}
