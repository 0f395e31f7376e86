package finnhub

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"finnhub/pkg/core"
)

func TestApplyCallOptions(t *testing.T) {
	options := ApplyCallOptions(
		WithMIC("XNAS"),
		WithSecurityType("Common Stock"),
		WithCurrency("USD"),
		WithMinID(42),
	)

	assert.Equal(t, "XNAS", options.MIC)
	assert.Equal(t, "Common Stock", options.SecurityType)
	assert.Equal(t, "USD", options.Currency)
	assert.Equal(t, uint64(42), options.MinID)
}

func TestAppendIf(t *testing.T) {
	params := core.NewParams("exchange", "US")

	params = appendIf(params, "mic", "")
	assert.Len(t, params, 1)

	params = appendIf(params, "mic", "XNAS")
	assert.Len(t, params, 2)
	assert.Equal(t, core.Param{Key: "mic", Value: "XNAS"}, params[1])
}

func TestAppendIfNonZero(t *testing.T) {
	params := core.Params{}

	params = appendIfNonZero(params, "minId", 0)
	assert.Empty(t, params)

	params = appendIfNonZero(params, "minId", 5085164)
	assert.Equal(t, core.NewParams("minId", "5085164"), params)
}
