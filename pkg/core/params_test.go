package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewParams(t *testing.T) {
	params := NewParams("symbol", "AAPL", "resolution", "D")

	assert.Len(t, params, 2)
	assert.Equal(t, Param{Key: "symbol", Value: "AAPL"}, params[0])
	assert.Equal(t, Param{Key: "resolution", Value: "D"}, params[1])
}

func TestNewParams_OddPairDropped(t *testing.T) {
	params := NewParams("symbol", "AAPL", "dangling")

	assert.Len(t, params, 1)
	assert.Equal(t, "symbol", params[0].Key)
}

func TestParams_Add(t *testing.T) {
	params := Params{}.Add("a", "1").Add("b", "2").Add("a", "3")

	assert.Len(t, params, 3)
	assert.Equal(t, "a", params[2].Key)
	assert.Equal(t, "3", params[2].Value)
}

func TestParams_Encode(t *testing.T) {
	tests := []struct {
		name     string
		params   Params
		expected string
	}{
		{"empty", nil, ""},
		{"single", NewParams("symbol", "AAPL"), "symbol=AAPL"},
		{"ordered", NewParams("b", "2", "a", "1"), "b=2&a=1"},
		{"duplicates kept", NewParams("k", "1", "k", "2"), "k=1&k=2"},
		{"escaped", NewParams("q", "apple inc", "cat", "a&b"), "q=apple+inc&cat=a%26b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.params.Encode())
		})
	}
}

func TestParams_EncodeDeterministic(t *testing.T) {
	params := NewParams("symbol", "AAPL", "resolution", "D", "from", "1572651390")

	first := params.Encode()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, params.Encode())
	}
}
