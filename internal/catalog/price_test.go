package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceRange(t *testing.T) {
	tests := []struct {
		raw      string
		min, max *float64
		label    string
	}{
		{"", nil, nil, ""},
		{"10-100", price(10), price(100), "$10.00 to $100.00"},
		{"$20-", price(20), nil, "from $20.00"},
		{"-50", nil, price(50), "up to $50.00"},
		{"50", nil, price(50), "up to $50.00"},
		{" 1,000 - 2,500.5 ", price(1000), price(2500.5), "$1,000.00 to $2,500.50"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			r, err := ParsePriceRange(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.min, r.Min)
			assert.Equal(t, tt.max, r.Max)
			assert.Equal(t, tt.label, r.Label())
		})
	}
}

func TestParsePriceRangeErrors(t *testing.T) {
	for _, raw := range []string{"-", "abc", "100-10", "1-2-3", "inf", "5-nan"} {
		_, err := ParsePriceRange(raw)
		assert.True(t, errors.Is(err, ErrInvalidPriceRange), "%q: got %v", raw, err)
	}
}

func TestPriceRangeStringRoundTrips(t *testing.T) {
	for _, raw := range []string{"", "10-", "-99.5", "0-250"} {
		r, err := ParsePriceRange(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, r.String())
	}

	r, err := ParsePriceRange("75")
	require.NoError(t, err)
	assert.Equal(t, "-75", r.String(), "a bare number is an upper bound")
}

func TestQueryHonoursParsedRange(t *testing.T) {
	r, err := ParsePriceRange("50-200")
	require.NoError(t, err)

	got := Seed().Query(Filter{MinPrice: r.Min, MaxPrice: r.Max, Sort: SortPriceLow})
	assert.Equal(t, []string{"Garden Tool Set", "Women's Dress", "Running Shoes", "Wireless Headphones"}, names(got))
}
