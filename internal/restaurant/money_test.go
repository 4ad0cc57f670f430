package restaurant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		cents int
		want  string
	}{
		{0, "0.00€"},
		{5, "0.05€"},
		{850, "8.50€"},
		{1200, "12.00€"},
		{-950, "-9.50€"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMoney(tt.cents, "€"))
	}
	assert.Equal(t, "3.10$", FormatMoney(310, "$"))
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr error
	}{
		{name: "comma separator", input: "8,50", want: 850},
		{name: "dot separator", input: "8.5", want: 850},
		{name: "whole number", input: "12", want: 1200},
		{name: "leading dot", input: ".5", want: 50},
		{name: "trailing dot", input: "5.", want: 500},
		{name: "surrounding space", input: " 4.20 ", want: 420},
		{name: "trailing zeros", input: "1.250", want: 125},
		{name: "sub-cent digits", input: "1.255", wantErr: ErrPricePrecision},
		{name: "not a number", input: "abc", wantErr: ErrPriceFormat},
		{name: "empty", input: "", wantErr: ErrPriceFormat},
		{name: "negative", input: "-1", wantErr: ErrPriceFormat},
		{name: "two separators", input: "1.2.3", wantErr: ErrPriceFormat},
		{name: "largest whole part", input: "21474836.47", want: 2147483647},
		{name: "whole part too large", input: "21474837", wantErr: ErrPriceRange},
		{name: "overflowing digits", input: "92233720368547758.07", wantErr: ErrPriceRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePrice(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
