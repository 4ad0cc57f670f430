package restaurant

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Price parsing failures.
var (
	ErrPriceFormat    = errors.New("expected price to be a decimal number")
	ErrPricePrecision = errors.New("expected price to be at most accurate to the 0.01 decimal place (cents)")
	ErrPriceRange     = errors.New("expected price to be at most " + strconv.Itoa(maxPriceUnits))
)

// maxPriceUnits bounds the whole part of a price so the cent amount fits an int.
const maxPriceUnits = math.MaxInt32 / 100

// FormatMoney renders cents as e.g. "8.50€". Negative amounts get a leading "-".
func FormatMoney(cents int, currency string) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d%s", sign, cents/100, cents%100, currency)
}

// ParsePrice converts a non-negative decimal such as "8.5", "8,50" or "12" to cents.
// Digits beyond the second decimal place must be zero.
func ParsePrice(s string) (int, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	whole, frac, _ := strings.Cut(s, ".")
	if (whole == "" && frac == "") || !isDigits(whole) || !isDigits(frac) {
		return 0, ErrPriceFormat
	}
	if len(frac) > 2 {
		if strings.Trim(frac[2:], "0") != "" {
			return 0, ErrPricePrecision
		}
		frac = frac[:2]
	}
	frac += strings.Repeat("0", 2-len(frac))

	units := 0
	if whole != "" {
		var err error
		if units, err = strconv.Atoi(whole); err != nil || units > maxPriceUnits {
			return 0, ErrPriceRange
		}
	}
	cents, _ := strconv.Atoi(frac)
	return units*100 + cents, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
