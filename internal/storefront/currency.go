package storefront

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usd = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders amount as US dollars, e.g. $1,299.99 or -$5.00
func FormatCurrency(amount float64) string {
	cents := math.Round(amount * 100)
	if cents == 0 {
		return "$0.00"
	}
	if cents < 0 {
		return "-" + usd.Sprintf("$%.2f", -cents/100)
	}
	return usd.Sprintf("$%.2f", cents/100)
}
