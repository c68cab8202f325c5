package utils

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var numberPrinter = message.NewPrinter(language.English)

// FormatNumber renders v with thousands separators and the given number of decimals.
func FormatNumber(v float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return numberPrinter.Sprintf(fmt.Sprintf("%%.%df", decimals), v)
}

// FormatCount renders an integer with thousands separators.
func FormatCount(n int) string {
	return numberPrinter.Sprintf("%d", n)
}
