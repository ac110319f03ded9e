package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usd = message.NewPrinter(language.English)

// FormatPrice renders a monetary amount the way listings display it,
// e.g. 12500000 -> "$12,500,000".
func FormatPrice(value int) string {
	return usd.Sprintf("$%d", value)
}
