package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var idrPrinter = message.NewPrinter(language.Indonesian)

// FormatIDR renders an amount in rupiah the way the booking UI shows prices,
// e.g. 1200000 -> "Rp 1.200.000".
func FormatIDR(amount int64) string {
	return idrPrinter.Sprintf("Rp %d", amount)
}
