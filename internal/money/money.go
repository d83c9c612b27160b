// Package money renders integer peso amounts for display.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLocale is Chilean Spanish: "." groups thousands and pesos carry no decimals
var DefaultLocale = language.MustParse("es-CL")

// Formatter renders whole-peso amounts with the locale's digit grouping
type Formatter struct {
	printer *message.Printer
}

// NewFormatter creates a formatter for tag
func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{
		printer: message.NewPrinter(tag),
	}
}

// Default returns the es-CL formatter
func Default() *Formatter {
	return NewFormatter(DefaultLocale)
}

// Format renders amount as "$73.050", with a leading minus for debits
func (f *Formatter) Format(amount int) string {
	if amount < 0 {
		return "-$" + f.printer.Sprintf("%d", -amount)
	}
	return "$" + f.printer.Sprintf("%d", amount)
}

// Signed renders amount with an explicit sign, for ledger lines
func (f *Formatter) Signed(amount int) string {
	if amount > 0 {
		return "+" + f.Format(amount)
	}
	return f.Format(amount)
}
