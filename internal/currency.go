package internal

import (
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency formats amounts with grouping separators and a currency symbol.
// Answers always use English-style digit grouping; only the symbol varies.
type Currency struct {
	Code    string // "INR", "USD", "EUR"
	symbol  string
	printer *message.Printer
}

// symbolOverrides provides custom symbols where x/text defaults aren't ideal
var symbolOverrides = map[string]string{
	"INR": "₹",
	"SEK": "kr",
	"NOK": "kr",
	"DKK": "kr",
}

// prefixCurrencies lists currencies whose symbol is placed before the amount.
// golang.org/x/text/currency doesn't implement symbol positioning from CLDR
// patterns, so this list is maintained manually.
var prefixCurrencies = map[string]bool{
	"INR": true,
	"USD": true,
	"GBP": true,
	"JPY": true,
	"CAD": true,
	"AUD": true,
	"MXN": true,
	"HKD": true,
	"SGD": true,
	"NZD": true,
	"ZAR": true,
}

// GetCurrency returns the Currency for a given code. Unknown codes use the
// code itself as the symbol.
func GetCurrency(code string) Currency {
	code = strings.ToUpper(code)
	printer := message.NewPrinter(language.English)

	symbol, ok := symbolOverrides[code]
	if !ok {
		unit, err := currency.ParseISO(code)
		if err != nil {
			symbol = code
		} else {
			symbol = printer.Sprint(currency.NarrowSymbol(unit))
		}
	}

	return Currency{
		Code:    code,
		symbol:  symbol,
		printer: printer,
	}
}

// Symbol returns the currency symbol, e.g. "₹" for INR.
func (c Currency) Symbol() string {
	return c.symbol
}

// Format formats a whole amount with grouping separators and the symbol.
func (c Currency) Format(amount float64) string {
	formatted := c.printer.Sprint(number.Decimal(amount, number.MaxFractionDigits(0)))
	if prefixCurrencies[c.Code] {
		return c.symbol + formatted
	}
	return formatted + " " + c.symbol
}

// FormatExact formats an amount with grouping separators and exactly two
// fraction digits.
func (c Currency) FormatExact(amount float64) string {
	formatted := c.printer.Sprint(number.Decimal(amount,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	if prefixCurrencies[c.Code] {
		return c.symbol + formatted
	}
	return formatted + " " + c.symbol
}
