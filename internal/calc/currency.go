package calc

import "github.com/shopspring/decimal"

const DefaultCurrency = "USD"

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"Rp":  "Rp",
	"IDR": "Rp",
}

func CurrencySymbol(code string) string {
	if code == "" {
		return "$"
	}
	if sym, ok := currencySymbols[code]; ok {
		return sym
	}
	return code
}

// FormatCurrency renders amount at two decimals prefixed by the currency
// symbol. Rupiah amounts carry a space after the symbol.
func FormatCurrency(amount decimal.Decimal, code string) string {
	sym := CurrencySymbol(code)
	if code == "Rp" || code == "IDR" {
		return sym + " " + Fixed(amount, 2)
	}
	return sym + Fixed(amount, 2)
}
