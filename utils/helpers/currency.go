package helpers

import (
	"fmt"
	"strings"

	"bomapay-gateway/domain/constants"

	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

// minor unit exponent per ISO 4217 numeric code, 2 when not listed
var currencyExponents = map[string]int32{
	"392": 0, // JPY
	"410": 0, // KRW
	"048": 3, // BHD
	"414": 3, // KWD
}

// CurrencyCode resolves an alphabetic code (EUR) or a numeric one (978) to the numeric code the
// gateway expects.
func CurrencyCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if numeric, ok := constants.CurrencyCodes[code]; ok {
		return numeric, nil
	}
	for _, numeric := range constants.CurrencyCodes {
		if numeric == code {
			return numeric, nil
		}
	}
	return "", fmt.Errorf("unknown currency %q", code)
}

func IsValidCurrency(code string) bool {
	_, err := CurrencyCode(code)
	return err == nil
}

func exponent(numericCode string) int32 {
	if exp, ok := currencyExponents[numericCode]; ok {
		return exp
	}
	return 2
}

// ToMinorUnits converts a major unit amount ("100.50") into the integer the gateway takes (10050).
// Amounts with more precision than the currency allows are rejected.
func ToMinorUnits(amount string, numericCode string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return 0, fmt.Errorf("amount %q: %w", amount, err)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("amount %q is negative", amount)
	}
	minor := d.Shift(exponent(numericCode))
	if !minor.Equal(minor.Truncate(0)) {
		return 0, fmt.Errorf("amount %q has too many decimal places", amount)
	}
	return minor.IntPart(), nil
}

func FromMinorUnits(amount int64, numericCode string) decimal.Decimal {
	return decimal.NewFromInt(amount).Shift(-exponent(numericCode))
}

// FormatAmount renders minor units for humans, e.g. 123456 in 978 -> "€1,234.56".
func FormatAmount(amount int64, numericCode string) string {
	symbol := constants.CurrencySymbols[numericCode]
	ac := accounting.DefaultAccounting(symbol, int(exponent(numericCode)))
	return ac.FormatMoney(FromMinorUnits(amount, numericCode).InexactFloat64())
}
