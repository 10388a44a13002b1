package utils

import (
	"strings"
	"time"

	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ParseBRL parses a Brazilian localized currency string ("R$ 1.234,56") into a
// decimal amount. The decimal comma is the fractional separator; thousands dots
// are stripped before parsing. Bare numbers without the "R$" prefix are accepted.
func ParseBRL(value string) (decimal.Decimal, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return decimal.Zero, apperrors.NewValidationFailedError("amount is required")
	}
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, apperrors.NewValidationFailedError("invalid amount: " + value)
	}
	if amount.IsNegative() {
		return decimal.Zero, apperrors.NewValidationFailedError("amount must not be negative")
	}
	return amount, nil
}

// FormatBRL renders an amount as "R$ 1.234,56": two fractional digits,
// comma as the decimal separator, dots grouping thousands.
// FormatBRL(ParseBRL(s)) returns s for canonical inputs.
func FormatBRL(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	parts := strings.SplitN(fixed, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	out := "R$ " + grouped.String() + "," + fracPart
	if negative {
		out = "-" + out
	}
	return out
}

// FormatDateBR renders a date as dd/mm/yyyy, the pt-BR display format.
func FormatDateBR(t time.Time) string {
	return t.Format("02/01/2006")
}
