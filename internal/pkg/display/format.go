// Package display renders prices for the paywall the way the German
// storefront shows them. Output is presentational only.
package display

import (
	"fmt"
	"strconv"
	"strings"

	"paywall-app/internal/domain/prices"

	"golang.org/x/text/currency"
)

var symbols = map[string]string{
	"EUR": "€",
	"USD": "$",
	"GBP": "£",
	"JPY": "¥",
}

// FormatAmount formats a minor-unit amount in de-DE style, e.g. 999 EUR as
// "9,99 €". The number of decimals follows ISO 4217 for the currency.
func FormatAmount(minor int64, code string) string {
	iso := strings.ToUpper(strings.TrimSpace(code))
	scale := 2
	if unit, err := currency.ParseISO(iso); err == nil {
		scale, _ = currency.Standard.Rounding(unit)
		iso = unit.String()
	}

	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}

	var pow int64 = 1
	for i := 0; i < scale; i++ {
		pow *= 10
	}
	major := groupThousands(strconv.FormatInt(minor/pow, 10))
	num := major
	if scale > 0 {
		num = fmt.Sprintf("%s,%0*d", major, scale, minor%pow)
	}

	sym, ok := symbols[iso]
	if !ok {
		sym = iso
	}
	return sign + num + " " + sym
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatInterval turns a recurrence into a German phrase.
func FormatInterval(interval string, count int64) string {
	switch {
	case interval == prices.IntervalMonth && count == 1:
		return "monatlich"
	case interval == prices.IntervalMonth && count > 1:
		return fmt.Sprintf("alle %d Monate", count)
	case interval == prices.IntervalYear && count == 1:
		return "jährlich"
	case interval == prices.IntervalYear && count > 1:
		return fmt.Sprintf("alle %d Jahre", count)
	default:
		return fmt.Sprintf("%d %s", count, interval)
	}
}
