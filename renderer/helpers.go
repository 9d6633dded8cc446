package renderer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/hyperbtc"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// msgPrinter formats large counts with thousands separators.
var msgPrinter = message.NewPrinter(language.English)

// grouped formats a count with thousands separators: 3,767,000,000.
func grouped(v float64) string { return msgPrinter.Sprintf("%.0f", v) }

// one formats a float with a single decimal, dropping it when zero: 3.8, 21, 449.9.
func one(v float64) string {
	return strings.TrimSuffix(strconv.FormatFloat(v, 'f', 1, 64), ".0")
}

// shortCount abbreviates a count to its magnitude: 3.8B, 260M, 21M.
func shortCount(v float64) string {
	switch {
	case v >= 1e12:
		return one(v/1e12) + "T"
	case v >= 1e9:
		return one(v/1e9) + "B"
	case v >= 1e6:
		return one(v/1e6) + "M"
	case v >= 1e3:
		return one(v/1e3) + "K"
	default:
		return one(v)
	}
}

// shortMoney abbreviates an amount to its magnitude: $449.9T, $121K.
// Below a thousand it falls back to the full form.
func shortMoney(m hyperbtc.Money) string {
	v := m.AsFloat()
	if v < 1000 && v > -1000 {
		return m.String()
	}
	return "$" + shortCount(v)
}

// shortBTC abbreviates a bitcoin amount: 21M, 6.3M.
func shortBTC(b hyperbtc.BTC) string { return shortCount(b.AsFloat()) }

// pctLabel formats a percentile with only the decimals it has: 1%, 39.5%.
func pctLabel(p hyperbtc.Percent) string {
	return strconv.FormatFloat(float64(p), 'f', -1, 64) + "%"
}

// wealthShare formats the tiny wealth fractions with full depth: 0.00000002%.
func wealthShare(p hyperbtc.Percent) string {
	return fmt.Sprintf("%.8f%%", float64(p))
}
