package quantity

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Epsilon is the tolerance below which a quantity is treated as zero.
const Epsilon = 1e-9

var nonDigitRe = regexp.MustCompile(`\D`)

// NormalizeOrder strips everything but digits from an order number.
// A value with no digits reduces to the empty string, which marks the
// row as not an order row at all.
func NormalizeOrder(v string) string {
	return nonDigitRe.ReplaceAllString(strings.TrimSpace(v), "")
}

// NormalizeLine strips non-digits and leading zeros, so "00010" and "10"
// address the same order line.
func NormalizeLine(v string) string {
	s := strings.TrimSpace(v)
	d := nonDigitRe.ReplaceAllString(s, "")
	if d == "" {
		return s
	}
	n, err := strconv.Atoi(d)
	if err != nil {
		return s
	}
	return strconv.Itoa(n)
}

// NormalizeArticle reduces an article code to its digits, dropping a
// spreadsheet-style ".0" suffix first.
func NormalizeArticle(v string) string {
	s := strings.TrimSpace(v)
	s = strings.TrimSuffix(s, ".0")
	return nonDigitRe.ReplaceAllString(s, "")
}

// ParseFloat reads a quantity that may carry thousands separators.
// Unparseable input yields the fallback, never an error.
func ParseFloat(v string, fallback float64) float64 {
	s := strings.TrimSpace(strings.ReplaceAll(v, ",", ""))
	if s == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return f
}

// Format renders a quantity with trailing zeros trimmed: whole numbers
// without a decimal point, fractions as short as possible.
func Format(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ""
	}
	if math.Abs(f-math.Round(f)) < Epsilon {
		return strconv.FormatInt(int64(math.Round(f)), 10)
	}
	return decimal.NewFromFloat(f).String()
}

// FormatString re-renders a textual quantity through Format. Text that is
// not numeric passes through unchanged.
func FormatString(v string) string {
	s := strings.TrimSpace(v)
	if s == "" {
		return ""
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return s
	}
	return Format(f)
}

// PerUnit computes the per-unit open quantity (qtyEA / buyQty) * openQty.
// A zero buy quantity yields zero rather than an error.
func PerUnit(qtyEA, buyQty, openQty float64) float64 {
	if buyQty == 0 {
		return 0
	}
	ea := decimal.NewFromFloat(qtyEA)
	buy := decimal.NewFromFloat(buyQty)
	open := decimal.NewFromFloat(openQty)
	out, _ := ea.Div(buy).Mul(open).Float64()
	return out
}
