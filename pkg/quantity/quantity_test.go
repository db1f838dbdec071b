package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeOrder(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain digits", "4500123456", "4500123456"},
		{"with prefix", "PO 4500123456", "4500123456"},
		{"whitespace", "  4500123456  ", "4500123456"},
		{"no digits reduces to empty", "draft", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeOrder(tt.input))
		})
	}
}

func TestNormalizeLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"leading zeros", "00010", "10"},
		{"already short", "10", "10"},
		{"mixed", "line 00123", "123"},
		{"zero stays zero", "000", "0"},
		{"no digits falls back", "n/a", "n/a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeLine(tt.input))
		})
	}
}

func TestNormalizeArticle(t *testing.T) {
	assert.Equal(t, "8801234", NormalizeArticle("8801234.0"))
	assert.Equal(t, "8801234", NormalizeArticle(" 8801234 "))
	assert.Equal(t, "", NormalizeArticle(""))
}

func TestParseFloat(t *testing.T) {
	assert.Equal(t, 1234.5, ParseFloat("1,234.5", 0))
	assert.Equal(t, 0.0, ParseFloat("", 0))
	assert.Equal(t, 7.0, ParseFloat("garbage", 7))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"whole number", 6.0, "6"},
		{"near whole", 5.9999999999, "6"},
		{"fraction trims zeros", 0.25, "0.25"},
		{"short float repr", 0.1 + 0.2, "0.3"},
		{"zero", 0, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.input))
		})
	}
}

func TestPerUnit(t *testing.T) {
	tests := []struct {
		name                  string
		qtyEA, buyQty, openQt float64
		expected              float64
	}{
		{"simple", 12, 1, 10, 120},
		{"fractional pack", 6, 12, 24, 12},
		{"zero buy qty yields zero", 6, 0, 24, 0},
		{"zero open qty", 6, 12, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, PerUnit(tt.qtyEA, tt.buyQty, tt.openQt), 1e-9)
		})
	}
}
