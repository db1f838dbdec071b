package extract

import (
	"testing"

	"github.com/Robindeep5394188/Material-Review/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected models.Category
		matched  bool
	}{
		{"shrink wrap", "8801111 SHRINK BAND QTY PER ASSEMBLY 1", models.CategoryWrap, true},
		{"sleeve", "Sleeve printed 8802222", models.CategoryWrap, true},
		{"slv token", "SLV 3-WICK 8802223", models.CategoryWrap, true},
		{"front label", "FLBL SPICED APPLE 8803333", models.CategoryFrontLabel, true},
		{"wrap label counts as front", "WLBL HOLIDAY 8803334", models.CategoryFrontLabel, true},
		{"back label", "BLBL SPICED APPLE 8804444", models.CategoryBackLabel, true},
		{"lid", "LID FLAT BLACK 8805555", models.CategoryLid, true},
		{"glass", "GLASS TUMBLER CLEAR 8806666", models.CategoryGlass, true},
		{"cylinder glass", "CYLINDER GLASS 3-WICK 8806667", models.CategoryGlass, true},
		{"fragrance", "FRAG OIL MAHOGANY 8807777", models.CategoryFragrance, true},
		{"frg token", "FRG 8807778 BULK", models.CategoryFragrance, true},
		{"polysheet lid excluded", "POLYSHEET FOR LID 8808888", "", false},
		{"polysheet glass excluded", "POLYSHEET GLASS PROTECT 8808889", "", false},
		{"no rule matches", "CARTON SHIPPER 8809999", "", false},
		{"case insensitive", "glass tumbler 8806666", models.CategoryGlass, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, ok := Classify(tt.line)
			assert.Equal(t, tt.matched, ok)
			assert.Equal(t, tt.expected, category)
		})
	}
}

func TestClassifyPriority(t *testing.T) {
	// A line naming both a sleeve and glass must land in WRAP because the
	// wrap rule precedes the glass rule.
	category, ok := Classify("SLEEVE FOR GLASS TUMBLER 8801234")
	assert.True(t, ok)
	assert.Equal(t, models.CategoryWrap, category)

	// LID outranks GLASS the same way.
	category, ok = Classify("LID FOR GLASS JAR 8801235")
	assert.True(t, ok)
	assert.Equal(t, models.CategoryLid, category)
}
