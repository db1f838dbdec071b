package allocation

import (
	"strings"
	"time"
)

// Source reports mix US-style slash dates with ISO dashes, with and
// without zero padding or century.
var dateLayouts = []string{
	"1/2/2006",
	"1/2/06",
	"2006-1-2",
}

// ParseDeliveryDate reads a delivery date in any of the report formats.
// The second return is false for missing or unrecognized text; such
// records sort after every dated one.
func ParseDeliveryDate(v string) (time.Time, bool) {
	s := strings.TrimSpace(v)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
