package changes

import (
	"regexp"
	"strconv"
	"strings"
)

var availMentionRe = regexp.MustCompile(`\bavail\s+([0-9,]+)\b`)

// describe derives the human label for one field change.
func describe(field, oldValue, newValue string) string {
	switch field {
	case "DeliveryDate", "StatisticalDate":
		return "Date changed"
	case "QtyEA":
		return "Qty changed"
	case "Article":
		return "Article changed"
	case "Status":
		return "Status changed"
	case "FS_Lot", "FS_Status":
		return "FS changed"
	case "Short_Detail":
		return describeShortDetail(oldValue, newValue)
	}
	return field + " changed"
}

// describeShortDetail inspects the availability figures embedded in the
// short-detail text. When either side mentions a positive total and the
// totals differ, the label reports the direction; otherwise the wording
// change is reported generically.
func describeShortDetail(oldValue, newValue string) string {
	oldSum := sumAvailMentions(oldValue)
	newSum := sumAvailMentions(newValue)
	if (oldSum > 0 || newSum > 0) && oldSum != newSum {
		if newSum > oldSum {
			return "Availability increased"
		}
		return "Availability decreased"
	}
	return "Short detail changed"
}

// sumAvailMentions totals every "avail N" figure in a short-detail text.
func sumAvailMentions(detail string) float64 {
	var sum float64
	for _, m := range availMentionRe.FindAllStringSubmatch(detail, -1) {
		f, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil {
			continue
		}
		sum += f
	}
	return sum
}
