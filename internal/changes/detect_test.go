package changes

import (
	"testing"
	"time"

	"github.com/Robindeep5394188/Material-Review/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotRow(poLine string) models.ViewSnapshotRow {
	return models.ViewSnapshotRow{
		POLine:          poLine,
		Article:         "8901234",
		QtyEA:           "60",
		DeliveryDate:    "9/15/26",
		StatisticalDate: "9/20/26",
		Status:          models.StatusOK,
	}
}

func TestDetectNoChanges(t *testing.T) {
	rows := []models.ViewSnapshotRow{snapshotRow("4500123456-10")}
	assert.Empty(t, Detect(time.Now(), rows, rows))
}

func TestDetectTrackedFieldDifferences(t *testing.T) {
	runTS := time.Date(2026, 8, 31, 6, 0, 0, 0, time.UTC)

	previous := snapshotRow("4500123456-10")
	current := snapshotRow("4500123456-10")
	current.DeliveryDate = "9/22/26"
	current.QtyEA = "80"
	current.Status = models.StatusShort

	records := Detect(runTS, []models.ViewSnapshotRow{current}, []models.ViewSnapshotRow{previous})
	require.Len(t, records, 3)

	// Records follow the tracked-field order.
	assert.Equal(t, "QtyEA", records[0].Field)
	assert.Equal(t, "Qty changed", records[0].Description)
	assert.Equal(t, "60", records[0].Old)
	assert.Equal(t, "80", records[0].New)

	assert.Equal(t, "DeliveryDate", records[1].Field)
	assert.Equal(t, "Date changed", records[1].Description)

	assert.Equal(t, "Status", records[2].Field)
	assert.Equal(t, "Status changed", records[2].Description)

	for _, record := range records {
		assert.Equal(t, runTS, record.RunTS)
		assert.Equal(t, "4500123456-10", record.POLine)
	}
}

func TestDetectIgnoresAddedAndRemovedLines(t *testing.T) {
	previous := []models.ViewSnapshotRow{snapshotRow("4500111111-10")}
	current := []models.ViewSnapshotRow{snapshotRow("4500222222-10")}
	assert.Empty(t, Detect(time.Now(), current, previous))
}

func TestDetectSortsByPOLine(t *testing.T) {
	older := snapshotRow("4500222222-10")
	older.QtyEA = "10"
	newer := snapshotRow("4500111111-10")
	newer.QtyEA = "20"

	current := []models.ViewSnapshotRow{older, newer}
	previous := []models.ViewSnapshotRow{snapshotRow("4500222222-10"), snapshotRow("4500111111-10")}

	records := Detect(time.Now(), current, previous)
	require.Len(t, records, 2)
	assert.Equal(t, "4500111111-10", records[0].POLine)
	assert.Equal(t, "4500222222-10", records[1].POLine)
}

func TestDescribeLabels(t *testing.T) {
	tests := []struct {
		field    string
		expected string
	}{
		{"DeliveryDate", "Date changed"},
		{"StatisticalDate", "Date changed"},
		{"QtyEA", "Qty changed"},
		{"Article", "Article changed"},
		{"Status", "Status changed"},
		{"FS_Lot", "FS changed"},
		{"FS_Status", "FS changed"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			assert.Equal(t, tt.expected, describe(tt.field, "a", "b"))
		})
	}
}

func TestDescribeShortDetail(t *testing.T) {
	tests := []struct {
		name     string
		old      string
		new      string
		expected string
	}{
		{
			name:     "availability increased",
			old:      "Glass 8801234 (need 240 pcs, avail 40 pcs)",
			new:      "Glass 8801234 (need 240 pcs, avail 180 pcs)",
			expected: "Availability increased",
		},
		{
			name:     "availability decreased",
			old:      "Glass 8801234 (need 240 pcs, avail 1,200 pcs)",
			new:      "Glass 8801234 (need 240 pcs, avail 90 pcs)",
			expected: "Availability decreased",
		},
		{
			name:     "sums across multiple mentions",
			old:      "Glass 8801234 (need 240 pcs, avail 40 pcs), FRG 8807777 (need 21 kg, avail 5 kg)",
			new:      "Glass 8801234 (need 240 pcs, avail 40 pcs), FRG 8807777 (need 21 kg, avail 20 kg)",
			expected: "Availability increased",
		},
		{
			name:     "doubled whitespace before the figure",
			old:      "Glass 8801234 (need 240 pcs, avail  40 pcs)",
			new:      "Glass 8801234 (need 240 pcs, avail 180 pcs)",
			expected: "Availability increased",
		},
		{
			name:     "no numeric mentions",
			old:      "Component Supported",
			new:      "",
			expected: "Short detail changed",
		},
		{
			name:     "equal sums",
			old:      "Glass 8801234 (need 240 pcs, avail 40 pcs)",
			new:      "Glass 8809999 (need 100 pcs, avail 40 pcs)",
			expected: "Short detail changed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, describe("Short_Detail", tt.old, tt.new))
		})
	}
}
