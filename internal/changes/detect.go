package changes

import (
	"sort"
	"time"

	"github.com/Robindeep5394188/Material-Review/pkg/models"
)

// Detect compares the current run's view against the previous run's
// persisted snapshot and emits one change record per tracked field whose
// string value differs. Only PO lines present on both sides are compared;
// added and removed lines are not reported. Output order is (PO line,
// tracked-field order), which keeps the run's batch deterministic.
func Detect(runTS time.Time, current, previous []models.ViewSnapshotRow) []models.ChangeRecord {
	prevByKey := make(map[string]models.ViewSnapshotRow, len(previous))
	for _, row := range previous {
		prevByKey[row.POLine] = row
	}
	currByKey := make(map[string]models.ViewSnapshotRow, len(current))
	var keys []string
	for _, row := range current {
		if _, ok := prevByKey[row.POLine]; !ok {
			continue
		}
		if _, seen := currByKey[row.POLine]; !seen {
			keys = append(keys, row.POLine)
		}
		currByKey[row.POLine] = row
	}
	sort.Strings(keys)

	var records []models.ChangeRecord
	for _, key := range keys {
		curr := currByKey[key].Tracked()
		prev := prevByKey[key].Tracked()
		for _, field := range models.TrackedFields {
			if curr[field] == prev[field] {
				continue
			}
			records = append(records, models.ChangeRecord{
				RunTS:       runTS,
				POLine:      key,
				Field:       field,
				Old:         prev[field],
				New:         curr[field],
				Description: describe(field, prev[field], curr[field]),
			})
		}
	}
	return records
}
