package allocation

import (
	"sort"

	"github.com/Robindeep5394188/Material-Review/pkg/models"
	"github.com/Robindeep5394188/Material-Review/pkg/quantity"
)

// Thresholds tune the line-level distinctions derived from a pass.
type Thresholds struct {
	// LowStock marks a line when any of its records started drawing from
	// a pool already below this quantity.
	LowStock float64
	// SmallShort bounds the total line shortfall still considered minor.
	SmallShort float64
}

// DefaultThresholds returns the planner-agreed defaults.
func DefaultThresholds() Thresholds {
	return Thresholds{LowStock: 100, SmallShort: 100}
}

// Allocate partitions the available stock among the demand records in
// first-in-first-out order and reports, per record, the pool balance it
// saw, what it received and what it is short. The pass is a pure function
// of its inputs: the snapshot is not mutated and the result order is the
// sorted processing order.
func Allocate(records []models.DemandRecord, stock map[string]float64) []models.AllocationResult {
	sorted := sortRecords(records)

	remaining := make(map[string]float64, len(stock))
	for article, qty := range stock {
		remaining[article] = qty
	}

	results := make([]models.AllocationResult, 0, len(sorted))
	for _, record := range sorted {
		available := remaining[record.Article]
		// A negative pool allocates its (negative) balance in full, so the
		// shortfall reflects the deficit and the pool settles at zero.
		allocated := record.NeedQty
		if available < allocated {
			allocated = available
		}
		remaining[record.Article] = available - allocated

		short := record.NeedQty - allocated
		if short < 0 {
			short = 0
		}

		status := models.StatusOK
		if short > quantity.Epsilon {
			status = models.StatusShort
		}

		results = append(results, models.AllocationResult{
			DemandRecord:   record,
			AvailableStart: available,
			Allocated:      allocated,
			Short:          short,
			Status:         status,
		})
	}
	return results
}

// sortRecords orders demand by delivery date ascending with unparseable
// dates last, then PO-line key, then article. The sort is stable so exact
// ties keep their input order.
func sortRecords(records []models.DemandRecord) []models.DemandRecord {
	sorted := append([]models.DemandRecord(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, oki := ParseDeliveryDate(sorted[i].DeliveryDate)
		dj, okj := ParseDeliveryDate(sorted[j].DeliveryDate)
		switch {
		case oki && !okj:
			return true
		case !oki && okj:
			return false
		case oki && okj && !di.Equal(dj):
			return di.Before(dj)
		}
		if sorted[i].POLine != sorted[j].POLine {
			return sorted[i].POLine < sorted[j].POLine
		}
		return sorted[i].Article < sorted[j].Article
	})
	return sorted
}

// AggregateLines folds per-record results up to PO-line level, keyed by
// PO line. A line is SHORT when any of its records is; LowAvailable when
// any record found the pool below the low-stock threshold before drawing.
func AggregateLines(results []models.AllocationResult, th Thresholds) map[string]models.LineOutcome {
	outcomes := make(map[string]models.LineOutcome)
	for _, r := range results {
		outcome, ok := outcomes[r.POLine]
		if !ok {
			outcome = models.LineOutcome{POLine: r.POLine, Status: models.StatusOK}
		}
		if r.Status == models.StatusShort {
			outcome.Status = models.StatusShort
		}
		outcome.ShortTotal += r.Short
		if r.AvailableStart < th.LowStock {
			outcome.LowAvailable = true
		}
		outcomes[r.POLine] = outcome
	}
	return outcomes
}

// IsSmallShort reports whether a line's total shortfall is positive but
// within the minor-shortfall bound.
func (th Thresholds) IsSmallShort(shortTotal float64) bool {
	return shortTotal > quantity.Epsilon && shortTotal <= th.SmallShort
}
