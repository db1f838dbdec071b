package review

import (
	"testing"

	"github.com/Robindeep5394188/Material-Review/internal/incoming"
	"github.com/Robindeep5394188/Material-Review/pkg/models"
	"github.com/stretchr/testify/assert"
)

func shortResult(category models.Category, article string, need, avail, short float64) models.AllocationResult {
	status := models.StatusShort
	if short == 0 {
		status = models.StatusOK
	}
	return models.AllocationResult{
		DemandRecord: models.DemandRecord{
			Category: category,
			Article:  article,
			NeedQty:  need,
		},
		AvailableStart: avail,
		Allocated:      need - short,
		Short:          short,
		Status:         status,
	}
}

func TestShortDetail(t *testing.T) {
	results := []models.AllocationResult{
		shortResult(models.CategoryGlass, "8801234", 240, 40, 200),
		shortResult(models.CategoryLid, "8805555", 240, 500, 0),
		shortResult(models.CategoryFragrance, "8807777", 21, 5, 16),
	}

	detail := shortDetail(results, nil, nil)
	assert.Equal(t,
		"Glass 8801234 (need 240 pcs, avail 40 pcs), FRG 8807777 (need 21 kg, avail 5 kg)",
		detail)
}

func TestShortDetailWithQCHoldAndIncoming(t *testing.T) {
	results := []models.AllocationResult{
		shortResult(models.CategoryGlass, "8801234", 240, 40, 200),
	}
	stock := map[string]models.StockRecord{
		"8801234": {Article: "8801234", HoldQCI: 60, HoldQCH: 12},
	}
	shipments := map[string][]incoming.Shipment{
		"8801234": {{Article: "8801234", Qty: 500, ETA: "9/22/26"}},
	}

	detail := shortDetail(results, stock, shipments)
	assert.Equal(t,
		"Glass 8801234 (need 240 pcs, avail 40 pcs) | QC Hold QCI 60, QCH 12 | Incoming: 500 ETA 9/22/26",
		detail)
}

func TestShortDetailEmptyWhenNothingShort(t *testing.T) {
	results := []models.AllocationResult{
		shortResult(models.CategoryGlass, "8801234", 240, 500, 0),
	}
	assert.Equal(t, "", shortDetail(results, nil, nil))
}

func TestWithNotes(t *testing.T) {
	assert.Equal(t, "detail", withNotes("", "detail"))
	assert.Equal(t, "notes", withNotes("notes", ""))
	assert.Equal(t, "notes | detail", withNotes("notes", "detail"))
}
