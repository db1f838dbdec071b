package demand

import (
	"math"

	"github.com/Robindeep5394188/Material-Review/pkg/models"
	"github.com/Robindeep5394188/Material-Review/pkg/quantity"
)

// Normalize expands extracted component lists into one flat demand record
// per (PO line, category, article). The needed quantity is the
// per-assembly quantity scaled by the line's open eaches, rounded to the
// nearest whole unit; entries whose per-assembly quantity is unknown, and
// results at or below the epsilon floor, produce no demand.
func Normalize(lines []models.POLine, boms map[string]models.BOMLine) []models.DemandRecord {
	var records []models.DemandRecord
	for _, line := range lines {
		bom, ok := boms[line.Key]
		if !ok || !bom.HasEntries() {
			continue
		}
		for _, category := range models.Categories {
			for _, entry := range bom[category] {
				if entry.Article == "" || entry.QtyPer == nil {
					continue
				}
				need := math.Round(*entry.QtyPer * line.QtyEA)
				if need <= quantity.Epsilon {
					continue
				}
				records = append(records, models.DemandRecord{
					POLine:       line.Key,
					DeliveryDate: line.DeliveryDate,
					Category:     category,
					Article:      entry.Article,
					NeedQty:      need,
					QtyPer:       *entry.QtyPer,
					QtyEA:        line.QtyEA,
				})
			}
		}
	}
	return records
}
