package review

import (
	"fmt"
	"strings"

	"github.com/Robindeep5394188/Material-Review/internal/incoming"
	"github.com/Robindeep5394188/Material-Review/pkg/models"
	"github.com/Robindeep5394188/Material-Review/pkg/quantity"
)

// supportedDetail is the short-detail text for a line with demand that
// allocation covered in full.
const supportedDetail = "Component Supported"

// shortDetail renders the per-line shortage text: one segment per SHORT
// record, each optionally extended with the QC-hold balance and the
// inbound shipments that would cover the gap.
func shortDetail(
	results []models.AllocationResult,
	stock map[string]models.StockRecord,
	shipments map[string][]incoming.Shipment,
) string {
	var segments []string
	for _, result := range results {
		if result.Status != models.StatusShort {
			continue
		}

		unit := result.Category.Unit()
		pieces := []string{fmt.Sprintf(
			"%s %s (need %s %s, avail %s %s)",
			result.Category, result.Article,
			quantity.Format(result.NeedQty), unit,
			quantity.Format(result.AvailableStart), unit,
		)}

		if record, ok := stock[result.Article]; ok && (record.HoldQCI > 0 || record.HoldQCH > 0) {
			pieces = append(pieces, fmt.Sprintf(
				"QC Hold QCI %s, QCH %s",
				quantity.Format(record.HoldQCI), quantity.Format(record.HoldQCH),
			))
		}
		if text := incoming.Text(shipments[result.Article], result.Short); text != "" {
			pieces = append(pieces, text)
		}

		segments = append(segments, strings.Join(pieces, " | "))
	}
	return strings.Join(segments, ", ")
}

// withNotes prefixes the order-level PO notes onto a detail text.
func withNotes(notes, detail string) string {
	switch {
	case notes == "":
		return detail
	case detail == "":
		return notes
	}
	return notes + " | " + detail
}
