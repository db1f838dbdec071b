package incoming

import (
	"regexp"
	"strings"

	"github.com/Robindeep5394188/Material-Review/pkg/quantity"
)

// noteDateRe spots a slash or ISO date inside a free-text shipment note.
var noteDateRe = regexp.MustCompile(`\b\d{1,2}/\d{1,2}(?:/\d{2,4})?\b|\b\d{4}-\d{2}-\d{2}\b`)

// Shipment is one inbound delivery of a component article.
type Shipment struct {
	Article string  `json:"article" db:"article"`
	Qty     float64 `json:"qty" db:"qty"`
	ETA     string  `json:"eta" db:"eta"`
	Note    string  `json:"note" db:"note"`
}

// Text renders the incoming-coverage annotation for one short article:
// the earliest shipments that together cover the shortfall, in arrival
// order. A note carrying its own date outranks the ETA column; a dateless
// note only shows when no ETA exists. Returns the empty string when there
// is nothing short or nothing inbound.
func Text(shipments []Shipment, shortQty float64) string {
	if shortQty <= quantity.Epsilon || len(shipments) == 0 {
		return ""
	}

	remaining := shortQty
	var segments []string
	for _, shipment := range shipments {
		if shipment.Qty <= quantity.Epsilon && shipment.Note == "" && shipment.ETA == "" {
			continue
		}
		if remaining <= quantity.Epsilon {
			break
		}
		if shipment.Qty > 0 {
			remaining -= shipment.Qty
		}

		var parts []string
		if shipment.Qty > quantity.Epsilon {
			parts = append(parts, quantity.Format(shipment.Qty))
		}
		switch {
		case noteDateRe.MatchString(shipment.Note):
			parts = append(parts, shipment.Note)
		case shipment.ETA != "":
			parts = append(parts, "ETA "+shipment.ETA)
		case shipment.Note != "":
			parts = append(parts, shipment.Note)
		}
		if len(parts) > 0 {
			segments = append(segments, strings.Join(parts, " "))
		}
	}

	if len(segments) == 0 {
		return ""
	}
	return "Incoming: " + strings.Join(segments, " | ")
}
