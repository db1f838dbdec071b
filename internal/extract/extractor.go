package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Robindeep5394188/Material-Review/pkg/models"
	"github.com/Robindeep5394188/Material-Review/pkg/quantity"
)

var (
	lineHeaderRe = regexp.MustCompile(`(?i)^\s*(\d{5})\s+(Open|Closed|Cancelled|Partially\s+Delivered|Partially|Delivered)\b`)
	articleRe    = regexp.MustCompile(`\b(\d{7,9})\b`)
	markerRe     = regexp.MustCompile(`(?i)\bQTY\s+PER\s+ASSEMBLY\b`)
	numberRe     = regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?)`)

	poNotesRe          = regexp.MustCompile(`(?i)\bP\.?O\.?\s*Notes?\b`)
	filledCandleRe     = regexp.MustCompile(`(?i)\bFilled\s+Candle\b`)
	filledCandleCodeRe = regexp.MustCompile(`\b[A-Z]{2,}\d{4,}\s+\d+PK\b`)
)

// Document is the extracted text of one purchase-order document: pages in
// order, each page an ordered slice of text lines.
type Document struct {
	Order string
	Pages [][]string
}

// Meta is order-level information scanned from a document independent of
// the per-line BOM data.
type Meta struct {
	PONotes      string `json:"po_notes"`
	FilledCandle string `json:"filled_candle"`
}

// BOM walks the document with a current-line cursor and collects one
// component list per (order line, category). A line only becomes a BOM
// candidate once a line header has been seen and the line carries the
// per-assembly-quantity marker. Extraction is best effort: lines matching
// no rule are skipped, a document with no usable text yields an empty map.
func BOM(doc Document) map[string]models.BOMLine {
	perLine := make(map[string]models.BOMLine)
	var lineOrder []string
	currentLine := ""

	for _, page := range doc.Pages {
		for _, raw := range page {
			s := strings.TrimSpace(raw)
			if s == "" {
				continue
			}

			if m := lineHeaderRe.FindStringSubmatch(s); m != nil {
				currentLine = quantity.NormalizeLine(m[1])
				if _, ok := perLine[currentLine]; !ok {
					perLine[currentLine] = make(models.BOMLine)
					lineOrder = append(lineOrder, currentLine)
				}
				continue
			}

			if currentLine == "" || !markerRe.MatchString(s) {
				continue
			}

			category, ok := Classify(s)
			if !ok {
				continue
			}

			art := articleRe.FindStringSubmatch(s)
			if art == nil {
				continue
			}

			entry := models.BOMEntry{Article: art[1], QtyPer: qtyPerAssembly(s)}
			perLine[currentLine][category] = appendEntry(perLine[currentLine][category], entry)
		}
	}

	propagateShared(perLine, lineOrder)
	return perLine
}

// qtyPerAssembly reads the last numeric token after the marker phrase.
// Absence means unknown, which is distinct from zero.
func qtyPerAssembly(line string) *float64 {
	loc := markerRe.FindStringIndex(line)
	if loc == nil {
		return nil
	}
	tail := line[loc[1]:]
	nums := numberRe.FindAllString(tail, -1)
	if len(nums) == 0 {
		return nil
	}
	last := strings.ReplaceAll(nums[len(nums)-1], ",", "")
	f, err := strconv.ParseFloat(last, 64)
	if err != nil {
		return nil
	}
	return &f
}

// appendEntry adds an entry unless its article is already present.
func appendEntry(entries []models.BOMEntry, e models.BOMEntry) []models.BOMEntry {
	for _, have := range entries {
		if have.Article == e.Article {
			return entries
		}
	}
	return append(entries, e)
}

// propagateShared copies a category's entries onto sibling order lines
// that extracted nothing for that category. Multi-line orders usually
// repeat the component block once, so an empty sibling means "same as the
// others", not "no components".
func propagateShared(perLine map[string]models.BOMLine, lineOrder []string) {
	if len(lineOrder) < 2 {
		return
	}
	for _, category := range models.Categories {
		var shared []models.BOMEntry
		for _, ln := range lineOrder {
			for _, e := range perLine[ln][category] {
				shared = appendEntry(shared, e)
			}
		}
		if len(shared) == 0 {
			continue
		}
		for _, ln := range lineOrder {
			if len(perLine[ln][category]) == 0 {
				perLine[ln][category] = append([]models.BOMEntry(nil), shared...)
			}
		}
	}
}

// ExtractMeta scans a document for the order-level PO notes and the
// filled-candle article. Both scans stop at the first hit.
func ExtractMeta(doc Document) Meta {
	var lines []string
	for _, page := range doc.Pages {
		for _, raw := range page {
			if s := strings.TrimSpace(raw); s != "" {
				lines = append(lines, s)
			}
		}
	}

	var meta Meta
	for i, line := range lines {
		if meta.PONotes == "" && poNotesRe.MatchString(line) {
			meta.PONotes = notesAfter(line, lines[i+1:])
		}
		if meta.FilledCandle == "" && filledCandleRe.MatchString(line) {
			if m := articleRe.FindStringSubmatch(line); m != nil {
				meta.FilledCandle = m[1]
			} else if m := filledCandleCodeRe.FindString(line); m != "" {
				meta.FilledCandle = strings.TrimSpace(m)
			}
		}
		if meta.PONotes != "" && meta.FilledCandle != "" {
			break
		}
	}
	return meta
}

// notesAfter returns the text following the "P.O. Notes:" label, falling
// back to the next non-empty document line.
func notesAfter(line string, rest []string) string {
	if _, after, found := strings.Cut(line, ":"); found {
		if s := strings.TrimSpace(after); s != "" {
			return s
		}
	}
	for _, nxt := range rest {
		if s := strings.TrimSpace(nxt); s != "" {
			return s
		}
	}
	return ""
}
