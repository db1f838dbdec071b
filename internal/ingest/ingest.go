package ingest

import (
	"fmt"

	"github.com/Robindeep5394188/Material-Review/pkg/models"
	"github.com/Robindeep5394188/Material-Review/pkg/quantity"
)

// Column positions in the source order reports. Every supplier export
// shares this layout, so positions are fixed rather than header-driven.
const (
	colOrder           = 3
	colLine            = 4
	colArticle         = 5
	colDescription     = 6
	colDeliveryDate    = 10
	colStatisticalDate = 11
	colBuyQty          = 12
	colQtyEA           = 14
	colOpenQty         = 18

	minColumns = 19
)

// Table is one source grid: a header row, a sub-header row, then data.
type Table struct {
	Name string
	Rows [][]string
}

// Skipped records a source table that could not be ingested, with the
// reason it was set aside. Skipped tables never fail the run on their
// own; only a run with zero usable tables does.
type Skipped struct {
	Source string `json:"source"`
	Reason string `json:"reason"`
}

// Result is the merged outcome of one ingestion run.
type Result struct {
	Lines   []models.POLine
	Skipped []Skipped
}

// Combine parses every source table and merges them into one normalized
// PO-line set. Duplicate (order, line) keys are resolved first-seen-wins,
// within a table and then across tables in input order.
func Combine(tables []Table) (Result, error) {
	var res Result
	seen := make(map[string]bool)
	valid := 0

	for _, table := range tables {
		lines, skip := parseTable(table)
		if skip != nil {
			res.Skipped = append(res.Skipped, *skip)
			continue
		}
		valid++
		for _, line := range lines {
			if seen[line.Key] {
				continue
			}
			seen[line.Key] = true
			res.Lines = append(res.Lines, line)
		}
	}

	if valid == 0 {
		return Result{Skipped: res.Skipped}, fmt.Errorf("no usable source table among %d input(s)", len(tables))
	}
	return res, nil
}

// parseTable turns one source grid into PO lines, or a skip record when
// the grid does not carry the expected column span.
func parseTable(table Table) ([]models.POLine, *Skipped) {
	if len(table.Rows) == 0 {
		return nil, &Skipped{Source: table.Name, Reason: "table is empty"}
	}
	if len(table.Rows[0]) < minColumns {
		return nil, &Skipped{
			Source: table.Name,
			Reason: fmt.Sprintf("expected at least %d columns, found %d", minColumns, len(table.Rows[0])),
		}
	}

	var lines []models.POLine
	seen := make(map[string]bool)

	// Row 0 is the header; data starts at row 1. Some exports repeat a
	// sub-header there, which the order and open-qty checks below drop.
	for i := 1; i < len(table.Rows); i++ {
		row := table.Rows[i]
		if len(row) < minColumns {
			continue
		}

		order := quantity.NormalizeOrder(row[colOrder])
		if order == "" {
			continue
		}
		openQty := quantity.ParseFloat(row[colOpenQty], 0)
		if openQty <= 0 {
			continue
		}

		buyQty := quantity.ParseFloat(row[colBuyQty], 0)
		qtyEA := quantity.ParseFloat(row[colQtyEA], 0)
		perUnit := quantity.PerUnit(qtyEA, buyQty, openQty)

		line := models.POLine{
			Order:           order,
			Line:            quantity.NormalizeLine(row[colLine]),
			Article:         quantity.NormalizeArticle(row[colArticle]),
			Description:     row[colDescription],
			DeliveryDate:    row[colDeliveryDate],
			StatisticalDate: row[colStatisticalDate],
			QtyEA:           perUnit,
			QtyEAText:       quantity.Format(perUnit),
			OpenQty:         openQty,
		}
		line.Key = line.Order + "-" + line.Line

		if seen[line.Key] {
			continue
		}
		seen[line.Key] = true
		lines = append(lines, line)
	}
	return lines, nil
}
