package models

// Category is a component bucket discovered on a PO document line.
type Category string

const (
	CategoryGlass      Category = "Glass"
	CategoryWrap       Category = "WRAP"
	CategoryBackLabel  Category = "BLBL"
	CategoryLid        Category = "LID"
	CategoryFrontLabel Category = "FLBL"
	CategoryFragrance  Category = "FRG"
)

// Categories lists every bucket in display order.
var Categories = []Category{
	CategoryGlass,
	CategoryWrap,
	CategoryBackLabel,
	CategoryLid,
	CategoryFrontLabel,
	CategoryFragrance,
}

// Unit returns the unit of measure quantities in this bucket are counted in.
func (c Category) Unit() string {
	if c == CategoryFragrance {
		return "kg"
	}
	return "pcs"
}

// BOMEntry is one component requirement extracted from a PO document.
// QtyPer is nil when the per-assembly quantity could not be read; nil must
// never be collapsed to zero downstream.
type BOMEntry struct {
	Article string   `json:"article"`
	QtyPer  *float64 `json:"qty_per"`
}

// BOMLine holds the extracted entries for one order line, per category.
type BOMLine map[Category][]BOMEntry

// HasEntries reports whether any category carries at least one entry.
func (b BOMLine) HasEntries() bool {
	for _, entries := range b {
		if len(entries) > 0 {
			return true
		}
	}
	return false
}
