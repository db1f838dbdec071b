package models

// StockRecord is the inventory position for one component article as
// returned by the stock lookup. Articles with no inventory match come back
// zero-filled rather than missing.
type StockRecord struct {
	Item        string  `json:"item" db:"item"`
	Article     string  `json:"article" db:"article"`
	Description string  `json:"description" db:"description"`
	OnHand      float64 `json:"qoh" db:"qoh"`
	Allocated   float64 `json:"allocation" db:"allocation"`
	HoldQCI     float64 `json:"qc_hold_qci" db:"qc_hold_qci"`
	HoldQCH     float64 `json:"qc_hold_qch" db:"qc_hold_qch"`
}

// Available is the quantity free for new demand. It may be negative when
// existing allocations or QC holds exceed the on-hand balance; callers must
// not clamp it.
func (s StockRecord) Available() float64 {
	return s.OnHand - s.Allocated - s.HoldQCI - s.HoldQCH
}
