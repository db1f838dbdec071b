package models

// Demand status after allocation.
const (
	StatusOK    = "OK"
	StatusShort = "SHORT"
)

// AllocationResult is one demand record after the FIFO pass.
// AvailableStart is the pool balance before this record drew from it.
type AllocationResult struct {
	DemandRecord
	AvailableStart float64 `json:"available_start"`
	Allocated      float64 `json:"allocated"`
	Short          float64 `json:"short"`
	Status         string  `json:"status"`
}

// LineOutcome aggregates allocation results to PO-line level.
type LineOutcome struct {
	POLine       string  `json:"po_line"`
	Status       string  `json:"status"`
	ShortTotal   float64 `json:"short_total"`
	LowAvailable bool    `json:"low_available"`
}
