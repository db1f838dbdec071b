package models

// Flag is the per-PO-line presentation flag derived from allocation.
type Flag string

const (
	// FlagNone marks a line with no BOM demand at all.
	FlagNone Flag = ""
	// FlagSupported marks a fully supplied line.
	FlagSupported Flag = "supported"
	// FlagShort marks a line with a material shortfall.
	FlagShort Flag = "short"
	// FlagSmallShort marks a line whose total shortfall is positive but
	// under the small-shortfall threshold.
	FlagSmallShort Flag = "small-short"
	// FlagLowAvailability marks a fully supplied line that drained a
	// component pool under the low-stock threshold.
	FlagLowAvailability Flag = "low-availability"
)
