package flags

import (
	"github.com/Robindeep5394188/Material-Review/internal/allocation"
	"github.com/Robindeep5394188/Material-Review/pkg/models"
)

// Compose maps one line's allocation outcome to its presentation flag.
// Checks run in precedence order: a small total shortfall outranks the
// plain shortfall flag, and low remaining availability outranks plain
// support. Lines that never produced demand stay unflagged.
func Compose(outcome models.LineOutcome, hasDemand bool, th allocation.Thresholds) models.Flag {
	if !hasDemand {
		return models.FlagNone
	}
	switch {
	case th.IsSmallShort(outcome.ShortTotal):
		return models.FlagSmallShort
	case outcome.Status == models.StatusShort:
		return models.FlagShort
	case outcome.LowAvailable:
		return models.FlagLowAvailability
	case outcome.Status == models.StatusOK:
		return models.FlagSupported
	}
	return models.FlagNone
}

// ApplyOverride folds a planner's manual "supported" override into a
// computed flag. The override only ever downgrades low availability;
// against any other flag it is stale and must be cleared. The second
// return reports whether the override is still valid for this line.
func ApplyOverride(flag models.Flag, override bool) (models.Flag, bool) {
	if !override {
		return flag, false
	}
	if flag != models.FlagLowAvailability {
		return flag, false
	}
	return models.FlagSupported, true
}
