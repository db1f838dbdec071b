package review

import (
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/Robindeep5394188/Material-Review/internal/repository"
)

// OverrideRepository stores the manual "supported" overrides per PO line.
// Only set overrides are stored; absence means false.
type OverrideRepository struct {
	repository *repository.Repository
}

func NewOverrideRepository(r *repository.Repository) *OverrideRepository {
	return &OverrideRepository{repository: r}
}

// All returns the set of PO lines with an active override.
func (r *OverrideRepository) All() (map[string]bool, error) {
	var keys []string
	query := r.repository.GoquDBWrapper.
		From("support_overrides").
		Select(goqu.I("po_line"))

	if err := query.Executor().ScanVals(&keys); err != nil {
		return nil, fmt.Errorf("failed to query support overrides: %w", err)
	}

	overrides := make(map[string]bool, len(keys))
	for _, key := range keys {
		overrides[key] = true
	}
	return overrides, nil
}

// Set turns the override for one PO line on or off.
func (r *OverrideRepository) Set(poLine string, supported bool) error {
	if !supported {
		return r.Delete([]string{poLine})
	}

	query := r.repository.GoquDBWrapper.Insert("support_overrides").
		Rows(goqu.Record{"po_line": poLine}).
		OnConflict(goqu.DoNothing())

	if _, err := query.Executor().Exec(); err != nil {
		return fmt.Errorf("failed to set support override: %w", err)
	}
	return nil
}

// Delete removes the overrides for the given PO lines. Used by the
// pipeline to clear overrides whose line no longer qualifies.
func (r *OverrideRepository) Delete(poLines []string) error {
	if len(poLines) == 0 {
		return nil
	}

	query := r.repository.GoquDBWrapper.Delete("support_overrides").
		Where(goqu.I("po_line").In(poLines))

	if _, err := query.Executor().Exec(); err != nil {
		return fmt.Errorf("failed to delete support overrides: %w", err)
	}
	return nil
}
