package review

import (
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/Robindeep5394188/Material-Review/internal/repository"
	"github.com/Robindeep5394188/Material-Review/pkg/models"
)

// SnapshotRepository persists the previous run's view in view_snapshots.
// The table is read once per run and replaced wholesale at the end.
type SnapshotRepository struct {
	repository *repository.Repository
}

func NewSnapshotRepository(r *repository.Repository) *SnapshotRepository {
	return &SnapshotRepository{repository: r}
}

// Load returns the persisted view rows from the previous run.
func (r *SnapshotRepository) Load() ([]models.ViewSnapshotRow, error) {
	var rows []models.ViewSnapshotRow
	query := r.repository.GoquDBWrapper.
		From("view_snapshots").
		Select(
			goqu.I("po_line"),
			goqu.I("article"),
			goqu.I("qty_ea"),
			goqu.I("delivery_date"),
			goqu.I("statistical_date"),
			goqu.I("status"),
			goqu.I("short_detail"),
			goqu.I("fs_lot"),
			goqu.I("fs_status"),
		).
		Order(goqu.I("po_line").Asc())

	if err := query.Executor().ScanStructs(&rows); err != nil {
		return nil, fmt.Errorf("failed to load view snapshot: %w", err)
	}
	return rows, nil
}

// Replace swaps the whole snapshot for the current run's rows.
func (r *SnapshotRepository) Replace(rows []models.ViewSnapshotRow) error {
	records := make([]goqu.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, goqu.Record{
			"po_line":          row.POLine,
			"article":          row.Article,
			"qty_ea":           row.QtyEA,
			"delivery_date":    row.DeliveryDate,
			"statistical_date": row.StatisticalDate,
			"status":           row.Status,
			"short_detail":     row.ShortDetail,
			"fs_lot":           row.FSLot,
			"fs_status":        row.FSStatus,
		})
	}

	return repository.WithTransaction(r.repository.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		if _, err := tx.Delete("view_snapshots").Executor().Exec(); err != nil {
			return fmt.Errorf("failed to clear view snapshot: %w", err)
		}
		if len(records) == 0 {
			return nil
		}
		if _, err := tx.Insert("view_snapshots").Rows(records).Executor().Exec(); err != nil {
			return fmt.Errorf("failed to insert view snapshot: %w", err)
		}
		return nil
	})
}
