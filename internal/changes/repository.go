package changes

import (
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"

	"github.com/Robindeep5394188/Material-Review/internal/repository"
	"github.com/Robindeep5394188/Material-Review/pkg/models"
)

// HistoryRepository persists change records in the append-only
// change_history table.
type HistoryRepository struct {
	repository *repository.Repository
}

func NewHistoryRepository(r *repository.Repository) *HistoryRepository {
	return &HistoryRepository{repository: r}
}

// ListFilter narrows a history query. Zero values mean "no constraint".
type ListFilter struct {
	From   *time.Time
	To     *time.Time
	POLine string
	Search string
}

// Append inserts one run's change batch in detection order.
func (r *HistoryRepository) Append(records []models.ChangeRecord) error {
	if len(records) == 0 {
		return nil
	}

	rows := make([]goqu.Record, 0, len(records))
	for _, record := range records {
		rows = append(rows, goqu.Record{
			"run_ts":      record.RunTS,
			"po_line":     record.POLine,
			"field":       record.Field,
			"old_value":   record.Old,
			"new_value":   record.New,
			"description": record.Description,
		})
	}

	query := r.repository.GoquDBWrapper.Insert("change_history").Rows(rows)
	if _, err := query.Executor().Exec(); err != nil {
		return fmt.Errorf("failed to insert change history: %w", err)
	}
	return nil
}

// List returns history rows matching the filter, ordered by run
// timestamp, PO line and field.
func (r *HistoryRepository) List(filter ListFilter) ([]models.ChangeRecord, error) {
	query := r.repository.GoquDBWrapper.
		From(goqu.T("change_history").As("c")).
		Select(
			goqu.I("c.id"),
			goqu.I("c.run_ts"),
			goqu.I("c.po_line"),
			goqu.I("c.field"),
			goqu.I("c.old_value"),
			goqu.I("c.new_value"),
			goqu.I("c.description"),
		).
		Order(goqu.I("c.run_ts").Asc(), goqu.I("c.po_line").Asc(), goqu.I("c.field").Asc())

	if filter.From != nil {
		query = query.Where(goqu.I("c.run_ts").Gte(*filter.From))
	}
	if filter.To != nil {
		query = query.Where(goqu.I("c.run_ts").Lte(*filter.To))
	}
	if filter.POLine != "" {
		query = query.Where(goqu.I("c.po_line").Eq(filter.POLine))
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(goqu.Or(
			goqu.I("c.po_line").ILike(pattern),
			goqu.I("c.description").ILike(pattern),
			goqu.I("c.old_value").ILike(pattern),
			goqu.I("c.new_value").ILike(pattern),
		))
	}

	rows, err := query.Executor().Query()
	if err != nil {
		return nil, fmt.Errorf("failed to query change history: %w", err)
	}
	defer rows.Close()

	var records []models.ChangeRecord
	for rows.Next() {
		var record models.ChangeRecord
		if err := rows.Scan(
			&record.ID,
			&record.RunTS,
			&record.POLine,
			&record.Field,
			&record.Old,
			&record.New,
			&record.Description,
		); err != nil {
			return nil, fmt.Errorf("failed to scan change record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read change history: %w", err)
	}
	return records, nil
}

// Clear deletes the entire history. This is the only way rows ever leave
// the table.
func (r *HistoryRepository) Clear() error {
	query := r.repository.GoquDBWrapper.Delete("change_history")
	if _, err := query.Executor().Exec(); err != nil {
		return fmt.Errorf("failed to clear change history: %w", err)
	}
	return nil
}
