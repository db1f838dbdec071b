package screening

import (
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/Robindeep5394188/Material-Review/internal/repository"
	"github.com/Robindeep5394188/Material-Review/pkg/models"
	"github.com/Robindeep5394188/Material-Review/pkg/quantity"
)

// Repository stores fragrance-screening statuses. Entries are keyed
// either by a full "order-line" pair or by order alone; lookup prefers
// the pair.
type Repository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *Repository {
	return &Repository{repository: r}
}

// Entry is one imported screening row.
type Entry struct {
	Order  string `json:"order" db:"order_no"`
	Line   string `json:"line" db:"line_no"`
	Lot    string `json:"fs_lot" db:"fs_lot"`
	Status string `json:"fs_status" db:"fs_status"`
}

// Import replaces the screening table with a fresh export from the
// screening subsystem. Keys are normalized on the way in so lookups hit
// regardless of the source formatting.
func (r *Repository) Import(entries []Entry) error {
	rows := make([]goqu.Record, 0, len(entries))
	for _, entry := range entries {
		order := quantity.NormalizeOrder(entry.Order)
		if order == "" {
			continue
		}
		rows = append(rows, goqu.Record{
			"order_no":  order,
			"line_no":   quantity.NormalizeLine(entry.Line),
			"fs_lot":    entry.Lot,
			"fs_status": entry.Status,
		})
	}

	return repository.WithTransaction(r.repository.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		if _, err := tx.Delete("screening_status").Executor().Exec(); err != nil {
			return fmt.Errorf("failed to clear screening table: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if _, err := tx.Insert("screening_status").Rows(rows).Executor().Exec(); err != nil {
			return fmt.Errorf("failed to insert screening rows: %w", err)
		}
		return nil
	})
}

// Lookup resolves the screening status for one PO line: an exact
// (order, line) entry wins, then any order-level entry. A miss is not an
// error; it returns an empty status.
func (r *Repository) Lookup(order, line string) (models.ScreeningStatus, error) {
	order = quantity.NormalizeOrder(order)
	line = quantity.NormalizeLine(line)

	status, found, err := r.lookupWhere(pairKey(order, line))
	if err != nil {
		return models.ScreeningStatus{}, err
	}
	if found {
		return status, nil
	}

	status, _, err = r.lookupWhere(orderKey(order))
	if err != nil {
		return models.ScreeningStatus{}, err
	}
	return status, nil
}

// pairKey matches the exact (order, line) entry.
func pairKey(order, line string) goqu.Ex {
	return goqu.Ex{"order_no": order, "line_no": line}
}

// orderKey matches only entries imported without a line number. An entry
// keyed to a different line must never answer for this one.
func orderKey(order string) goqu.Ex {
	return goqu.Ex{"order_no": order, "line_no": ""}
}

func (r *Repository) lookupWhere(where goqu.Ex) (models.ScreeningStatus, bool, error) {
	var status models.ScreeningStatus
	query := r.repository.GoquDBWrapper.
		From("screening_status").
		Select(goqu.I("fs_lot"), goqu.I("fs_status")).
		Where(where).
		Limit(1)

	found, err := query.Executor().ScanStruct(&status)
	if err != nil {
		return models.ScreeningStatus{}, false, fmt.Errorf("failed to query screening status: %w", err)
	}
	return status, found, nil
}
