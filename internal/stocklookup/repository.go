package stocklookup

import (
	"fmt"
	"sort"

	"github.com/doug-martin/goqu/v9"

	"github.com/Robindeep5394188/Material-Review/internal/repository"
	"github.com/Robindeep5394188/Material-Review/pkg/models"
)

// chunkSize bounds the IN-list length per query; the inventory view gets
// slow past a few hundred bound parameters.
const chunkSize = 200

// StockRepository reads component inventory positions from the
// inventory_balance view.
type StockRepository struct {
	repository *repository.Repository
}

func NewStockRepository(r *repository.Repository) *StockRepository {
	return &StockRepository{repository: r}
}

// Fetch returns one stock record per requested article. Articles the view
// does not know come back zero-filled rather than missing, so callers can
// index the result without presence checks.
func (r *StockRepository) Fetch(articles []string) (map[string]models.StockRecord, error) {
	wanted := dedupeSorted(articles)
	records := make(map[string]models.StockRecord, len(wanted))

	for start := 0; start < len(wanted); start += chunkSize {
		end := start + chunkSize
		if end > len(wanted) {
			end = len(wanted)
		}
		chunk := wanted[start:end]

		if err := r.fetchChunk(chunk, records); err != nil {
			return nil, err
		}
	}

	for _, article := range wanted {
		if _, ok := records[article]; !ok {
			records[article] = models.StockRecord{Article: article}
		}
	}
	return records, nil
}

// fetchChunk runs the primary lookup on the article column, then retries
// the leftovers against the zero-padded article form some plants use.
func (r *StockRepository) fetchChunk(chunk []string, records map[string]models.StockRecord) error {
	found, err := r.query(goqu.I("b.article").In(chunk))
	if err != nil {
		return err
	}
	for _, record := range found {
		records[record.Article] = record
	}

	var missing []string
	for _, article := range chunk {
		if _, ok := records[article]; !ok {
			missing = append(missing, article)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	fallback, err := r.query(goqu.L("ltrim(b.article, '0')").In(missing))
	if err != nil {
		return err
	}
	for _, record := range fallback {
		key := trimLeadingZeros(record.Article)
		if _, ok := records[key]; !ok {
			record.Article = key
			records[key] = record
		}
	}
	return nil
}

func (r *StockRepository) query(where goqu.Expression) ([]models.StockRecord, error) {
	var found []models.StockRecord
	query := r.repository.GoquDBWrapper.
		From(goqu.T("inventory_balance").As("b")).
		Select(
			goqu.I("b.item").As("item"),
			goqu.I("b.article").As("article"),
			goqu.I("b.description").As("description"),
			goqu.I("b.qoh").As("qoh"),
			goqu.I("b.allocation").As("allocation"),
			goqu.I("b.qc_hold_qci").As("qc_hold_qci"),
			goqu.I("b.qc_hold_qch").As("qc_hold_qch"),
		).
		Where(where)

	if err := query.Executor().ScanStructs(&found); err != nil {
		return nil, fmt.Errorf("failed to query inventory balance: %w", err)
	}
	return found, nil
}

func dedupeSorted(articles []string) []string {
	seen := make(map[string]bool, len(articles))
	var out []string
	for _, article := range articles {
		if article == "" || seen[article] {
			continue
		}
		seen[article] = true
		out = append(out, article)
	}
	sort.Strings(out)
	return out
}

func trimLeadingZeros(article string) string {
	i := 0
	for i < len(article)-1 && article[i] == '0' {
		i++
	}
	return article[i:]
}
