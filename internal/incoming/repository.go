package incoming

import (
	"fmt"
	"sort"

	"github.com/doug-martin/goqu/v9"

	"github.com/Robindeep5394188/Material-Review/internal/allocation"
	"github.com/Robindeep5394188/Material-Review/internal/repository"
	"github.com/Robindeep5394188/Material-Review/pkg/quantity"
)

// Repository stores inbound shipment schedules per component article.
type Repository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *Repository {
	return &Repository{repository: r}
}

// Import replaces the shipment schedule with a fresh export.
func (r *Repository) Import(shipments []Shipment) error {
	rows := make([]goqu.Record, 0, len(shipments))
	for _, shipment := range shipments {
		article := quantity.NormalizeArticle(shipment.Article)
		if article == "" || shipment.Qty <= 0 {
			continue
		}
		rows = append(rows, goqu.Record{
			"article": article,
			"qty":     shipment.Qty,
			"eta":     shipment.ETA,
			"note":    shipment.Note,
		})
	}

	return repository.WithTransaction(r.repository.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		if _, err := tx.Delete("incoming_shipments").Executor().Exec(); err != nil {
			return fmt.Errorf("failed to clear incoming shipments: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if _, err := tx.Insert("incoming_shipments").Rows(rows).Executor().Exec(); err != nil {
			return fmt.Errorf("failed to insert incoming shipments: %w", err)
		}
		return nil
	})
}

// ForArticles returns the shipment schedule for each requested article,
// sorted by arrival date with undated shipments last. Articles with
// nothing inbound are simply absent.
func (r *Repository) ForArticles(articles []string) (map[string][]Shipment, error) {
	if len(articles) == 0 {
		return map[string][]Shipment{}, nil
	}

	var shipments []Shipment
	query := r.repository.GoquDBWrapper.
		From("incoming_shipments").
		Select(goqu.I("article"), goqu.I("qty"), goqu.I("eta"), goqu.I("note")).
		Where(goqu.I("article").In(articles))

	if err := query.Executor().ScanStructs(&shipments); err != nil {
		return nil, fmt.Errorf("failed to query incoming shipments: %w", err)
	}

	out := make(map[string][]Shipment)
	for _, shipment := range shipments {
		out[shipment.Article] = append(out[shipment.Article], shipment)
	}
	for _, list := range out {
		sortByArrival(list)
	}
	return out, nil
}

func sortByArrival(shipments []Shipment) {
	sort.SliceStable(shipments, func(i, j int) bool {
		di, oki := allocation.ParseDeliveryDate(shipments[i].ETA)
		dj, okj := allocation.ParseDeliveryDate(shipments[j].ETA)
		switch {
		case oki && !okj:
			return true
		case !oki && okj:
			return false
		case oki && okj:
			return di.Before(dj)
		}
		return false
	})
}
