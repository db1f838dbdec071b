package stocklookup

import "github.com/Robindeep5394188/Material-Review/pkg/models"

// Service combines the inventory repository with the session cache:
// only articles the cache has never seen hit the database.
type Service struct {
	repo  *StockRepository
	cache *Cache
}

func NewService(repo *StockRepository, cache *Cache) *Service {
	return &Service{repo: repo, cache: cache}
}

// Snapshot returns the stock position for every requested article,
// fetching cache misses first.
func (s *Service) Snapshot(articles []string) (map[string]models.StockRecord, error) {
	missing := s.cache.Missing(articles)
	if len(missing) > 0 {
		fetched, err := s.repo.Fetch(missing)
		if err != nil {
			return nil, err
		}
		s.cache.Merge(fetched)
	}
	return s.cache.Snapshot(articles), nil
}
