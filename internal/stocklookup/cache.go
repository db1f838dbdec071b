package stocklookup

import (
	"sync"

	"github.com/Robindeep5394188/Material-Review/pkg/models"
)

// Cache keeps the stock records already fetched during a session so
// repeated runs only hit the inventory view for unseen articles. Merges
// keep the latest record per article.
type Cache struct {
	mu      sync.RWMutex
	records map[string]models.StockRecord
}

func NewCache() *Cache {
	return &Cache{records: make(map[string]models.StockRecord)}
}

// Merge folds freshly fetched records into the cache, latest wins.
func (c *Cache) Merge(records map[string]models.StockRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for article, record := range records {
		c.records[article] = record
	}
}

// Missing returns the subset of articles the cache has no record for.
func (c *Cache) Missing(articles []string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var missing []string
	for _, article := range articles {
		if _, ok := c.records[article]; !ok {
			missing = append(missing, article)
		}
	}
	return missing
}

// Snapshot copies the cached records for the given articles; articles
// never fetched come back zero-filled.
func (c *Cache) Snapshot(articles []string) map[string]models.StockRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]models.StockRecord, len(articles))
	for _, article := range articles {
		if record, ok := c.records[article]; ok {
			out[article] = record
		} else {
			out[article] = models.StockRecord{Article: article}
		}
	}
	return out
}
