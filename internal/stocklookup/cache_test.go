package stocklookup

import (
	"testing"

	"github.com/Robindeep5394188/Material-Review/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestCacheMergeKeepsLatest(t *testing.T) {
	cache := NewCache()
	cache.Merge(map[string]models.StockRecord{
		"8801234": {Article: "8801234", OnHand: 100},
	})
	cache.Merge(map[string]models.StockRecord{
		"8801234": {Article: "8801234", OnHand: 250},
		"8807777": {Article: "8807777", OnHand: 40},
	})

	snapshot := cache.Snapshot([]string{"8801234", "8807777"})
	assert.Equal(t, 250.0, snapshot["8801234"].OnHand)
	assert.Equal(t, 40.0, snapshot["8807777"].OnHand)
}

func TestCacheMissing(t *testing.T) {
	cache := NewCache()
	cache.Merge(map[string]models.StockRecord{"8801234": {Article: "8801234"}})

	missing := cache.Missing([]string{"8801234", "8807777", "8809999"})
	assert.Equal(t, []string{"8807777", "8809999"}, missing)
}

func TestCacheSnapshotZeroFillsUnknown(t *testing.T) {
	cache := NewCache()
	snapshot := cache.Snapshot([]string{"8801234"})

	record := snapshot["8801234"]
	assert.Equal(t, "8801234", record.Article)
	assert.Equal(t, 0.0, record.OnHand)
	assert.Equal(t, 0.0, record.Available())
}

func TestDedupeSorted(t *testing.T) {
	out := dedupeSorted([]string{"9", "3", "3", "", "1"})
	assert.Equal(t, []string{"1", "3", "9"}, out)
}

func TestTrimLeadingZeros(t *testing.T) {
	assert.Equal(t, "8801234", trimLeadingZeros("008801234"))
	assert.Equal(t, "8801234", trimLeadingZeros("8801234"))
	assert.Equal(t, "0", trimLeadingZeros("000"))
}
