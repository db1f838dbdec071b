package screening

import (
	"testing"

	"github.com/doug-martin/goqu/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderLookup(t *testing.T, where goqu.Ex) string {
	t.Helper()
	sql, _, err := goqu.From("screening_status").Where(where).ToSQL()
	require.NoError(t, err)
	return sql
}

func TestPairKeyMatchesExactLine(t *testing.T) {
	sql := renderLookup(t, pairKey("4500123456", "10"))
	assert.Contains(t, sql, `"order_no" = '4500123456'`)
	assert.Contains(t, sql, `"line_no" = '10'`)
}

// The order-level fallback must only see entries imported without a line
// number. A table holding only ("4500123456", line 20) has nothing to say
// about line 10, so the fallback query pins line_no to the empty string
// rather than matching any row of the order.
func TestOrderKeyExcludesOtherLines(t *testing.T) {
	sql := renderLookup(t, orderKey("4500123456"))
	assert.Contains(t, sql, `"order_no" = '4500123456'`)
	assert.Contains(t, sql, `"line_no" = ''`)
}
