package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sourceRow(order, line, article, buyQty, qtyEA, openQty string) []string {
	row := make([]string, minColumns)
	row[colOrder] = order
	row[colLine] = line
	row[colArticle] = article
	row[colDescription] = "CANDLE 3-WICK"
	row[colDeliveryDate] = "9/15/26"
	row[colStatisticalDate] = "9/20/26"
	row[colBuyQty] = buyQty
	row[colQtyEA] = qtyEA
	row[colOpenQty] = openQty
	return row
}

func sourceTable(name string, dataRows ...[]string) Table {
	rows := [][]string{
		make([]string, minColumns), // header
	}
	return Table{Name: name, Rows: append(rows, dataRows...)}
}

func TestCombineNormalizesRows(t *testing.T) {
	result, err := Combine([]Table{sourceTable("orders.csv",
		sourceRow("PO-4500123456", "00010", "8901234.0", "10", "120", "5"),
	)})
	require.NoError(t, err)
	require.Len(t, result.Lines, 1)

	line := result.Lines[0]
	assert.Equal(t, "4500123456-10", line.Key)
	assert.Equal(t, "4500123456", line.Order)
	assert.Equal(t, "10", line.Line)
	assert.Equal(t, "8901234", line.Article)
	assert.Equal(t, "9/15/26", line.DeliveryDate)
	assert.Equal(t, 5.0, line.OpenQty)
	// per-unit quantity: 120/10 * 5
	assert.Equal(t, 60.0, line.QtyEA)
	assert.Equal(t, "60", line.QtyEAText)
}

func TestCombineKeepsFirstDataRow(t *testing.T) {
	result, err := Combine([]Table{sourceTable("orders.csv",
		sourceRow("4500123456", "10", "8901234", "1", "12", "3"),
		sourceRow("4500999999", "10", "7777777", "1", "12", "3"),
	)})
	require.NoError(t, err)
	require.Len(t, result.Lines, 2)
	assert.Equal(t, "4500123456-10", result.Lines[0].Key)
	assert.Equal(t, "4500999999-10", result.Lines[1].Key)
}

func TestCombineDropsResidualSubHeaderRow(t *testing.T) {
	subHeader := sourceRow("Purchase Order", "Line", "Article", "", "", "")
	result, err := Combine([]Table{sourceTable("orders.csv",
		subHeader,
		sourceRow("4500123456", "10", "8901234", "1", "12", "3"),
	)})
	require.NoError(t, err)
	require.Len(t, result.Lines, 1)
	assert.Equal(t, "4500123456-10", result.Lines[0].Key)
}

func TestCombineRowAcceptance(t *testing.T) {
	tests := []struct {
		name    string
		row     []string
		wantLen int
	}{
		{"accepted", sourceRow("4500123456", "10", "8901234", "1", "12", "3"), 1},
		{"no digits in order", sourceRow("TOTAL", "10", "8901234", "1", "12", "3"), 0},
		{"zero open qty", sourceRow("4500123456", "10", "8901234", "1", "12", "0"), 0},
		{"negative open qty", sourceRow("4500123456", "10", "8901234", "1", "12", "-2"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Combine([]Table{sourceTable("orders.csv", tt.row)})
			require.NoError(t, err)
			assert.Len(t, result.Lines, tt.wantLen)
		})
	}
}

func TestCombineDivisionByZeroYieldsZeroQty(t *testing.T) {
	result, err := Combine([]Table{sourceTable("orders.csv",
		sourceRow("4500123456", "10", "8901234", "0", "12", "3"),
	)})
	require.NoError(t, err)
	require.Len(t, result.Lines, 1)
	assert.Equal(t, 0.0, result.Lines[0].QtyEA)
	assert.Equal(t, "0", result.Lines[0].QtyEAText)
}

func TestCombineFirstSeenWins(t *testing.T) {
	first := sourceTable("first.csv",
		sourceRow("4500123456", "10", "8901234", "1", "12", "3"),
		sourceRow("4500123456", "10", "7777777", "1", "99", "9"), // dup within table
	)
	second := sourceTable("second.csv",
		sourceRow("4500123456", "10", "5555555", "1", "50", "2"), // dup across tables
		sourceRow("4500123456", "20", "5555555", "1", "50", "2"),
	)

	result, err := Combine([]Table{first, second})
	require.NoError(t, err)
	require.Len(t, result.Lines, 2)
	assert.Equal(t, "8901234", result.Lines[0].Article)
	assert.Equal(t, "4500123456-20", result.Lines[1].Key)
}

func TestCombineSkipsShortTables(t *testing.T) {
	short := Table{Name: "short.csv", Rows: [][]string{make([]string, 5)}}
	good := sourceTable("orders.csv", sourceRow("4500123456", "10", "8901234", "1", "12", "3"))

	result, err := Combine([]Table{short, good})
	require.NoError(t, err)
	assert.Len(t, result.Lines, 1)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "short.csv", result.Skipped[0].Source)
	assert.Contains(t, result.Skipped[0].Reason, "19 columns")
}

func TestCombineFailsWithoutAnyValidTable(t *testing.T) {
	_, err := Combine([]Table{
		{Name: "empty.csv"},
		{Name: "short.csv", Rows: [][]string{make([]string, 3)}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no usable source table")
}

func TestReadCSVRaggedRows(t *testing.T) {
	input := "a,b,c\na,b\na,b,c,d\n"
	table, err := ReadCSV("/tmp/upload/orders.csv", strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "orders.csv", table.Name)
	require.Len(t, table.Rows, 3)
	assert.Len(t, table.Rows[1], 2)
	assert.Len(t, table.Rows[2], 4)
}
