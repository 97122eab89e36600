package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSalesDataset_MissingColumns(t *testing.T) {
	complete := &SalesDataset{Columns: SalesRequiredColumns}
	assert.True(t, complete.Valid())
	assert.Empty(t, complete.MissingColumns())

	partial := &SalesDataset{Columns: []string{SalesColMonth, SalesColProfit}}
	assert.False(t, partial.Valid())
	assert.Contains(t, partial.MissingColumns(), SalesColCurrentYearRev)
	assert.Contains(t, partial.MissingColumns(), SalesColSalesperson)

	// Colunas extras não invalidam o dataset
	extra := &SalesDataset{Columns: append([]string{"extra_column"}, SalesRequiredColumns...)}
	assert.True(t, extra.Valid())
}

func TestWebLogDataset_MissingColumns(t *testing.T) {
	complete := &WebLogDataset{Columns: WebLogRequiredColumns}
	assert.True(t, complete.Valid())

	partial := &WebLogDataset{Columns: []string{WebLogColCountry}}
	assert.False(t, partial.Valid())
	assert.Equal(t, []string{WebLogColEventType, WebLogColWebTool, WebLogColAmount}, partial.MissingColumns())

	empty := &WebLogDataset{}
	assert.Equal(t, WebLogRequiredColumns, empty.MissingColumns())
}
