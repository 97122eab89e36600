package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/Tumi03-data/dash-dashboard/internal/domain"
)

func testSales() *domain.SalesDataset {
	return &domain.SalesDataset{
		Columns: domain.SalesRequiredColumns,
		Records: []domain.SalesRecord{
			{Month: "Jan", CurrentYearRevenue: 50000, Salesperson: "Alice"},
		},
	}
}

func testWebLogs() *domain.WebLogDataset {
	return &domain.WebLogDataset{
		Columns: domain.WebLogRequiredColumns,
		Records: []domain.WebLogRecord{
			{Country: "USA", EventType: domain.EventJobRequest, WebTool: "Virtual Assistant"},
		},
	}
}

func TestNewStore_PublishesInitialSnapshot(t *testing.T) {
	store, err := NewStore(testSales(), testWebLogs())
	require.NoError(t, err)

	snapshot := store.Current()
	require.NotNil(t, snapshot)
	assert.NotEmpty(t, snapshot.Version)
	assert.False(t, snapshot.LoadedAt.IsZero())
	assert.Len(t, snapshot.Sales.Records, 1)
	assert.Len(t, snapshot.WebLogs.Records, 1)
}

func TestStore_SwapReplacesSnapshot(t *testing.T) {
	store, err := NewStore(testSales(), testWebLogs())
	require.NoError(t, err)

	first := store.Current()

	newSales := testSales()
	newSales.Records = append(newSales.Records, domain.SalesRecord{Month: "Feb", CurrentYearRevenue: 60000, Salesperson: "Bob"})

	second, err := store.Swap(newSales, testWebLogs())
	require.NoError(t, err)

	assert.NotEqual(t, first.Version, second.Version)
	assert.Same(t, second, store.Current())
	assert.Len(t, store.Current().Sales.Records, 2)

	// O snapshot antigo segue intacto para requisições em andamento
	assert.Len(t, first.Sales.Records, 1)
}
