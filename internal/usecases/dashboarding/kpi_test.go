package dashboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/Tumi03-data/dash-dashboard/internal/domain"
)

func TestSumMeanCount(t *testing.T) {
	records := []domain.SalesRecord{
		{CurrentYearRevenue: 100, Quantity: 2},
		{CurrentYearRevenue: 250, Quantity: 3},
		{CurrentYearRevenue: 50, Quantity: 1},
	}

	revenue := func(r domain.SalesRecord) float64 { return r.CurrentYearRevenue }

	assert.Equal(t, 400.0, Sum(records, revenue))
	assert.InDelta(t, 133.33, Mean(records, revenue), 0.01)
	assert.Equal(t, 2, Count(records, func(r domain.SalesRecord) bool { return r.CurrentYearRevenue >= 100 }))
}

func TestSumMeanCount_Empty(t *testing.T) {
	var records []domain.SalesRecord

	revenue := func(r domain.SalesRecord) float64 { return r.CurrentYearRevenue }

	assert.Equal(t, 0.0, Sum(records, revenue))
	assert.Equal(t, 0.0, Mean(records, revenue))
	assert.Equal(t, 0, Count(records, func(r domain.SalesRecord) bool { return true }))
}

func TestAverageProfitPercentage(t *testing.T) {
	tests := []struct {
		name     string
		records  []domain.SalesRecord
		expected float64
	}{
		{
			name: "Média arredondada para duas casas",
			records: []domain.SalesRecord{
				{CurrentYearRevenue: 50000, Profit: 10000}, // 20%
				{CurrentYearRevenue: 60000, Profit: 15000}, // 25%
			},
			expected: 22.5,
		},
		{
			name: "Registro com receita zero fica fora da média",
			records: []domain.SalesRecord{
				{CurrentYearRevenue: 50000, Profit: 10000}, // 20%
				{CurrentYearRevenue: 0, Profit: 9999},
			},
			expected: 20,
		},
		{
			name: "Receita negativa também fica fora da média",
			records: []domain.SalesRecord{
				{CurrentYearRevenue: -100, Profit: 50},
				{CurrentYearRevenue: 40000, Profit: 10000}, // 25%
			},
			expected: 25,
		},
		{
			name:     "Dataset vazio produz zero",
			records:  nil,
			expected: 0,
		},
		{
			name: "Todas as receitas zeradas produzem zero",
			records: []domain.SalesRecord{
				{CurrentYearRevenue: 0, Profit: 100},
				{CurrentYearRevenue: 0, Profit: 200},
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataset := &domain.SalesDataset{Records: tt.records}
			assert.Equal(t, tt.expected, AverageProfitPercentage(dataset))
		})
	}
}
