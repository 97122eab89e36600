package dashboarding

import (
	"github.com/Tumi03-data/dash-dashboard/internal/domain"
	"github.com/Tumi03-data/dash-dashboard/pkg/utils"
)

// Redutores puros sobre registros em memória. Todos toleram slice vazio.

// Sum acumula o campo extraído de cada registro
func Sum[T any](records []T, field func(T) float64) float64 {
	total := 0.0
	for _, record := range records {
		total += field(record)
	}
	return total
}

// Mean calcula a média do campo extraído; retorna 0 para slice vazio
func Mean[T any](records []T, field func(T) float64) float64 {
	if len(records) == 0 {
		return 0
	}

	return Sum(records, field) / float64(len(records))
}

// Count conta os registros que satisfazem o predicado
func Count[T any](records []T, predicate func(T) bool) int {
	count := 0
	for _, record := range records {
		if predicate(record) {
			count++
		}
	}
	return count
}

// AverageProfitPercentage calcula a média do percentual de lucro
// (profit / receita do ano corrente * 100), arredondada para duas casas.
// Registros com receita menor ou igual a zero ficam fora da média: é a
// guarda contra divisão por zero.
func AverageProfitPercentage(dataset *domain.SalesDataset) float64 {
	sum := 0.0
	counted := 0

	for _, record := range dataset.Records {
		if record.CurrentYearRevenue <= 0 {
			continue
		}

		sum += (record.Profit / record.CurrentYearRevenue) * 100
		counted++
	}

	if counted == 0 {
		return 0
	}

	return utils.RoundWithTwoDecimalPlace(sum / float64(counted))
}
