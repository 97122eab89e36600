package dashboarding

import (
	"sort"

	"github.com/Tumi03-data/dash-dashboard/internal/config"
	"github.com/Tumi03-data/dash-dashboard/internal/domain"
)

// ChartBuilder produz os agregados prontos para renderização. Toda função é
// pura: mesma entrada, mesmo ChartSpec. Ordenação de categorias:
//   - meses sempre em ordem de calendário;
//   - enums fechados (canal, linha de produto, tipo de evento) na ordem de
//     declaração;
//   - chaves abertas (vendedor, país, ferramenta web) em ordem alfabética.
//
// Datasets vazios produzem gráficos vazios, nunca erro.
type ChartBuilder struct {
	targetRevenue float64
	targetProfit  float64
}

func NewChartBuilder(cfg *config.Config) *ChartBuilder {
	return &ChartBuilder{
		targetRevenue: cfg.Dashboard.TargetRevenue,
		targetProfit:  cfg.Dashboard.TargetProfit,
	}
}

// RevenueComparison compara a receita do ano anterior com a do ano corrente,
// mês a mês
func (b *ChartBuilder) RevenueComparison(sales *domain.SalesDataset) domain.ChartSpec {
	months := monthsPresent(sales.Records)

	return domain.ChartSpec{
		Title:      "Revenue Comparison: Prior vs Current Year",
		Type:       domain.ChartLine,
		Categories: months,
		Series: []domain.Series{
			{Name: "Prior Year", Values: monthlyTotals(sales.Records, months, func(r domain.SalesRecord) float64 { return r.PriorYearRevenue })},
			{Name: "Current Year", Values: monthlyTotals(sales.Records, months, func(r domain.SalesRecord) float64 { return r.CurrentYearRevenue })},
		},
	}
}

// ProfitWithTarget é o lucro mensal com a linha de meta de lucro sobreposta
func (b *ChartBuilder) ProfitWithTarget(sales *domain.SalesDataset) domain.ChartSpec {
	months := monthsPresent(sales.Records)

	return domain.ChartSpec{
		Title:      "Monthly Profit with Target Line",
		Type:       domain.ChartBar,
		Categories: months,
		Series: []domain.Series{
			{Name: "Profit", Values: monthlyTotals(sales.Records, months, func(r domain.SalesRecord) float64 { return r.Profit })},
		},
		ReferenceLines: []domain.ReferenceLine{
			{Name: "Target Profit", Value: b.targetProfit},
		},
	}
}

// RevenueDifference é a diferença mensal entre a receita corrente e a do
// ano anterior, colorida pela magnitude
func (b *ChartBuilder) RevenueDifference(sales *domain.SalesDataset) domain.ChartSpec {
	months := monthsPresent(sales.Records)

	return domain.ChartSpec{
		Title:      "Revenue Difference",
		Type:       domain.ChartBar,
		Categories: months,
		Series: []domain.Series{
			{Name: "Difference", Values: monthlyTotals(sales.Records, months, func(r domain.SalesRecord) float64 {
				return r.CurrentYearRevenue - r.PriorYearRevenue
			})},
		},
		ColorByValue: true,
	}
}

// RevenueVsTarget é a receita corrente mensal contra a meta de receita
func (b *ChartBuilder) RevenueVsTarget(sales *domain.SalesDataset) domain.ChartSpec {
	months := monthsPresent(sales.Records)

	return domain.ChartSpec{
		Title:      "Revenue vs Target",
		Type:       domain.ChartLine,
		Categories: months,
		Series: []domain.Series{
			{Name: "Revenue", Values: monthlyTotals(sales.Records, months, func(r domain.SalesRecord) float64 { return r.CurrentYearRevenue })},
		},
		ReferenceLines: []domain.ReferenceLine{
			{Name: "Target Revenue", Value: b.targetRevenue},
		},
	}
}

// TeamPerformance soma a receita corrente por vendedor
func (b *ChartBuilder) TeamPerformance(sales *domain.SalesDataset) domain.ChartSpec {
	totals := map[string]float64{}
	for _, record := range sales.Records {
		totals[record.Salesperson] += record.CurrentYearRevenue
	}

	names := sortedKeys(totals)

	return domain.ChartSpec{
		Title:      "Team Revenue Performance",
		Type:       domain.ChartBar,
		Categories: names,
		Series: []domain.Series{
			{Name: "Current Year", Values: valuesFor(totals, names)},
		},
	}
}

// SalespersonTrend é a receita corrente mensal de cada vendedor, com a meta
// de receita sobreposta como linha tracejada
func (b *ChartBuilder) SalespersonTrend(sales *domain.SalesDataset) domain.ChartSpec {
	months := monthsPresent(sales.Records)
	monthIndex := map[string]int{}
	for i, month := range months {
		monthIndex[month] = i
	}

	perPerson := map[string][]float64{}
	for _, record := range sales.Records {
		i, ok := monthIndex[record.Month]
		if !ok {
			continue
		}
		if _, present := perPerson[record.Salesperson]; !present {
			perPerson[record.Salesperson] = make([]float64, len(months))
		}
		perPerson[record.Salesperson][i] += record.CurrentYearRevenue
	}

	series := make([]domain.Series, 0, len(perPerson))
	for _, name := range sortedSeriesKeys(perPerson) {
		series = append(series, domain.Series{Name: name, Values: perPerson[name]})
	}

	return domain.ChartSpec{
		Title:      "Salesperson Revenue Trends",
		Type:       domain.ChartLine,
		Categories: months,
		Series:     series,
		ReferenceLines: []domain.ReferenceLine{
			{Name: "Target Revenue", Value: b.targetRevenue, Dashed: true},
		},
	}
}

// ChannelShare distribui a receita corrente por canal de pagamento
func (b *ChartBuilder) ChannelShare(sales *domain.SalesDataset) domain.ChartSpec {
	totals := map[string]float64{}
	for _, record := range sales.Records {
		totals[record.Channel] += record.CurrentYearRevenue
	}

	channels := declaredOrder(domain.Channels, totals)

	return domain.ChartSpec{
		Title:      "Revenue by Payment Channel",
		Type:       domain.ChartPie,
		Categories: channels,
		Series: []domain.Series{
			{Name: "Current Year", Values: valuesFor(totals, channels)},
		},
	}
}

// ProductLineRevenue soma a receita corrente por linha de produto
func (b *ChartBuilder) ProductLineRevenue(sales *domain.SalesDataset) domain.ChartSpec {
	totals := map[string]float64{}
	for _, record := range sales.Records {
		totals[record.ProductLine] += record.CurrentYearRevenue
	}

	lines := declaredOrder(domain.ProductLines, totals)

	return domain.ChartSpec{
		Title:      "Revenue by Product Line",
		Type:       domain.ChartBar,
		Categories: lines,
		Series: []domain.Series{
			{Name: "Current Year", Values: valuesFor(totals, lines)},
		},
	}
}

// RequestsByCountry conta os logs por país de origem
func (b *ChartBuilder) RequestsByCountry(webLogs *domain.WebLogDataset) domain.ChartSpec {
	counts := map[string]float64{}
	for _, record := range webLogs.Records {
		counts[record.Country]++
	}

	countries := sortedKeys(counts)

	return domain.ChartSpec{
		Title:      "Requests by Country",
		Type:       domain.ChartPie,
		Categories: countries,
		Series: []domain.Series{
			{Name: "Requests", Values: valuesFor(counts, countries)},
		},
	}
}

// RequestsByEventType conta os logs por tipo de evento
func (b *ChartBuilder) RequestsByEventType(webLogs *domain.WebLogDataset) domain.ChartSpec {
	counts := map[string]float64{}
	for _, record := range webLogs.Records {
		counts[record.EventType]++
	}

	eventTypes := declaredOrder(domain.EventTypes, counts)

	return domain.ChartSpec{
		Title:      "Requests by Event Type",
		Type:       domain.ChartBar,
		Categories: eventTypes,
		Series: []domain.Series{
			{Name: "Count", Values: valuesFor(counts, eventTypes)},
		},
	}
}

// SalesByWebTool soma os valores monetizados por ferramenta web. Eventos com
// amount zero ficam fora deste gráfico (mas contam nos KPIs de contagem).
func (b *ChartBuilder) SalesByWebTool(webLogs *domain.WebLogDataset) domain.ChartSpec {
	totals := map[string]float64{}
	for _, record := range webLogs.Records {
		if record.Amount <= 0 {
			continue
		}
		totals[record.WebTool] += record.Amount
	}

	tools := sortedKeys(totals)

	return domain.ChartSpec{
		Title:      "Sales by Web Tool",
		Type:       domain.ChartBar,
		Categories: tools,
		Series: []domain.Series{
			{Name: "Amount", Values: valuesFor(totals, tools)},
		},
	}
}

// monthsPresent retorna os meses que aparecem no dataset, em ordem de
// calendário
func monthsPresent(records []domain.SalesRecord) []string {
	present := map[string]bool{}
	for _, record := range records {
		present[record.Month] = true
	}

	months := make([]string, 0, len(present))
	for _, month := range domain.Months {
		if present[month] {
			months = append(months, month)
		}
	}
	return months
}

// monthlyTotals soma o campo extraído por mês, na ordem de meses informada
func monthlyTotals(records []domain.SalesRecord, months []string, field func(domain.SalesRecord) float64) []float64 {
	index := map[string]int{}
	for i, month := range months {
		index[month] = i
	}

	totals := make([]float64, len(months))
	for _, record := range records {
		if i, ok := index[record.Month]; ok {
			totals[i] += field(record)
		}
	}
	return totals
}

// declaredOrder filtra a ordem de declaração de um enum às chaves presentes
func declaredOrder(declared []string, present map[string]float64) []string {
	keys := make([]string, 0, len(present))
	for _, key := range declared {
		if _, ok := present[key]; ok {
			keys = append(keys, key)
		}
	}
	return keys
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func sortedSeriesKeys(m map[string][]float64) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func valuesFor(m map[string]float64, keys []string) []float64 {
	values := make([]float64, 0, len(keys))
	for _, key := range keys {
		values = append(values, m[key])
	}
	return values
}
