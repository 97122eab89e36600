package dashboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/Tumi03-data/dash-dashboard/internal/config"
	"github.com/Tumi03-data/dash-dashboard/internal/domain"
)

func chartsConfig() *config.Config {
	return &config.Config{
		Dashboard: config.Dashboard{
			TargetRevenue: 60000,
			TargetProfit:  20000,
		},
	}
}

// salesFixture devolve registros propositalmente fora da ordem de calendário
func salesFixture() *domain.SalesDataset {
	return &domain.SalesDataset{
		Columns: domain.SalesRequiredColumns,
		Records: []domain.SalesRecord{
			{Month: "Feb", CurrentYearRevenue: 50000, PriorYearRevenue: 42000, Profit: 12000, Quantity: 350, Channel: domain.ChannelCash, ProductLine: "Demo Scheduler", Salesperson: "Bob"},
			{Month: "Jan", CurrentYearRevenue: 45000, PriorYearRevenue: 40000, Profit: 15000, Quantity: 400, Channel: domain.ChannelOnline, ProductLine: "Virtual Assistant", Salesperson: "Alice"},
			{Month: "Mar", CurrentYearRevenue: 65000, PriorYearRevenue: 55000, Profit: 20000, Quantity: 500, Channel: domain.ChannelOnline, ProductLine: "Virtual Assistant", Salesperson: "Alice"},
		},
	}
}

func emptySales() *domain.SalesDataset {
	return &domain.SalesDataset{Columns: domain.SalesRequiredColumns, Records: []domain.SalesRecord{}}
}

func TestRevenueComparison(t *testing.T) {
	builder := NewChartBuilder(chartsConfig())

	chart := builder.RevenueComparison(salesFixture())

	assert.Equal(t, domain.ChartLine, chart.Type)
	// Meses sempre em ordem de calendário, independente da ordem dos registros
	assert.Equal(t, []string{"Jan", "Feb", "Mar"}, chart.Categories)

	require.Len(t, chart.Series, 2)
	assert.Equal(t, "Prior Year", chart.Series[0].Name)
	assert.Equal(t, []float64{40000, 42000, 55000}, chart.Series[0].Values)
	assert.Equal(t, "Current Year", chart.Series[1].Name)
	assert.Equal(t, []float64{45000, 50000, 65000}, chart.Series[1].Values)
}

func TestProfitWithTarget(t *testing.T) {
	builder := NewChartBuilder(chartsConfig())

	chart := builder.ProfitWithTarget(salesFixture())

	assert.Equal(t, domain.ChartBar, chart.Type)
	require.Len(t, chart.Series, 1)
	assert.Equal(t, []float64{15000, 12000, 20000}, chart.Series[0].Values)

	require.Len(t, chart.ReferenceLines, 1)
	assert.Equal(t, 20000.0, chart.ReferenceLines[0].Value)
	assert.False(t, chart.ReferenceLines[0].Dashed)
}

func TestRevenueDifference(t *testing.T) {
	builder := NewChartBuilder(chartsConfig())

	chart := builder.RevenueDifference(salesFixture())

	assert.True(t, chart.ColorByValue)
	require.Len(t, chart.Series, 1)
	assert.Equal(t, []float64{5000, 8000, 10000}, chart.Series[0].Values)
}

func TestRevenueVsTarget(t *testing.T) {
	builder := NewChartBuilder(chartsConfig())

	chart := builder.RevenueVsTarget(salesFixture())

	assert.Equal(t, domain.ChartLine, chart.Type)
	require.Len(t, chart.ReferenceLines, 1)
	assert.Equal(t, "Target Revenue", chart.ReferenceLines[0].Name)
	assert.Equal(t, 60000.0, chart.ReferenceLines[0].Value)
}

func TestTeamPerformance(t *testing.T) {
	builder := NewChartBuilder(chartsConfig())
	sales := salesFixture()

	chart := builder.TeamPerformance(sales)

	// Vendedores em ordem alfabética
	assert.Equal(t, []string{"Alice", "Bob"}, chart.Categories)
	require.Len(t, chart.Series, 1)
	assert.Equal(t, []float64{110000, 50000}, chart.Series[0].Values)

	// A soma por vendedor precisa bater com o total do dataset
	datasetTotal := Sum(sales.Records, func(r domain.SalesRecord) float64 { return r.CurrentYearRevenue })
	chartTotal := 0.0
	for _, v := range chart.Series[0].Values {
		chartTotal += v
	}
	assert.Equal(t, datasetTotal, chartTotal)
}

func TestSalespersonTrend(t *testing.T) {
	builder := NewChartBuilder(chartsConfig())

	chart := builder.SalespersonTrend(salesFixture())

	assert.Equal(t, []string{"Jan", "Feb", "Mar"}, chart.Categories)

	require.Len(t, chart.Series, 2)
	assert.Equal(t, "Alice", chart.Series[0].Name)
	assert.Equal(t, []float64{45000, 0, 65000}, chart.Series[0].Values)
	assert.Equal(t, "Bob", chart.Series[1].Name)
	assert.Equal(t, []float64{0, 50000, 0}, chart.Series[1].Values)

	require.Len(t, chart.ReferenceLines, 1)
	assert.True(t, chart.ReferenceLines[0].Dashed)
	assert.Equal(t, 60000.0, chart.ReferenceLines[0].Value)
}

func TestSalespersonTrend_IgnoresUnknownMonths(t *testing.T) {
	builder := NewChartBuilder(chartsConfig())

	// Só meses fora do calendário: gráfico vazio, nunca pânico
	onlyUnknown := &domain.SalesDataset{
		Columns: domain.SalesRequiredColumns,
		Records: []domain.SalesRecord{
			{Month: "January", CurrentYearRevenue: 1000, Salesperson: "Alice"},
		},
	}

	chart := builder.SalespersonTrend(onlyUnknown)
	assert.Empty(t, chart.Categories)
	assert.Empty(t, chart.Series)

	// Misturado: o registro fora do calendário não é creditado a mês algum
	mixed := salesFixture()
	mixed.Records = append(mixed.Records, domain.SalesRecord{Month: "January", CurrentYearRevenue: 99999, Salesperson: "Alice"})

	chart = builder.SalespersonTrend(mixed)
	assert.Equal(t, []string{"Jan", "Feb", "Mar"}, chart.Categories)
	require.Len(t, chart.Series, 2)
	assert.Equal(t, []float64{45000, 0, 65000}, chart.Series[0].Values)
}

func TestChannelShareAndProductLine(t *testing.T) {
	builder := NewChartBuilder(chartsConfig())

	channel := builder.ChannelShare(salesFixture())
	assert.Equal(t, domain.ChartPie, channel.Type)
	// Canais na ordem de declaração do enum
	assert.Equal(t, []string{domain.ChannelOnline, domain.ChannelCash}, channel.Categories)
	assert.Equal(t, []float64{110000, 50000}, channel.Series[0].Values)

	product := builder.ProductLineRevenue(salesFixture())
	// Linhas de produto na ordem de declaração, filtradas às presentes
	assert.Equal(t, []string{"Virtual Assistant", "Demo Scheduler"}, product.Categories)
	assert.Equal(t, []float64{110000, 50000}, product.Series[0].Values)
}

func TestSalesCharts_EmptyDataset(t *testing.T) {
	builder := NewChartBuilder(chartsConfig())
	empty := emptySales()

	charts := []domain.ChartSpec{
		builder.RevenueComparison(empty),
		builder.ProfitWithTarget(empty),
		builder.RevenueDifference(empty),
		builder.RevenueVsTarget(empty),
		builder.TeamPerformance(empty),
		builder.SalespersonTrend(empty),
		builder.ChannelShare(empty),
		builder.ProductLineRevenue(empty),
	}

	for _, chart := range charts {
		assert.Empty(t, chart.Categories, chart.Title)
		for _, series := range chart.Series {
			assert.Empty(t, series.Values, chart.Title)
		}
	}
}

func webLogFixture() *domain.WebLogDataset {
	return &domain.WebLogDataset{
		Columns: domain.WebLogRequiredColumns,
		Records: []domain.WebLogRecord{
			{Country: "USA", EventType: domain.EventJobRequest, WebTool: "Virtual Assistant", Amount: 0},
			{Country: "Botswana", EventType: domain.EventDemoRequest, WebTool: "Demo Scheduler", Amount: 250.5},
			{Country: "USA", EventType: domain.EventSalesInquiry, WebTool: "Virtual Assistant", Amount: 100},
			{Country: "UK", EventType: domain.EventAIAssistantRequest, WebTool: "Analytics Dashboard", Amount: 0},
		},
	}
}

func TestRequestsByCountry(t *testing.T) {
	builder := NewChartBuilder(chartsConfig())

	chart := builder.RequestsByCountry(webLogFixture())

	assert.Equal(t, domain.ChartPie, chart.Type)
	// Países em ordem alfabética
	assert.Equal(t, []string{"Botswana", "UK", "USA"}, chart.Categories)
	assert.Equal(t, []float64{1, 1, 2}, chart.Series[0].Values)
}

func TestRequestsByEventType(t *testing.T) {
	builder := NewChartBuilder(chartsConfig())

	chart := builder.RequestsByEventType(webLogFixture())

	// Tipos de evento na ordem de declaração; todos os registros contam,
	// inclusive os de amount zero
	assert.Equal(t, []string{
		domain.EventJobRequest,
		domain.EventDemoRequest,
		domain.EventAIAssistantRequest,
		domain.EventSalesInquiry,
	}, chart.Categories)
	assert.Equal(t, []float64{1, 1, 1, 1}, chart.Series[0].Values)
}

func TestSalesByWebTool_ExcludesZeroAmounts(t *testing.T) {
	builder := NewChartBuilder(chartsConfig())

	chart := builder.SalesByWebTool(webLogFixture())

	// Eventos não monetizados ficam fora: Analytics Dashboard só tem amount
	// zero e não aparece
	assert.Equal(t, []string{"Demo Scheduler", "Virtual Assistant"}, chart.Categories)
	assert.Equal(t, []float64{250.5, 100}, chart.Series[0].Values)
}

func TestWebLogCharts_EmptyDataset(t *testing.T) {
	builder := NewChartBuilder(chartsConfig())
	empty := &domain.WebLogDataset{Columns: domain.WebLogRequiredColumns, Records: []domain.WebLogRecord{}}

	assert.Empty(t, builder.RequestsByCountry(empty).Categories)
	assert.Empty(t, builder.RequestsByEventType(empty).Categories)
	assert.Empty(t, builder.SalesByWebTool(empty).Categories)
}
