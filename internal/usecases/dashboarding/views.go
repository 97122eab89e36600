package dashboarding

import (
	"github.com/Tumi03-data/dash-dashboard/internal/domain"
)

// Mensagens de sentinela para datasets incompletos
const (
	MsgInvalidWebLogDataset = "Invalid or incomplete web logs dataset."
	MsgInvalidSalesDataset  = "Invalid or incomplete sales dataset."
)

// leadView compõe a visão do líder de vendas: os quatro KPIs de vendas e os
// quatro gráficos de receita/lucro
func (s *Service) leadView(sales *domain.SalesDataset, _ *domain.WebLogDataset) *domain.ViewResult {
	const title = "Sales Lead Dashboard"

	if sales == nil || !sales.Valid() {
		return &domain.ViewResult{Title: title, Message: MsgInvalidSalesDataset}
	}

	return &domain.ViewResult{
		Title: title,
		KPIs: []domain.KPI{
			{
				Label: "Total Revenue (Current Year)",
				Value: domain.NumericKPIValue(Sum(sales.Records, func(r domain.SalesRecord) float64 { return r.CurrentYearRevenue })),
				Icon:  "bar-chart",
			},
			{
				Label: "Total Profit",
				Value: domain.NumericKPIValue(Sum(sales.Records, func(r domain.SalesRecord) float64 { return r.Profit })),
				Icon:  "cash-coin",
			},
			{
				Label: "Total Quantity",
				Value: domain.NumericKPIValue(Sum(sales.Records, func(r domain.SalesRecord) float64 { return float64(r.Quantity) })),
				Icon:  "basket",
			},
			{
				Label: "Average Profit %",
				Value: domain.PercentageKPIValue(AverageProfitPercentage(sales)),
				Icon:  "graph-up",
			},
		},
		Charts: []domain.ChartSpec{
			s.charts.RevenueComparison(sales),
			s.charts.ProfitWithTarget(sales),
			s.charts.RevenueDifference(sales),
			s.charts.RevenueVsTarget(sales),
		},
	}
}

// memberView compõe a visão do membro da equipe de vendas: desempenho do
// time e tendência por vendedor, sem KPIs
func (s *Service) memberView(sales *domain.SalesDataset, _ *domain.WebLogDataset) *domain.ViewResult {
	const title = "Sales Team Member Dashboard"

	if sales == nil || !sales.Valid() {
		return &domain.ViewResult{Title: title, Message: MsgInvalidSalesDataset}
	}

	return &domain.ViewResult{
		Title: title,
		Charts: []domain.ChartSpec{
			s.charts.TeamPerformance(sales),
			s.charts.SalespersonTrend(sales),
		},
	}
}

// marketingView compõe a visão de marketing: participação por canal e
// receita por linha de produto, sem KPIs
func (s *Service) marketingView(sales *domain.SalesDataset, _ *domain.WebLogDataset) *domain.ViewResult {
	const title = "Marketing Analytics Dashboard"

	if sales == nil || !sales.Valid() {
		return &domain.ViewResult{Title: title, Message: MsgInvalidSalesDataset}
	}

	return &domain.ViewResult{
		Title: title,
		Charts: []domain.ChartSpec{
			s.charts.ChannelShare(sales),
			s.charts.ProductLineRevenue(sales),
		},
	}
}

// logAnalystView compõe a visão do analista de logs. O dataset de logs é
// validado antes de qualquer agregação: faltando coluna obrigatória, a visão
// vira o sentinela de dataset inválido em vez de sair parcial.
func (s *Service) logAnalystView(_ *domain.SalesDataset, webLogs *domain.WebLogDataset) *domain.ViewResult {
	const title = "Web Log Analysis Dashboard"

	if webLogs == nil || !webLogs.Valid() {
		return &domain.ViewResult{Title: title, Message: MsgInvalidWebLogDataset}
	}

	// Eventos com amount zero contam aqui; só ficam fora do SalesByWebTool
	return &domain.ViewResult{
		Title: title,
		KPIs: []domain.KPI{
			{
				Label: "Total Logs",
				Value: domain.NumericKPIValue(float64(len(webLogs.Records))),
				Icon:  "file-earmark-bar-graph",
			},
			{
				Label: "Job Requests",
				Value: domain.NumericKPIValue(float64(Count(webLogs.Records, func(r domain.WebLogRecord) bool { return r.EventType == domain.EventJobRequest }))),
				Icon:  "briefcase",
			},
			{
				Label: "Demo Requests",
				Value: domain.NumericKPIValue(float64(Count(webLogs.Records, func(r domain.WebLogRecord) bool { return r.EventType == domain.EventDemoRequest }))),
				Icon:  "calendar-event",
			},
			{
				Label: "AI Assistant Requests",
				Value: domain.NumericKPIValue(float64(Count(webLogs.Records, func(r domain.WebLogRecord) bool { return r.EventType == domain.EventAIAssistantRequest }))),
				Icon:  "robot",
			},
			{
				Label: "Total Sales ($)",
				Value: domain.NumericKPIValue(Sum(webLogs.Records, func(r domain.WebLogRecord) float64 { return r.Amount })),
				Icon:  "currency-dollar",
			},
		},
		Charts: []domain.ChartSpec{
			s.charts.RequestsByCountry(webLogs),
			s.charts.RequestsByEventType(webLogs),
			s.charts.SalesByWebTool(webLogs),
		},
	}
}
