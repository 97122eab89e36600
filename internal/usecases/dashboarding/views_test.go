package dashboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/Tumi03-data/dash-dashboard/internal/domain"
)

func newTestViewer() Viewer {
	return NewService(chartsConfig())
}

func TestRoute_Lead(t *testing.T) {
	viewer := newTestViewer()

	view := viewer.Route(domain.RoleLead, salesFixture(), webLogFixture())

	assert.Equal(t, "Sales Lead Dashboard", view.Title)
	assert.Empty(t, view.Message)
	require.Len(t, view.KPIs, 4)
	require.Len(t, view.Charts, 4)

	assert.Equal(t, "Total Revenue (Current Year)", view.KPIs[0].Label)
	assert.Equal(t, 160000.0, view.KPIs[0].Value.Number)
	assert.Equal(t, "bar-chart", view.KPIs[0].Icon)

	assert.Equal(t, "Total Profit", view.KPIs[1].Label)
	assert.Equal(t, 47000.0, view.KPIs[1].Value.Number)

	assert.Equal(t, "Total Quantity", view.KPIs[2].Label)
	assert.Equal(t, 1250.0, view.KPIs[2].Value.Number)

	assert.Equal(t, "Average Profit %", view.KPIs[3].Label)
	assert.True(t, view.KPIs[3].Value.IsPercentage)
}

func TestRoute_Member(t *testing.T) {
	viewer := newTestViewer()

	view := viewer.Route(domain.RoleMember, salesFixture(), webLogFixture())

	assert.Equal(t, "Sales Team Member Dashboard", view.Title)
	assert.Empty(t, view.KPIs)
	require.Len(t, view.Charts, 2)
	assert.Equal(t, "Team Revenue Performance", view.Charts[0].Title)
	assert.Equal(t, "Salesperson Revenue Trends", view.Charts[1].Title)
}

func TestRoute_Marketing(t *testing.T) {
	viewer := newTestViewer()

	view := viewer.Route(domain.RoleMarketing, salesFixture(), webLogFixture())

	assert.Equal(t, "Marketing Analytics Dashboard", view.Title)
	assert.Empty(t, view.KPIs)
	require.Len(t, view.Charts, 2)
	assert.Equal(t, domain.ChartPie, view.Charts[0].Type)
	assert.Equal(t, "Revenue by Product Line", view.Charts[1].Title)
}

func TestRoute_LogAnalyst(t *testing.T) {
	viewer := newTestViewer()

	view := viewer.Route(domain.RoleLogAnalyst, salesFixture(), webLogFixture())

	assert.Equal(t, "Web Log Analysis Dashboard", view.Title)
	require.Len(t, view.KPIs, 5)
	require.Len(t, view.Charts, 3)

	// Eventos com amount zero contam nos KPIs de contagem
	assert.Equal(t, "Total Logs", view.KPIs[0].Label)
	assert.Equal(t, 4.0, view.KPIs[0].Value.Number)
	assert.Equal(t, "Job Requests", view.KPIs[1].Label)
	assert.Equal(t, 1.0, view.KPIs[1].Value.Number)
	assert.Equal(t, "Total Sales ($)", view.KPIs[4].Label)
	assert.Equal(t, 350.5, view.KPIs[4].Value.Number)
}

func TestRoute_LogAnalyst_InvalidDataset(t *testing.T) {
	viewer := newTestViewer()

	tests := []struct {
		name    string
		webLogs *domain.WebLogDataset
	}{
		{
			name:    "dataset nulo",
			webLogs: nil,
		},
		{
			name: "coluna obrigatória ausente",
			webLogs: &domain.WebLogDataset{
				Columns: []string{domain.WebLogColCountry, domain.WebLogColEventType},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := viewer.Route(domain.RoleLogAnalyst, salesFixture(), tt.webLogs)

			assert.Equal(t, MsgInvalidWebLogDataset, view.Message)
			assert.Empty(t, view.KPIs)
			assert.Empty(t, view.Charts)
		})
	}
}

func TestRoute_InvalidSalesDataset(t *testing.T) {
	viewer := newTestViewer()
	broken := &domain.SalesDataset{Columns: []string{domain.SalesColMonth}}

	for _, role := range []domain.Role{domain.RoleLead, domain.RoleMember, domain.RoleMarketing} {
		view := viewer.Route(role, broken, webLogFixture())

		assert.Equal(t, MsgInvalidSalesDataset, view.Message, string(role))
		assert.Empty(t, view.Charts, string(role))
	}
}

func TestRoute_UnknownRole(t *testing.T) {
	viewer := newTestViewer()

	view := viewer.Route(domain.Role("auditor"), salesFixture(), webLogFixture())

	assert.Equal(t, "Unknown role.", view.Message)
	assert.Empty(t, view.KPIs)
	assert.Empty(t, view.Charts)
}

func TestRoute_Deterministic(t *testing.T) {
	viewer := newTestViewer()

	first := viewer.Route(domain.RoleLead, salesFixture(), webLogFixture())
	second := viewer.Route(domain.RoleLead, salesFixture(), webLogFixture())

	assert.Equal(t, first, second)
}
