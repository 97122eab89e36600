package dashboarding

import (
	"github.com/sirupsen/logrus"
	"github.com/Tumi03-data/dash-dashboard/internal/config"
	"github.com/Tumi03-data/dash-dashboard/internal/domain"
)

// Viewer monta a visão completa (KPIs + gráficos) do papel informado a
// partir dos datasets recebidos. Os datasets chegam por parâmetro em toda
// chamada: o serviço não guarda estado e é seguro para uso concorrente.
type Viewer interface {
	Route(role domain.Role, sales *domain.SalesDataset, webLogs *domain.WebLogDataset) *domain.ViewResult
}

// ViewAggregator compõe a visão de um único papel
type ViewAggregator func(sales *domain.SalesDataset, webLogs *domain.WebLogDataset) *domain.ViewResult

type Service struct {
	charts *ChartBuilder
	views  map[domain.Role]ViewAggregator
}

// NewService cria o roteador de visões com o mapeamento fechado
// papel -> agregador
func NewService(cfg *config.Config) Viewer {
	service := &Service{
		charts: NewChartBuilder(cfg),
	}

	service.views = map[domain.Role]ViewAggregator{
		domain.RoleLead:       service.leadView,
		domain.RoleMember:     service.memberView,
		domain.RoleMarketing:  service.marketingView,
		domain.RoleLogAnalyst: service.logAnalystView,
	}

	return service
}

// Route seleciona e executa o agregador do papel. Papel fora do mapeamento
// é inalcançável depois de uma autenticação bem-sucedida; o sentinela
// "Unknown role." é mantido como fallback de compatibilidade.
func (s *Service) Route(role domain.Role, sales *domain.SalesDataset, webLogs *domain.WebLogDataset) *domain.ViewResult {
	aggregator, ok := s.views[role]
	if !ok {
		logrus.Warnf("Papel não mapeado recebido no roteador de visões: %q", role)
		return &domain.ViewResult{Message: "Unknown role."}
	}

	return aggregator(sales, webLogs)
}
