package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/Tumi03-data/dash-dashboard/infrastructure/repository"
	"github.com/Tumi03-data/dash-dashboard/internal/config"
	"github.com/Tumi03-data/dash-dashboard/internal/dataset"
)

// DatasetSyncConfig representa a configuração do agendador de recarga de
// datasets
type DatasetSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// DatasetSyncService recarrega periodicamente os datasets dos repositórios e
// publica um novo snapshot no store. As visões sempre leem o snapshot
// corrente, então uma recarga nunca interfere em requisições em andamento.
type DatasetSyncService struct {
	scheduler           *gocron.Scheduler
	config              DatasetSyncConfig
	salesRepo           repository.SalesRepository
	webLogRepo          repository.WebLogRepository
	store               *dataset.Store
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

// NewDatasetSyncService cria uma nova instância do serviço de recarga
func NewDatasetSyncService(
	salesRepo repository.SalesRepository,
	webLogRepo repository.WebLogRepository,
	store *dataset.Store,
	appConfig *config.Config,
) *DatasetSyncService {
	syncConfig := DatasetSyncConfig{
		CronSchedule: appConfig.DatasetSync.CronSchedule,
		SyncEnabled:  appConfig.DatasetSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de recarga de datasets carregada")

	return &DatasetSyncService{
		scheduler:  gocron.NewScheduler(time.Local),
		config:     syncConfig,
		salesRepo:  salesRepo,
		webLogRepo: webLogRepo,
		store:      store,
	}
}

// Start inicia o agendador
func (s *DatasetSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Recarga periódica de datasets desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recarga de datasets")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunSync(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na recarga agendada de datasets")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga de datasets: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recarga de datasets")
		s.scheduler.Stop()
	}()

	return nil
}

// RunSync executa uma recarga imediata, recusando execuções concorrentes
func (s *DatasetSyncService) RunSync(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recarga de datasets já em andamento, ignorando")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	sales, err := s.salesRepo.ListSalesRecords(ctx)
	if err != nil {
		s.setLastError(err)
		return fmt.Errorf("erro ao recarregar dataset de vendas: %w", err)
	}

	webLogs, err := s.webLogRepo.ListWebLogRecords(ctx)
	if err != nil {
		s.setLastError(err)
		return fmt.Errorf("erro ao recarregar dataset de logs web: %w", err)
	}

	snapshot, err := s.store.Swap(sales, webLogs)
	if err != nil {
		s.setLastError(err)
		return fmt.Errorf("erro ao publicar snapshot de datasets: %w", err)
	}

	s.setLastError(nil)

	logrus.WithFields(logrus.Fields{
		"snapshot_version": snapshot.Version,
		"sales_records":    len(sales.Records),
		"web_log_records":  len(webLogs.Records),
	}).Info("Datasets recarregados com sucesso")

	return nil
}

func (s *DatasetSyncService) setLastError(err error) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if err != nil {
		s.lastSyncError = err.Error()
		return
	}
	s.lastSyncError = ""
}

// Status retorna o estado corrente do agendador para o endpoint de cron
func (s *DatasetSyncService) Status() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":           s.config.SyncEnabled,
		"cron_schedule":     s.config.CronSchedule,
		"running":           s.syncRunning,
		"last_started_at":   s.lastSyncStartedAt,
		"last_completed_at": s.lastSyncCompletedAt,
		"last_error":        s.lastSyncError,
	}
}
