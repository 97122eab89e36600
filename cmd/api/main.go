package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/Tumi03-data/dash-dashboard/infrastructure/database/postgres"
	"github.com/Tumi03-data/dash-dashboard/infrastructure/repository"
	"github.com/Tumi03-data/dash-dashboard/infrastructure/seed"
	"github.com/Tumi03-data/dash-dashboard/internal/api"
	"github.com/Tumi03-data/dash-dashboard/internal/config"
	"github.com/Tumi03-data/dash-dashboard/internal/dataset"
	"github.com/Tumi03-data/dash-dashboard/internal/scheduler"
	"github.com/Tumi03-data/dash-dashboard/internal/usecases/authenticating"
	"github.com/Tumi03-data/dash-dashboard/internal/usecases/dashboarding"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var credentialStore authenticating.CredentialStore
	var datasetSyncService *scheduler.DatasetSyncService

	var store *dataset.Store

	if cfg.Database.Enabled {
		// Modo banco de dados: credenciais e datasets vêm do Postgres
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		credentialStore = authenticating.NewRepositoryStore(repository.NewCredentialRepository(pgConn))

		salesRepo := repository.NewSalesRepository(pgConn)
		webLogRepo := repository.NewWebLogRepository(pgConn)

		store = loadDatasets(ctx, salesRepo, webLogRepo)

		datasetSyncService = scheduler.NewDatasetSyncService(salesRepo, webLogRepo, store, cfg)
		if err := datasetSyncService.Start(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga de datasets")
		}
	} else {
		// Modo demonstração: fixture determinístico em memória
		logrus.Info("Banco de dados desabilitado, usando datasets de demonstração")

		credentials, err := seed.Credentials()
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao preparar credenciais de demonstração")
		}
		credentialStore = authenticating.NewStaticStore(credentials)

		store, err = dataset.NewStore(seed.SalesDataset(), seed.WebLogDataset())
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao publicar datasets de demonstração")
		}
	}

	authenticator := authenticating.NewService(credentialStore, cfg)
	viewService := dashboarding.NewService(cfg)

	server, err := api.New(cfg, authenticator, viewService, store, datasetSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// loadDatasets faz a carga inicial dos datasets a partir dos repositórios
func loadDatasets(ctx context.Context, salesRepo repository.SalesRepository, webLogRepo repository.WebLogRepository) *dataset.Store {
	sales, err := salesRepo.ListSalesRecords(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar dataset de vendas")
	}

	webLogs, err := webLogRepo.ListWebLogRecords(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar dataset de logs web")
	}

	store, err := dataset.NewStore(sales, webLogs)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao publicar snapshot inicial de datasets")
	}

	logrus.WithFields(logrus.Fields{
		"sales_records":   len(sales.Records),
		"web_log_records": len(webLogs.Records),
	}).Info("Datasets carregados com sucesso")

	return store
}
