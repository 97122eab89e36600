package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/Tumi03-data/dash-dashboard/internal/scheduler"
	"github.com/Tumi03-data/dash-dashboard/pkg/apiErrors"
)

// RunDatasetSync dispara uma recarga imediata dos datasets. Disponível
// apenas quando o serviço está ligado a um banco de dados.
func RunDatasetSync(syncService *scheduler.DatasetSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if syncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Recarga de datasets indisponível sem banco de dados configurado", nil)
			return
		}

		if err := syncService.RunSync(r.Context()); err != nil {
			logrus.WithError(err).Error("Erro ao executar recarga manual de datasets")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao recarregar datasets", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})
}

// GetCronStatus expõe o estado do agendador de recarga
func GetCronStatus(syncService *scheduler.DatasetSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if syncService == nil {
			json.NewEncoder(w).Encode(map[string]any{"enabled": false})
			return
		}

		json.NewEncoder(w).Encode(syncService.Status())
	})
}
