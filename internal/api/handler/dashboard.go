package handler

import (
	"net/http"

	"github.com/Tumi03-data/dash-dashboard/internal/dataset"
	"github.com/Tumi03-data/dash-dashboard/internal/domain"
	"github.com/Tumi03-data/dash-dashboard/internal/usecases/dashboarding"
	"github.com/Tumi03-data/dash-dashboard/pkg/apiErrors"
	"github.com/Tumi03-data/dash-dashboard/pkg/log"
	"github.com/Tumi03-data/dash-dashboard/pkg/middleware"
)

type DashboardResponse struct {
	SnapshotVersion string             `json:"snapshot_version"`
	View            *domain.ViewResult `json:"view"`
}

// GetDashboard recalcula a visão do papel presente no token sobre o
// snapshot corrente de datasets
func GetDashboard(viewService dashboarding.Viewer, store *dataset.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		snapshot := store.Current()
		view := viewService.Route(userClaims.UserRole, snapshot.Sales, snapshot.WebLogs)

		logger.WithFields(log.Fields{
			"username":         userClaims.Username,
			"role":             userClaims.UserRole,
			"snapshot_version": snapshot.Version,
		}).Info("dashboard: visão montada")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(DashboardResponse{
			SnapshotVersion: snapshot.Version,
			View:            view,
		}); err != nil {
			logger.WithError(err).Error("dashboard: erro ao enviar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
