package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/Tumi03-data/dash-dashboard/internal/api/handler/router"
	"github.com/Tumi03-data/dash-dashboard/internal/dataset"
	"github.com/Tumi03-data/dash-dashboard/internal/scheduler"
	"github.com/Tumi03-data/dash-dashboard/internal/usecases/authenticating"
	"github.com/Tumi03-data/dash-dashboard/internal/usecases/dashboarding"
	"github.com/Tumi03-data/dash-dashboard/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(authService authenticating.Authenticator, viewService dashboarding.Viewer, store *dataset.Store) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(authService, viewService, store),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Dashboard(viewService dashboarding.Viewer, store *dataset.Store) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(viewService, store),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(syncService *scheduler.DatasetSyncService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/dataset/run",
			Method:      http.MethodPost,
			Handler:     RunDatasetSync(syncService),
			Middlewares: []func(http.Handler) http.Handler{middleware.LeadOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(syncService),
			Middlewares: []func(http.Handler) http.Handler{middleware.LeadOnly()},
		},
	}
}
