package handler

import (
	"net/http"

	"github.com/cased/dashboard-api/infrastructure/feedsim"
	"github.com/cased/dashboard-api/internal/api/handler/router"
	"github.com/cased/dashboard-api/internal/config"
	"github.com/cased/dashboard-api/internal/scheduler"
	"github.com/cased/dashboard-api/internal/usecases/dashboarding"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(service dashboarding.Dashboarder, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboardState(service),
		},
		{
			Path:    "/v1/dashboard/refresh",
			Method:  http.MethodPost,
			Handler: RefreshDashboard(service, cfg),
		},
		{
			Path:    "/v1/dashboard/filters",
			Method:  http.MethodPut,
			Handler: ChangeDashboardFilters(service, cfg),
		},
		{
			Path:    "/v1/dashboard/empty-dataset",
			Method:  http.MethodPost,
			Handler: RequestEmptyDataset(service, cfg),
		},
		{
			Path:    "/v1/dashboard/cache/invalidate",
			Method:  http.MethodPost,
			Handler: InvalidateDashboardCache(service),
		},
	}
}

func Users(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/users/:id/profile",
			Method:  http.MethodGet,
			Handler: GetUserProfile(service),
		},
	}
}

func Scheduler(service *scheduler.AutoRefreshService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/scheduler/status",
			Method:  http.MethodGet,
			Handler: GetSchedulerStatus(service),
		},
	}
}

// FeedSimulator expõe os feeds simulados para desenvolvimento local
func FeedSimulator() []router.Route {
	return []router.Route{
		{
			Path:    "/sim/metrics",
			Method:  http.MethodGet,
			Handler: feedsim.MetricsHandler(),
		},
		{
			Path:    "/sim/revenue",
			Method:  http.MethodGet,
			Handler: feedsim.RevenueHandler(),
		},
		{
			Path:    "/sim/activity",
			Method:  http.MethodGet,
			Handler: feedsim.ActivityHandler(),
		},
	}
}
