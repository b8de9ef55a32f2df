package handler

import (
	"net/http"

	"github.com/cased/dashboard-api/internal/scheduler"
	"github.com/cased/dashboard-api/pkg/log"
)

// GetSchedulerStatus retorna o status do agendador de atualização automática
func GetSchedulerStatus(service *scheduler.AutoRefreshService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		logger.Debug("scheduler: returning auto refresh status")
		writeJSON(w, logger, service.GetStatus())
	})
}
