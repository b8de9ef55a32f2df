package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/cased/dashboard-api/internal/config"
	"github.com/cased/dashboard-api/internal/domain"
	"github.com/cased/dashboard-api/internal/usecases/dashboarding"
	"github.com/cased/dashboard-api/pkg/apiErrors"
	"github.com/cased/dashboard-api/pkg/log"
	"github.com/cased/dashboard-api/pkg/utils"
)

// dashboardStateResponse é a projeção do estado do coordenador para a API
type dashboardStateResponse struct {
	Phase        string                `json:"phase"`
	CycleID      int64                 `json:"cycle_id"`
	CacheVersion int64                 `json:"cache_version"`
	Error        string                `json:"error,omitempty"`
	Data         *domain.DashboardData `json:"data,omitempty"`
}

// triggerResponse confirma a emissão de um novo ciclo
type triggerResponse struct {
	CycleID int64                   `json:"cycle_id"`
	Filters domain.DashboardFilters `json:"filters"`
}

// filtersRequest é o corpo aceito pelos gatilhos de ciclo
type filtersRequest struct {
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	UseCustomConfig bool   `json:"use_custom_config"`
}

// GetDashboardState retorna o estado visível atual do dashboard
func GetDashboardState(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		state := service.CurrentState()

		response := dashboardStateResponse{
			Phase:        string(state.Phase),
			CycleID:      state.CycleID,
			CacheVersion: state.CacheVersion,
			Data:         state.Data,
		}
		if state.Err != nil {
			response.Error = state.Err.Error()
		}

		logger.WithFields(log.Fields{
			"phase":    response.Phase,
			"cycle_id": response.CycleID,
		}).Debug("dashboard: returning current state")

		writeJSON(w, logger, response)
	})
}

// RefreshDashboard dispara um ciclo de atualização manual. O cache é
// invalidado antes da busca.
func RefreshDashboard(service dashboarding.Dashboarder, cfg *config.Config) http.Handler {
	return triggerHandler(service, cfg, dashboarding.ReasonManualRefresh)
}

// ChangeDashboardFilters dispara um ciclo com o novo conjunto de filtros
func ChangeDashboardFilters(service dashboarding.Dashboarder, cfg *config.Config) http.Handler {
	return triggerHandler(service, cfg, dashboarding.ReasonFiltersChanged)
}

// RequestEmptyDataset dispara um ciclo solicitando explicitamente um conjunto
// vazio ao feed de métricas
func RequestEmptyDataset(service dashboarding.Dashboarder, cfg *config.Config) http.Handler {
	return triggerHandler(service, cfg, dashboarding.ReasonEmptyDataset)
}

// triggerHandler emite um ciclo com a razão informada e responde o id alocado
func triggerHandler(service dashboarding.Dashboarder, cfg *config.Config, reason dashboarding.TriggerReason) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseFilters(r, cfg)
		if err != nil {
			logger.WithError(err).Warn("dashboard: invalid filters in trigger request")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		cycleID := service.Trigger(r.Context(), reason, filters)

		logger.WithFields(log.Fields{
			"cycle_id": cycleID,
			"reason":   string(reason),
		}).Info("dashboard: cycle triggered")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		if err := json.NewEncoder(w).Encode(triggerResponse{CycleID: cycleID, Filters: filters}); err != nil {
			logger.WithError(err).Error("dashboard: failed to encode response")
		}
	})
}

// InvalidateDashboardCache descarta todas as entradas do cache sem disparar
// um novo ciclo
func InvalidateDashboardCache(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		service.InvalidateCache()

		logger.Info("dashboard: cache invalidated by request")
		w.WriteHeader(http.StatusNoContent)
	})
}

// parseFilters monta os filtros do ciclo a partir do corpo JSON opcional.
// Campos ausentes caem no intervalo padrão configurado.
func parseFilters(r *http.Request, cfg *config.Config) (domain.DashboardFilters, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -cfg.Dashboard.DefaultRangeDays)

	filters := domain.DashboardFilters{
		DateRange: domain.DateRange{Start: start, End: end},
	}

	if r.Body == nil || r.ContentLength == 0 {
		return filters, nil
	}

	var req filtersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return domain.DashboardFilters{}, err
	}

	if req.StartDate != "" {
		parsed, err := utils.ParseDate(req.StartDate)
		if err != nil {
			return domain.DashboardFilters{}, err
		}
		filters.DateRange.Start = *parsed
	}

	if req.EndDate != "" {
		parsed, err := utils.ParseDate(req.EndDate)
		if err != nil {
			return domain.DashboardFilters{}, err
		}
		filters.DateRange.End = *parsed
	}

	filters.UseCustomConfig = req.UseCustomConfig

	return filters, nil
}

func writeJSON(w http.ResponseWriter, logger log.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("dashboard: failed to encode response")
	}
}
