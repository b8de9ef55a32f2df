package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/cased/dashboard-api/internal/config"
	"github.com/cased/dashboard-api/internal/domain"
	"github.com/cased/dashboard-api/internal/usecases/dashboarding"
)

// AutoRefreshConfig representa a configuração do agendador de atualização
// automática do dashboard
type AutoRefreshConfig struct {
	IntervalSeconds  int
	DefaultRangeDays int
	Enabled          bool
}

// AutoRefreshService agenda ciclos periódicos de atualização do dashboard
// para manter o cache aquecido mesmo sem tráfego de leitura
type AutoRefreshService struct {
	scheduler         *gocron.Scheduler
	config            AutoRefreshConfig
	dashboarder       dashboarding.Dashboarder
	refreshMutex      sync.Mutex
	lastRefreshAt     time.Time
	lastRefreshCycles int64
}

// NewAutoRefreshService cria uma nova instância do agendador de atualização
// automática
func NewAutoRefreshService(dashboarder dashboarding.Dashboarder, appConfig *config.Config) *AutoRefreshService {
	refreshConfig := AutoRefreshConfig{
		IntervalSeconds:  appConfig.AutoRefresh.IntervalSeconds,
		DefaultRangeDays: appConfig.Dashboard.DefaultRangeDays,
		Enabled:          appConfig.AutoRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"interval_seconds":   refreshConfig.IntervalSeconds,
		"default_range_days": refreshConfig.DefaultRangeDays,
		"enabled":            refreshConfig.Enabled,
	}).Info("Configuração do agendador de atualização automática carregada")

	return &AutoRefreshService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      refreshConfig,
		dashboarder: dashboarder,
	}
}

// Start inicia o agendador
func (s *AutoRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Atualização automática do dashboard desabilitada por configuração")
		return nil
	}

	logrus.WithField("interval_seconds", s.config.IntervalSeconds).
		Info("Iniciando agendador de atualização automática do dashboard")

	_, err := s.scheduler.Every(s.config.IntervalSeconds).Seconds().Do(func() {
		s.refreshDashboard(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização automática do dashboard: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização automática do dashboard")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshDashboard dispara um ciclo com o intervalo padrão de datas. O
// coordenador já descarta ciclos superados, então disparos sobrepostos são
// inofensivos; o mutex só protege os campos de status.
func (s *AutoRefreshService) refreshDashboard(ctx context.Context) {
	filters := domain.DashboardFilters{
		DateRange: defaultDateRange(s.config.DefaultRangeDays),
	}

	cycleID := s.dashboarder.Trigger(ctx, dashboarding.ReasonManualRefresh, filters)

	s.refreshMutex.Lock()
	s.lastRefreshAt = time.Now()
	s.lastRefreshCycles++
	s.refreshMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"cycle_id": cycleID,
		"start":    filters.DateRange.Start.Format(time.DateOnly),
		"end":      filters.DateRange.End.Format(time.DateOnly),
	}).Info("Ciclo de atualização automática do dashboard disparado")
}

// defaultDateRange monta o intervalo padrão terminando hoje
func defaultDateRange(rangeDays int) domain.DateRange {
	end := time.Now()
	return domain.DateRange{
		Start: end.AddDate(0, 0, -rangeDays),
		End:   end,
	}
}

// GetStatus retorna o status atual do agendador
func (s *AutoRefreshService) GetStatus() map[string]any {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	return map[string]any{
		"refresh_enabled":          s.config.Enabled,
		"refresh_interval_seconds": s.config.IntervalSeconds,
		"default_range_days":       s.config.DefaultRangeDays,
		"last_refresh_at":          s.lastRefreshAt,
		"total_refreshes":          s.lastRefreshCycles,
	}
}
