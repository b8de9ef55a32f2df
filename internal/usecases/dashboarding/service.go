package dashboarding

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cased/dashboard-api/infrastructure/cache"
	"github.com/cased/dashboard-api/infrastructure/coalescing"
	feedsdomain "github.com/cased/dashboard-api/infrastructure/integrator/feeds/domain"
	"github.com/cased/dashboard-api/infrastructure/integrator/feeds/feedclient"
	"github.com/cased/dashboard-api/internal/config"
	"github.com/cased/dashboard-api/internal/domain"
	"github.com/cased/dashboard-api/internal/usecases/aggregating"
	"github.com/cased/dashboard-api/internal/usecases/transforming"
)

// Phase é a fase observável do coordenador
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseFetching  Phase = "fetching"
	PhasePublished Phase = "published"
	PhaseFailed    Phase = "failed"
)

// TriggerReason identifica o gatilho que iniciou um ciclo
type TriggerReason string

const (
	ReasonFiltersChanged TriggerReason = "filtersChanged"
	ReasonManualRefresh  TriggerReason = "manualRefresh"
	ReasonEmptyDataset   TriggerReason = "emptyDatasetRequested"
)

// State é o estado visível publicado pelo coordenador.
// Data permanece apontando para a última publicação íntegra mesmo quando um
// ciclo posterior falha: a política adotada é reter o último valor bom.
type State struct {
	Phase        Phase
	Data         *domain.DashboardData
	Err          error
	CycleID      int64
	CacheVersion int64
}

// Service implementa o Dashboarder: orquestra cada ciclo de
// busca-transformação-publicação e garante estruturalmente que só o ciclo
// mais recente atualiza o estado visível.
type Service struct {
	cfg   *config.Config
	feeds feedclient.Client
	store *cache.Store
	arena *coalescing.Arena[*feedsdomain.MetricsResponse]

	// lastCycleID é o contador monotônico de ciclos: incrementado somente
	// sob mu, lido atomicamente em cada ponto de retomada para comparação
	// com o valor capturado na emissão
	lastCycleID atomic.Int64

	mu    sync.RWMutex
	state State
}

// NewService cria o coordenador. O Store chega por referência, construído
// no início do processo, nunca um global implícito.
func NewService(cfg *config.Config, feeds feedclient.Client, store *cache.Store) *Service {
	return &Service{
		cfg:   cfg,
		feeds: feeds,
		store: store,
		arena: coalescing.NewArena[*feedsdomain.MetricsResponse](
			time.Duration(cfg.Coalescer.TTLSeconds) * time.Second,
		),
		state: State{Phase: PhaseIdle},
	}
}

// Trigger inicia um novo ciclo. O snapshot de filtros é capturado aqui, no
// momento da emissão, nunca lido depois de dentro da continuação assíncrona.
// Emitir um ciclo novo invalida imediatamente a aceitação de todos os
// anteriores; as operações de rede deles continuam até o fim e seus
// resultados são descartados na chegada.
func (s *Service) Trigger(ctx context.Context, reason TriggerReason, filters domain.DashboardFilters) int64 {
	if reason == ReasonManualRefresh {
		s.InvalidateCache()
	}

	cycleID, snapshot, forceEmpty := s.beginCycle(reason, filters)

	go s.runCycle(ctx, cycleID, snapshot, forceEmpty)

	return cycleID
}

// beginCycle aloca o id do ciclo, captura o snapshot de filtros e transita
// o estado para Fetching. A alocação e a transição acontecem sob o mesmo
// lock das publicações: um gatilho não pode alocar um id menor e transitar
// o estado depois que um ciclo mais novo já publicou.
func (s *Service) beginCycle(reason TriggerReason, filters domain.DashboardFilters) (int64, domain.DashboardFilters, bool) {
	s.mu.Lock()
	cycleID := s.lastCycleID.Add(1)
	s.state.Phase = PhaseFetching
	s.state.Err = nil
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"cycle_id": cycleID,
		"reason":   reason,
		"start":    filters.DateRange.Start.Format(time.DateOnly),
		"end":      filters.DateRange.End.Format(time.DateOnly),
	}).Info("Iniciando ciclo de busca do dashboard")

	return cycleID, filters, reason == ReasonEmptyDataset
}

// runCycle executa um ciclo completo: emite as três chamadas de feed,
// aguarda todas, transforma, atualiza o cache e publica, somente se este
// ainda for o ciclo mais recente.
func (s *Service) runCycle(ctx context.Context, cycleID int64, filters domain.DashboardFilters, forceEmpty bool) {
	var (
		metricsRes  *feedsdomain.MetricsResponse
		revenueRes  *feedsdomain.RevenueResponse
		activityRes *feedsdomain.ActivityResponse
		metricsErr  error
		revenueErr  error
		activityErr error
	)

	wg := sync.WaitGroup{}
	wg.Add(3)

	// Métricas passam pelo coalescer: é o feed mais reconsultado sob troca
	// de filtros. Receita e atividade são emitidas diretamente por ciclo.
	go func() {
		defer wg.Done()
		metricsRes, metricsErr = s.arena.Do(ctx, metricsSignature(filters.DateRange, forceEmpty), func() (*feedsdomain.MetricsResponse, error) {
			return s.feeds.FetchMetrics(ctx, filters.DateRange, forceEmpty)
		})
	}()

	go func() {
		defer wg.Done()
		revenueRes, revenueErr = s.feeds.FetchRevenue(ctx)
	}()

	go func() {
		defer wg.Done()
		activityRes, activityErr = s.feeds.FetchActivity(ctx)
	}()

	wg.Wait()

	// Ponto de retomada: um ciclo superado descarta tudo sem tocar em estado
	if s.isStale(cycleID) {
		logrus.WithField("cycle_id", cycleID).Debug("Ciclo superado por um mais recente, descartando resposta")
		return
	}

	// Tudo-ou-nada: o resumo requer os três feeds, então qualquer falha
	// isolada falha o ciclo inteiro
	for _, err := range []error{metricsErr, revenueErr, activityErr} {
		if err != nil {
			s.publishFailure(cycleID, err)
			return
		}
	}

	series, err := transforming.TransformMetrics(metricsRes)
	if err != nil {
		s.publishFailure(cycleID, err)
		return
	}

	multiplier := s.cfg.RevenueMultiplier(filters.UseCustomConfig)
	revenue, err := transforming.TransformRevenue(revenueRes, multiplier)
	if err != nil {
		s.publishFailure(cycleID, err)
		return
	}

	activity, err := transforming.TransformActivity(activityRes)
	if err != nil {
		s.publishFailure(cycleID, err)
		return
	}

	// Resultado filtrado vazio é publicado como vazio, sem substituir
	// registros antigos do cache
	metrics := transforming.FilterMetricsByDateRange(series.Records, filters.DateRange)

	s.publish(cycleID, metrics, revenue, activity)
}

// publish grava os registros canônicos no cache, computa o resumo e publica
// o resultado combinado de forma atômica. A verificação de staleness e a
// publicação acontecem sob o mesmo lock: "o mais recente vence" é garantia
// estrutural, não um check bem posicionado.
func (s *Service) publish(cycleID int64, metrics []domain.MetricDataPoint, revenue []domain.RevenueDataPoint, activity []domain.ActivityItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStale(cycleID) {
		logrus.WithField("cycle_id", cycleID).Debug("Ciclo superado antes da publicação, descartando resultado")
		return
	}

	s.store.SetMetrics(metrics)
	s.store.SetRevenue(revenue)
	s.store.SetActivity(activity)

	s.state = State{
		Phase: PhasePublished,
		Data: &domain.DashboardData{
			Metrics:  metrics,
			Revenue:  revenue,
			Activity: activity,
			Summary:  aggregating.CalculateSummary(metrics, revenue),
		},
		CycleID:      cycleID,
		CacheVersion: s.store.CurrentVersion(),
	}

	logrus.WithFields(logrus.Fields{
		"cycle_id":      cycleID,
		"metrics":       len(metrics),
		"revenue":       len(revenue),
		"activity":      len(activity),
		"cache_version": s.state.CacheVersion,
	}).Info("Ciclo do dashboard publicado")
}

// publishFailure publica o erro do ciclo mantendo intacta a última
// publicação íntegra
func (s *Service) publishFailure(cycleID int64, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStale(cycleID) {
		logrus.WithField("cycle_id", cycleID).Debug("Ciclo superado antes da falha ser publicada, descartando")
		return
	}

	s.state.Phase = PhaseFailed
	s.state.Err = err
	s.state.CycleID = cycleID

	logrus.WithFields(logrus.Fields{
		"cycle_id": cycleID,
		"error":    err.Error(),
	}).Error("Ciclo do dashboard falhou")
}

// isStale verifica se o ciclo foi superado por um emitido depois
func (s *Service) isStale(cycleID int64) bool {
	return cycleID != s.lastCycleID.Load()
}

// CurrentState retorna uma cópia do estado visível atual
func (s *Service) CurrentState() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

// ReadCachedUserProfile retorna o perfil em cache, se existir
func (s *Service) ReadCachedUserProfile(userID string) (domain.UserProfile, bool) {
	return s.store.UserProfile(userID)
}

// BuildAndCacheUserProfile deriva o perfil da sequência de atividade
// informada, grava no cache e o retorna
func (s *Service) BuildAndCacheUserProfile(userID, username string, activity []domain.ActivityItem) domain.UserProfile {
	profile := cache.BuildUserProfile(userID, username, activity)
	s.store.SetUserProfile(userID, profile)
	return profile
}

// LoadUserProfile resolve o perfil de um usuário para a visão de detalhe:
// primeiro o cache de perfis, depois a atividade em cache; em último caso
// busca o feed de atividade diretamente. Sem username não há como filtrar
// atividade, então apenas o perfil em cache pode ser servido.
func (s *Service) LoadUserProfile(ctx context.Context, userID, username string) (domain.UserProfile, error) {
	if profile, ok := s.store.UserProfile(userID); ok {
		return profile, nil
	}

	if username == "" {
		return domain.UserProfile{}, domain.ErrProfileNotFound
	}

	activity, ok := s.store.Activity()
	if !ok {
		raw, err := s.feeds.FetchActivity(ctx)
		if err != nil {
			logrus.WithError(err).WithField("user_id", userID).
				Error("Erro ao buscar feed de atividade para montar perfil")
			return domain.UserProfile{}, err
		}

		activity, err = transforming.TransformActivity(raw)
		if err != nil {
			return domain.UserProfile{}, err
		}
	}

	return s.BuildAndCacheUserProfile(userID, username, activity), nil
}

// InvalidateCache descarta todas as entradas do cache. O contador global de
// versões não é rebobinado.
func (s *Service) InvalidateCache() {
	s.store.InvalidateAll()
	logrus.Info("Cache do dashboard invalidado")
}

// metricsSignature monta a assinatura canônica de uma consulta de métricas
func metricsSignature(dateRange domain.DateRange, forceEmpty bool) string {
	return fmt.Sprintf("metrics:%s:%s:%t",
		dateRange.Start.Format(time.DateOnly),
		dateRange.End.Format(time.DateOnly),
		forceEmpty,
	)
}
