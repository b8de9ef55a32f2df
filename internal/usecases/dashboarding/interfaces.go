package dashboarding

import (
	"context"

	"github.com/cased/dashboard-api/internal/domain"
)

// Dashboarder define a interface do coordenador de consultas do dashboard
type Dashboarder interface {
	// Trigger inicia um novo ciclo de busca com o snapshot de filtros
	// informado e retorna o id do ciclo alocado
	Trigger(ctx context.Context, reason TriggerReason, filters domain.DashboardFilters) int64

	// CurrentState retorna o estado visível atual do dashboard
	CurrentState() State

	// ReadCachedUserProfile retorna o perfil em cache de um usuário, se existir
	ReadCachedUserProfile(userID string) (domain.UserProfile, bool)

	// BuildAndCacheUserProfile deriva o perfil a partir da sequência de
	// atividade, grava no cache e o retorna
	BuildAndCacheUserProfile(userID, username string, activity []domain.ActivityItem) domain.UserProfile

	// LoadUserProfile resolve o perfil de um usuário: cache de perfis,
	// depois atividade em cache, por fim o próprio feed de atividade.
	// Sem username, retorna ErrProfileNotFound quando não há perfil em cache.
	LoadUserProfile(ctx context.Context, userID, username string) (domain.UserProfile, error)

	// InvalidateCache descarta todas as entradas do cache
	InvalidateCache()
}
