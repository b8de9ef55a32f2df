package cache

import (
	"strings"
	"sync"
	"time"

	"github.com/cased/dashboard-api/internal/domain"
)

// Entry é um snapshot versionado de um feed no cache.
// Version reflete a escrita que o produziu, nunca o momento da leitura.
type Entry[T any] struct {
	Data      T
	Timestamp time.Time
	Version   int64
}

// Store guarda o último snapshot canônico de cada feed e os perfis de
// usuário derivados. É estado puro de processo: nenhuma rede ou I/O
// acontece aqui, e entradas só mudam por substituição completa.
//
// O contador global de versão é estritamente crescente; cada escrita recebe
// uma versão única e InvalidateAll nunca o rebobina.
type Store struct {
	mu           sync.RWMutex
	metrics      *Entry[[]domain.MetricDataPoint]
	revenue      *Entry[[]domain.RevenueDataPoint]
	activity     *Entry[[]domain.ActivityItem]
	userProfiles map[string]*Entry[domain.UserProfile]
	version      int64
}

// NewStore cria um Store vazio.
// O Store é construído uma vez no início do processo e passado por
// referência ao Coordinator, nunca um singleton implícito, para permitir
// um store novo por teste.
func NewStore() *Store {
	return &Store{
		userProfiles: make(map[string]*Entry[domain.UserProfile]),
	}
}

// nextVersion incrementa o contador global. Chamar com mu em modo escrita.
func (s *Store) nextVersion() int64 {
	s.version++
	return s.version
}

// Metrics retorna o snapshot de métricas, se existir
func (s *Store) Metrics() ([]domain.MetricDataPoint, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.metrics == nil {
		return nil, false
	}
	return s.metrics.Data, true
}

// SetMetrics substitui o snapshot de métricas inteiro e retorna a versão da escrita
func (s *Store) SetMetrics(data []domain.MetricDataPoint) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	version := s.nextVersion()
	s.metrics = &Entry[[]domain.MetricDataPoint]{Data: data, Timestamp: time.Now(), Version: version}
	return version
}

// Revenue retorna o snapshot de receita, se existir
func (s *Store) Revenue() ([]domain.RevenueDataPoint, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.revenue == nil {
		return nil, false
	}
	return s.revenue.Data, true
}

// SetRevenue substitui o snapshot de receita inteiro e retorna a versão da escrita
func (s *Store) SetRevenue(data []domain.RevenueDataPoint) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	version := s.nextVersion()
	s.revenue = &Entry[[]domain.RevenueDataPoint]{Data: data, Timestamp: time.Now(), Version: version}
	return version
}

// Activity retorna o snapshot de atividade, se existir
func (s *Store) Activity() ([]domain.ActivityItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.activity == nil {
		return nil, false
	}
	return s.activity.Data, true
}

// SetActivity substitui o snapshot de atividade inteiro e retorna a versão da escrita
func (s *Store) SetActivity(data []domain.ActivityItem) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	version := s.nextVersion()
	s.activity = &Entry[[]domain.ActivityItem]{Data: data, Timestamp: time.Now(), Version: version}
	return version
}

// UserProfile retorna o perfil em cache de um usuário, se existir
func (s *Store) UserProfile(userID string) (domain.UserProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.userProfiles[userID]
	if !ok {
		return domain.UserProfile{}, false
	}
	return entry.Data, true
}

// SetUserProfile substitui o perfil em cache de um usuário e retorna a versão da escrita
func (s *Store) SetUserProfile(userID string, profile domain.UserProfile) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	version := s.nextVersion()
	s.userProfiles[userID] = &Entry[domain.UserProfile]{Data: profile, Timestamp: time.Now(), Version: version}
	return version
}

// InvalidateAll descarta todas as entradas. O contador global segue de onde
// parou: versões nunca regridem, mesmo após um reset completo.
func (s *Store) InvalidateAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.metrics = nil
	s.revenue = nil
	s.activity = nil
	s.userProfiles = make(map[string]*Entry[domain.UserProfile])
}

// CurrentVersion retorna o valor atual do contador global, somente leitura
func (s *Store) CurrentVersion() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.version
}

// BuildUserProfile deriva um perfil a partir da sequência de atividade,
// que já chega ordenada por recência descendente: LastActivity é o primeiro
// evento do usuário e RecentActions fica limitado aos 5 primeiros.
func BuildUserProfile(userID, username string, activity []domain.ActivityItem) domain.UserProfile {
	userActivity := make([]domain.ActivityItem, 0, len(activity))
	for _, item := range activity {
		if item.User == username {
			userActivity = append(userActivity, item)
		}
	}

	profile := domain.UserProfile{
		ID:       userID,
		Username: username,
		Email:    strings.ToLower(username) + "@example.com",
		Metadata: map[string]any{},
	}

	if len(userActivity) > 0 {
		last := userActivity[0]
		profile.LastActivity = &last
		profile.Metadata["lastSeen"] = last.Timestamp
		profile.Metadata["source"] = last
	}

	if len(userActivity) > 5 {
		userActivity = userActivity[:5]
	}
	profile.RecentActions = userActivity

	return profile
}
