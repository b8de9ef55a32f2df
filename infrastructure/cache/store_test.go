package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cased/dashboard-api/internal/domain"
)

func TestStore_VersionsAreStrictlyIncreasing(t *testing.T) {
	store := NewStore()

	v1 := store.SetMetrics([]domain.MetricDataPoint{{Users: 10}})
	v2 := store.SetRevenue([]domain.RevenueDataPoint{{Category: "Subscriptions", Amount: 100}})
	v3 := store.SetActivity([]domain.ActivityItem{{ID: "evt_001"}})

	assert.Equal(t, int64(1), v1)
	assert.Equal(t, int64(2), v2)
	assert.Equal(t, int64(3), v3)
	assert.Equal(t, int64(3), store.CurrentVersion())

	// Sobrescrever a mesma entrada consome uma versão nova
	v4 := store.SetMetrics([]domain.MetricDataPoint{{Users: 20}})
	assert.Equal(t, int64(4), v4)
}

func TestStore_ReadsReturnLastWrite(t *testing.T) {
	store := NewStore()

	_, ok := store.Metrics()
	assert.False(t, ok, "store vazio não deve reportar métricas")

	store.SetMetrics([]domain.MetricDataPoint{{Users: 10}})
	store.SetMetrics([]domain.MetricDataPoint{{Users: 42}})

	metrics, ok := store.Metrics()
	require.True(t, ok)
	require.Len(t, metrics, 1)
	assert.Equal(t, 42, metrics[0].Users)
}

func TestStore_InvalidateAllKeepsVersionCounter(t *testing.T) {
	store := NewStore()

	store.SetMetrics([]domain.MetricDataPoint{{Users: 10}})
	store.SetRevenue([]domain.RevenueDataPoint{{Category: "Enterprise", Amount: 500}})
	store.SetUserProfile("user-1", domain.UserProfile{ID: "user-1", Username: "alice"})

	before := store.CurrentVersion()
	store.InvalidateAll()

	_, ok := store.Metrics()
	assert.False(t, ok)
	_, ok = store.Revenue()
	assert.False(t, ok)
	_, ok = store.UserProfile("user-1")
	assert.False(t, ok)

	// O contador global nunca regride, mesmo após o reset completo
	assert.Equal(t, before, store.CurrentVersion())

	next := store.SetMetrics([]domain.MetricDataPoint{{Users: 5}})
	assert.Equal(t, before+1, next)
}

func TestBuildUserProfile(t *testing.T) {
	ts := func(hour int) time.Time {
		return time.Date(2024, 1, 15, hour, 0, 0, 0, time.UTC)
	}

	// A sequência chega ordenada por recência descendente, como o feed entrega
	activity := []domain.ActivityItem{
		{ID: "evt_007", Timestamp: ts(19), User: "Alice", Action: "export_data", Status: domain.ActivityStatusSuccess},
		{ID: "evt_006", Timestamp: ts(18), User: "bob", Action: "login", Status: domain.ActivityStatusSuccess},
		{ID: "evt_005", Timestamp: ts(17), User: "Alice", Action: "purchase", Status: domain.ActivityStatusWarning},
		{ID: "evt_004", Timestamp: ts(16), User: "Alice", Action: "login", Status: domain.ActivityStatusSuccess},
		{ID: "evt_003", Timestamp: ts(15), User: "Alice", Action: "view_report", Status: domain.ActivityStatusSuccess},
		{ID: "evt_002", Timestamp: ts(14), User: "Alice", Action: "update_settings", Status: domain.ActivityStatusError},
		{ID: "evt_001", Timestamp: ts(13), User: "Alice", Action: "login", Status: domain.ActivityStatusSuccess},
	}

	t.Run("Usuário com atividade - deriva perfil completo", func(t *testing.T) {
		profile := BuildUserProfile("user-1", "Alice", activity)

		assert.Equal(t, "user-1", profile.ID)
		assert.Equal(t, "Alice", profile.Username)
		assert.Equal(t, "alice@example.com", profile.Email)

		require.NotNil(t, profile.LastActivity)
		assert.Equal(t, "evt_007", profile.LastActivity.ID)

		// Limitado aos 5 eventos mais recentes do usuário
		require.Len(t, profile.RecentActions, 5)
		assert.Equal(t, "evt_007", profile.RecentActions[0].ID)
		assert.Equal(t, "evt_002", profile.RecentActions[4].ID)

		assert.Equal(t, ts(19), profile.Metadata["lastSeen"])
		assert.Equal(t, activity[0], profile.Metadata["source"])
	})

	t.Run("Usuário sem atividade - perfil com listas vazias definidas", func(t *testing.T) {
		profile := BuildUserProfile("user-9", "Zoe", activity)

		assert.Equal(t, "zoe@example.com", profile.Email)
		assert.Nil(t, profile.LastActivity)
		assert.NotNil(t, profile.RecentActions)
		assert.Empty(t, profile.RecentActions)
		assert.NotContains(t, profile.Metadata, "lastSeen")
	})

	t.Run("Filtro por username é exato - outros usuários não vazam", func(t *testing.T) {
		profile := BuildUserProfile("user-2", "bob", activity)

		require.Len(t, profile.RecentActions, 1)
		assert.Equal(t, "evt_006", profile.RecentActions[0].ID)
	})
}

func TestStore_SetUserProfileOverwrites(t *testing.T) {
	store := NewStore()

	store.SetUserProfile("user-1", domain.UserProfile{ID: "user-1", Username: "alice", Email: "alice@example.com"})
	store.SetUserProfile("user-1", domain.UserProfile{ID: "user-1", Username: "alice", Email: "alice2@example.com"})

	profile, ok := store.UserProfile("user-1")
	require.True(t, ok)
	assert.Equal(t, "alice2@example.com", profile.Email)
}
