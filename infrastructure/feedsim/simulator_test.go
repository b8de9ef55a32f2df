package feedsim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMetrics(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)

	t.Run("Um ponto por dia do intervalo, ambos os limites inclusos", func(t *testing.T) {
		response := generateMetrics(start, end, false)

		require.Len(t, response.Data, 7)
		assert.Equal(t, "2024-01-01", response.Data[0].Date)
		assert.Equal(t, "2024-01-07", response.Data[6].Date)

		for _, point := range response.Data {
			assert.GreaterOrEqual(t, point.UserCount, 500)
			assert.GreaterOrEqual(t, point.SessionCount, 1000)
		}
	})

	t.Run("empty=true retorna lista vazia definida", func(t *testing.T) {
		response := generateMetrics(start, end, true)

		require.NotNil(t, response.Data)
		assert.Empty(t, response.Data)
	})
}

func TestGenerateRevenue(t *testing.T) {
	response := generateRevenue()

	require.Len(t, response.Categories, 4)

	names := make([]string, 0, len(response.Categories))
	for _, cat := range response.Categories {
		names = append(names, cat.Name)
		assert.Greater(t, cat.Revenue, 0.0)
	}

	assert.Equal(t, []string{"Subscriptions", "One-time", "Enterprise", "Add-ons"}, names)
}

func TestGenerateActivity(t *testing.T) {
	response := generateActivity()

	require.Len(t, response.Events, 20)

	for i, event := range response.Events {
		assert.Contains(t, event.EventID, "evt_")
		assert.Contains(t, usernames, event.Username)
		assert.Contains(t, actions, event.EventType)
		assert.Contains(t, statuses, event.Result)

		// Ordenação por created_at descendente
		if i > 0 {
			assert.LessOrEqual(t, event.CreatedAt, response.Events[i-1].CreatedAt)
		}

		_, err := time.Parse(time.RFC3339, event.CreatedAt)
		assert.NoError(t, err)
	}
}
