package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevenueMultiplier(t *testing.T) {
	tests := []struct {
		name            string
		multiplier      string
		useCustomConfig bool
		expected        *float64
	}{
		{
			name:            "Sem configuração customizada - vale o multiplicador padrão",
			multiplier:      "2.5",
			useCustomConfig: false,
			expected:        float64Ptr(1.0),
		},
		{
			name:            "Configuração customizada presente - usa o valor configurado",
			multiplier:      "2.5",
			useCustomConfig: true,
			expected:        float64Ptr(2.5),
		},
		{
			name:            "Configuração customizada ausente - retorna nil para o transform falhar",
			multiplier:      "",
			useCustomConfig: true,
			expected:        nil,
		},
		{
			name:            "Valor não numérico - retorna nil em vez de propagar lixo",
			multiplier:      "abc",
			useCustomConfig: true,
			expected:        nil,
		},
		{
			name:            "Valor não finito - retorna nil",
			multiplier:      "NaN",
			useCustomConfig: true,
			expected:        nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Revenue: Revenue{
					Multiplier:        tt.multiplier,
					DefaultMultiplier: 1.0,
				},
			}

			result := cfg.RevenueMultiplier(tt.useCustomConfig)

			if tt.expected == nil {
				assert.Nil(t, result)
				return
			}

			require.NotNil(t, result)
			assert.Equal(t, *tt.expected, *result)
		})
	}
}

func float64Ptr(v float64) *float64 {
	return &v
}
