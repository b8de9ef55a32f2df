package aggregating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cased/dashboard-api/internal/domain"
)

func TestCalculateSummary(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		metrics  []domain.MetricDataPoint
		revenue  []domain.RevenueDataPoint
		expected domain.SummaryStats
	}{
		{
			name: "Dados completos - deve somar totais e calcular crescimento",
			metrics: []domain.MetricDataPoint{
				{Date: day(1), Users: 100, Sessions: 200},
				{Date: day(2), Users: 150, Sessions: 320},
			},
			revenue: []domain.RevenueDataPoint{
				{Category: "Subscriptions", Amount: 45000},
				{Category: "Enterprise", Amount: 78000},
			},
			expected: domain.SummaryStats{
				TotalUsers:     250,
				TotalRevenue:   123000,
				ActiveSessions: 320,
				GrowthPercent:  50,
			},
		},
		{
			name: "Crescimento fracionário - deve arredondar em duas casas",
			metrics: []domain.MetricDataPoint{
				{Date: day(1), Users: 300, Sessions: 10},
				{Date: day(2), Users: 400, Sessions: 20},
			},
			revenue: nil,
			expected: domain.SummaryStats{
				TotalUsers:     700,
				ActiveSessions: 20,
				GrowthPercent:  33.33,
			},
		},
		{
			name: "Um único ponto de métrica - crescimento indefinido vira zero",
			metrics: []domain.MetricDataPoint{
				{Date: day(1), Users: 100, Sessions: 200},
			},
			revenue: nil,
			expected: domain.SummaryStats{
				TotalUsers:     100,
				ActiveSessions: 200,
				GrowthPercent:  0,
			},
		},
		{
			name: "Ponto anterior com zero usuários - não divide por zero",
			metrics: []domain.MetricDataPoint{
				{Date: day(1), Users: 0, Sessions: 5},
				{Date: day(2), Users: 80, Sessions: 90},
			},
			revenue: nil,
			expected: domain.SummaryStats{
				TotalUsers:     80,
				ActiveSessions: 90,
				GrowthPercent:  0,
			},
		},
		{
			name:     "Sem dados - resumo zerado",
			metrics:  nil,
			revenue:  nil,
			expected: domain.SummaryStats{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateSummary(tt.metrics, tt.revenue)
			assert.Equal(t, tt.expected, result)
		})
	}
}
