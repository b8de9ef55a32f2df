// Package transforming converte os payloads crus dos feeds em registros
// canônicos validados. Todas as funções são puras e sem efeito colateral:
// diante de entrada malformada elas falham em vez de propagar valores
// corrompidos para o restante do pipeline.
package transforming

import (
	"fmt"
	"math"
	"time"

	feedsdomain "github.com/cased/dashboard-api/infrastructure/integrator/feeds/domain"
	"github.com/cased/dashboard-api/internal/domain"
)

// TransformMetrics converte o payload cru de métricas no container canônico.
// Sempre retorna um container definido com Records não-nil, inclusive para
// entrada vazia: um resultado ausente é defeito, não saída válida.
func TransformMetrics(raw *feedsdomain.MetricsResponse) (*domain.MetricSeries, error) {
	series := &domain.MetricSeries{Records: []domain.MetricDataPoint{}}

	if raw == nil || len(raw.Data) == 0 {
		return series, nil
	}

	for _, item := range raw.Data {
		date, err := time.Parse(time.DateOnly, item.Date)
		if err != nil {
			return nil, domain.NewValidationError("metrics", item.Date, "invalid date format")
		}

		series.Records = append(series.Records, domain.MetricDataPoint{
			Date:     date,
			Users:    item.UserCount,
			Sessions: item.SessionCount,
		})
	}

	return series, nil
}

// TransformRevenue converte o payload cru de receita aplicando o
// multiplicador: amount = revenue × multiplier. Um multiplicador ausente ou
// não finito vira ValidationError nomeando a categoria afetada, nunca um
// amount não numérico.
func TransformRevenue(raw *feedsdomain.RevenueResponse, multiplier *float64) ([]domain.RevenueDataPoint, error) {
	if raw == nil {
		return []domain.RevenueDataPoint{}, nil
	}

	points := make([]domain.RevenueDataPoint, 0, len(raw.Categories))

	for _, cat := range raw.Categories {
		if multiplier == nil {
			return nil, domain.NewValidationError("revenue", cat.Name, "revenue multiplier is not configured")
		}
		if math.IsNaN(*multiplier) || math.IsInf(*multiplier, 0) {
			return nil, domain.NewValidationError("revenue", cat.Name,
				fmt.Sprintf("revenue multiplier is not finite: %v", *multiplier))
		}

		points = append(points, domain.RevenueDataPoint{
			Category: cat.Name,
			Amount:   cat.Revenue * (*multiplier),
			Growth:   cat.YoYGrowth,
		})
	}

	return points, nil
}

// TransformActivity converte o payload cru de atividade. O resultado de
// cada evento precisa pertencer ao enum fechado de status; valores
// desconhecidos falham com ValidationError em vez de serem admitidos como
// string não verificada.
func TransformActivity(raw *feedsdomain.ActivityResponse) ([]domain.ActivityItem, error) {
	if raw == nil {
		return []domain.ActivityItem{}, nil
	}

	items := make([]domain.ActivityItem, 0, len(raw.Events))

	for _, event := range raw.Events {
		status := domain.ActivityStatus(event.Result)
		if !status.Valid() {
			return nil, domain.NewValidationError("activity", event.EventID,
				fmt.Sprintf("unknown status %q", event.Result))
		}

		timestamp, err := time.Parse(time.RFC3339, event.CreatedAt)
		if err != nil {
			return nil, domain.NewValidationError("activity", event.EventID, "invalid timestamp format")
		}

		items = append(items, domain.ActivityItem{
			ID:        event.EventID,
			Timestamp: timestamp,
			User:      event.Username,
			Action:    event.EventType,
			Status:    status,
		})
	}

	return items, nil
}

// FilterMetricsByDateRange retorna o subconjunto de registros cuja data cai
// dentro do intervalo, inclusivo em ambos os limites.
func FilterMetricsByDateRange(records []domain.MetricDataPoint, dateRange domain.DateRange) []domain.MetricDataPoint {
	filtered := make([]domain.MetricDataPoint, 0, len(records))

	for _, record := range records {
		if dateRange.Contains(record.Date) {
			filtered = append(filtered, record)
		}
	}

	return filtered
}
