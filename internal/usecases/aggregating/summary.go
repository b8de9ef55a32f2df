// Package aggregating deriva as estatísticas de rollup do dashboard a
// partir dos registros canônicos de métricas e receita.
package aggregating

import (
	"github.com/cased/dashboard-api/internal/domain"
	"github.com/cased/dashboard-api/pkg/utils"
)

// CalculateSummary computa o resumo do dashboard:
//   - TotalUsers: soma de users em todas as métricas
//   - TotalRevenue: soma de amount em todos os pontos de receita
//   - ActiveSessions: sessions da métrica cronologicamente mais recente, ou 0
//   - GrowthPercent: variação percentual de users entre as duas últimas
//     métricas; 0 com menos de dois pontos ou quando o ponto anterior é 0,
//     para evitar divisão por zero
func CalculateSummary(metrics []domain.MetricDataPoint, revenue []domain.RevenueDataPoint) domain.SummaryStats {
	summary := domain.SummaryStats{}

	for _, m := range metrics {
		summary.TotalUsers += m.Users
	}

	for _, r := range revenue {
		summary.TotalRevenue += r.Amount
	}

	if len(metrics) > 0 {
		summary.ActiveSessions = metrics[len(metrics)-1].Sessions
	}

	if len(metrics) >= 2 {
		current := metrics[len(metrics)-1].Users
		previous := metrics[len(metrics)-2].Users
		if previous > 0 {
			growth := float64(current-previous) / float64(previous) * 100
			summary.GrowthPercent = utils.RoundWithTwoDecimalPlace(growth)
		}
	}

	return summary
}
