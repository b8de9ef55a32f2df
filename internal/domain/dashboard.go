package domain

// SummaryStats são as estatísticas derivadas de métricas + receita.
// Nunca são persistidas de forma independente.
type SummaryStats struct {
	TotalUsers     int     `json:"total_users"`
	TotalRevenue   float64 `json:"total_revenue"`
	ActiveSessions int     `json:"active_sessions"`
	GrowthPercent  float64 `json:"growth_percent"`
}

// DashboardData é o resultado combinado de um ciclo completo.
// A publicação é atômica: os quatro campos são preenchidos juntos ou nenhum.
type DashboardData struct {
	Metrics  []MetricDataPoint  `json:"metrics"`
	Revenue  []RevenueDataPoint `json:"revenue"`
	Activity []ActivityItem     `json:"activity"`
	Summary  SummaryStats       `json:"summary"`
}
