package domain

// RawMetric é um ponto diário cru do feed de métricas
type RawMetric struct {
	Date         string `json:"date"`
	UserCount    int    `json:"user_count"`
	SessionCount int    `json:"session_count"`
}

// MetricsResponse é o payload cru do feed de métricas
type MetricsResponse struct {
	Data []RawMetric `json:"data"`
}
