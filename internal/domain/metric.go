package domain

import "time"

// MetricDataPoint representa as métricas de uso de um único dia
type MetricDataPoint struct {
	Date     time.Time `json:"date"`
	Users    int       `json:"users"`
	Sessions int       `json:"sessions"`
}

// MetricSeries é o container canônico de métricas.
// Records nunca é nil, mesmo quando o feed retorna vazio: todo consumidor
// downstream assume uma sequência iterável.
type MetricSeries struct {
	Records []MetricDataPoint `json:"records"`
}
