package domain

import "time"

// ActivityStatus é o enum fechado de resultados de um evento de atividade
type ActivityStatus string

const (
	ActivityStatusSuccess ActivityStatus = "success"
	ActivityStatusWarning ActivityStatus = "warning"
	ActivityStatusError   ActivityStatus = "error"
)

// Valid verifica se o status pertence ao enum fechado
func (s ActivityStatus) Valid() bool {
	switch s {
	case ActivityStatusSuccess, ActivityStatusWarning, ActivityStatusError:
		return true
	}
	return false
}

// ActivityItem representa um evento de atividade canônico
type ActivityItem struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	User      string         `json:"user"`
	Action    string         `json:"action"`
	Status    ActivityStatus `json:"status"`
}
