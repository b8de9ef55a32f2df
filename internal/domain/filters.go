package domain

import "time"

// DateRange representa um intervalo de datas com ambos os limites inclusivos
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains verifica se a data está dentro do intervalo.
// A comparação ignora hora e fuso: apenas ano/mês/dia contam, e tanto Start
// quanto End são inclusivos. Um limite superior exclusivo descartaria
// silenciosamente o último dia do período.
func (r DateRange) Contains(date time.Time) bool {
	d := truncateToDay(date)
	return !d.Before(truncateToDay(r.Start)) && !d.After(truncateToDay(r.End))
}

// DashboardFilters é o snapshot imutável de filtros capturado por ciclo
type DashboardFilters struct {
	DateRange       DateRange `json:"date_range"`
	UseCustomConfig bool      `json:"use_custom_config"`
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
