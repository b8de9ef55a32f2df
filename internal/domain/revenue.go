package domain

// RevenueDataPoint representa a receita consolidada de uma categoria
type RevenueDataPoint struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Growth   float64 `json:"growth"`
}
