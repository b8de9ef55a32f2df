package domain

// RawCategory é uma categoria crua do feed de receita
type RawCategory struct {
	Name      string  `json:"name"`
	Revenue   float64 `json:"revenue"`
	YoYGrowth float64 `json:"yoy_growth"`
}

// RevenueResponse é o payload cru do feed de receita
type RevenueResponse struct {
	Categories []RawCategory `json:"categories"`
}
