package domain

// RawEvent é um evento cru do feed de atividade
type RawEvent struct {
	EventID   string `json:"event_id"`
	CreatedAt string `json:"created_at"`
	Username  string `json:"username"`
	EventType string `json:"event_type"`
	Result    string `json:"result"`
}

// ActivityResponse é o payload cru do feed de atividade.
// Events chega ordenado por created_at descendente.
type ActivityResponse struct {
	Events []RawEvent `json:"events"`
}
