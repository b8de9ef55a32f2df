package domain

// UserProfile é o perfil derivado do conjunto de eventos de atividade
type UserProfile struct {
	ID            string         `json:"id"`
	Username      string         `json:"username"`
	Email         string         `json:"email"`
	LastActivity  *ActivityItem  `json:"last_activity,omitempty"`
	RecentActions []ActivityItem `json:"recent_actions"`
	Metadata      map[string]any `json:"metadata"`
}
