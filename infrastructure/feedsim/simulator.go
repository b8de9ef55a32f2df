// Package feedsim simula os três serviços upstream do dashboard para
// desenvolvimento local e testes de integração. Os shapes de payload são os
// mesmos que os feeds reais entregam.
package feedsim

import (
	"math/rand"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"

	feedsdomain "github.com/cased/dashboard-api/infrastructure/integrator/feeds/domain"
	"github.com/cased/dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const eventIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

var usernames = []string{"alice", "bob", "charlie", "diana", "eve", "frank"}

var actions = []string{"login", "purchase", "view_report", "export_data", "update_settings", "invite_user"}

// Pesos do feed real: success aparece com mais frequência
var statuses = []string{"success", "success", "success", "warning", "error"}

type revenueCategory struct {
	name        string
	baseRevenue float64
}

var revenueCategories = []revenueCategory{
	{name: "Subscriptions", baseRevenue: 45000},
	{name: "One-time", baseRevenue: 12000},
	{name: "Enterprise", baseRevenue: 78000},
	{name: "Add-ons", baseRevenue: 8500},
}

// MetricsHandler atende GET /sim/metrics com um ponto diário por dia do
// intervalo pedido. empty=true força uma lista vazia.
func MetricsHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		empty := r.URL.Query().Get("empty") == "true"

		end := time.Now()
		if parsed, err := utils.ParseDate(r.URL.Query().Get("end")); err == nil && !parsed.IsZero() {
			end = *parsed
		}

		start := end.AddDate(0, 0, -7)
		if parsed, err := utils.ParseDate(r.URL.Query().Get("start")); err == nil && !parsed.IsZero() {
			start = *parsed
		}

		simulateLatency(100, 200)

		writeJSON(w, generateMetrics(start, end, empty))
	})
}

// RevenueHandler atende GET /sim/revenue
func RevenueHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		simulateLatency(150, 250)

		writeJSON(w, generateRevenue())
	})
}

// ActivityHandler atende GET /sim/activity com 20 eventos ordenados por
// created_at descendente
func ActivityHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		simulateLatency(100, 150)

		writeJSON(w, generateActivity())
	})
}

func generateMetrics(start, end time.Time, empty bool) *feedsdomain.MetricsResponse {
	response := &feedsdomain.MetricsResponse{Data: []feedsdomain.RawMetric{}}
	if empty {
		return response
	}

	current := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	for !current.After(last) {
		response.Data = append(response.Data, feedsdomain.RawMetric{
			Date:         current.Format(time.DateOnly),
			UserCount:    rand.Intn(1000) + 500,
			SessionCount: rand.Intn(2000) + 1000,
		})
		current = current.AddDate(0, 0, 1)
	}

	return response
}

func generateRevenue() *feedsdomain.RevenueResponse {
	response := &feedsdomain.RevenueResponse{Categories: make([]feedsdomain.RawCategory, 0, len(revenueCategories))}

	for _, cat := range revenueCategories {
		response.Categories = append(response.Categories, feedsdomain.RawCategory{
			Name:      cat.name,
			Revenue:   cat.baseRevenue + float64(rand.Intn(5000)),
			YoYGrowth: utils.RoundWithTwoDecimalPlace(rand.Float64()*30 - 5),
		})
	}

	return response
}

func generateActivity() *feedsdomain.ActivityResponse {
	now := time.Now()
	events := make([]feedsdomain.RawEvent, 0, 20)

	for i := 0; i < 20; i++ {
		id, err := gonanoid.Generate(eventIDAlphabet, 9)
		if err != nil {
			logrus.WithError(err).Warn("Erro ao gerar id de evento simulado")
			continue
		}

		timestamp := now.Add(-time.Duration(i) * time.Minute * time.Duration(rand.Intn(60)+1))
		events = append(events, feedsdomain.RawEvent{
			EventID:   "evt_" + id,
			CreatedAt: timestamp.Format(time.RFC3339),
			Username:  usernames[rand.Intn(len(usernames))],
			EventType: actions[rand.Intn(len(actions))],
			Result:    statuses[rand.Intn(len(statuses))],
		})
	}

	// Garante a ordenação descendente que o contrato do feed promete
	for i := 1; i < len(events); i++ {
		for j := i; j > 0 && events[j].CreatedAt > events[j-1].CreatedAt; j-- {
			events[j], events[j-1] = events[j-1], events[j]
		}
	}

	return &feedsdomain.ActivityResponse{Events: events}
}

func simulateLatency(baseMs, jitterMs int) {
	time.Sleep(time.Duration(baseMs+rand.Intn(jitterMs)) * time.Millisecond)
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta do feed simulado")
	}
}
