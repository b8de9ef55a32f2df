package feedclient

import (
	"context"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	feedsdomain "github.com/cased/dashboard-api/infrastructure/integrator/feeds/domain"
	"github.com/cased/dashboard-api/internal/config"
	"github.com/cased/dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client define a interface para buscar os três feeds do dashboard
type Client interface {
	// FetchMetrics busca o feed de métricas de uso para o período informado.
	// forceEmpty instrui o feed a retornar uma lista vazia.
	FetchMetrics(ctx context.Context, dateRange domain.DateRange, forceEmpty bool) (*feedsdomain.MetricsResponse, error)

	// FetchRevenue busca o feed de receita por categoria
	FetchRevenue(ctx context.Context) (*feedsdomain.RevenueResponse, error)

	// FetchActivity busca o feed de eventos de atividade
	FetchActivity(ctx context.Context) (*feedsdomain.ActivityResponse, error)
}

// FeedClient implementa Client sobre HTTP
type FeedClient struct {
	cfg        *config.Config
	httpClient *http.Client
}

// NewClient cria um novo cliente de feeds.
// O timeout vem da configuração: o Coordinator não impõe limite de tempo
// próprio, essa responsabilidade é do transporte.
func NewClient(cfg *config.Config) Client {
	return &FeedClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Feeds.TimeoutSeconds) * time.Second,
		},
	}
}

// fetch executa a requisição e decodifica o corpo em out.
// Status fora da faixa 2xx vira NetworkError para o feed informado.
func (c *FeedClient) fetch(ctx context.Context, feed, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrapf(err, "erro ao criar requisição para o feed %s", feed)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.NewNetworkError(feed, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return domain.NewNetworkError(feed, resp.StatusCode, nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.NewNetworkError(feed, 0, err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "erro ao decodificar payload do feed %s", feed)
	}

	return nil
}
