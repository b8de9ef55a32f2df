package feedclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	feedsdomain "github.com/cased/dashboard-api/infrastructure/integrator/feeds/domain"
	"github.com/cased/dashboard-api/internal/domain"
)

// FetchMetrics busca o feed de métricas para o intervalo de datas informado
func (c *FeedClient) FetchMetrics(ctx context.Context, dateRange domain.DateRange, forceEmpty bool) (*feedsdomain.MetricsResponse, error) {
	params := url.Values{}
	params.Set("start", dateRange.Start.Format(time.DateOnly))
	params.Set("end", dateRange.End.Format(time.DateOnly))
	params.Set("empty", strconv.FormatBool(forceEmpty))

	endpoint := fmt.Sprintf("%s?%s", c.cfg.Feeds.MetricsURL, params.Encode())

	logrus.WithFields(logrus.Fields{
		"start": dateRange.Start.Format(time.DateOnly),
		"end":   dateRange.End.Format(time.DateOnly),
		"empty": forceEmpty,
	}).Debug("Buscando feed de métricas")

	var response feedsdomain.MetricsResponse
	if err := c.fetch(ctx, "metrics", endpoint, &response); err != nil {
		logrus.WithError(err).Warn("Erro ao buscar feed de métricas")
		return nil, err
	}

	return &response, nil
}
