package feedclient

import (
	"context"

	"github.com/sirupsen/logrus"

	feedsdomain "github.com/cased/dashboard-api/infrastructure/integrator/feeds/domain"
)

// FetchRevenue busca o feed de receita por categoria
func (c *FeedClient) FetchRevenue(ctx context.Context) (*feedsdomain.RevenueResponse, error) {
	logrus.Debug("Buscando feed de receita")

	var response feedsdomain.RevenueResponse
	if err := c.fetch(ctx, "revenue", c.cfg.Feeds.RevenueURL, &response); err != nil {
		logrus.WithError(err).Warn("Erro ao buscar feed de receita")
		return nil, err
	}

	return &response, nil
}
