package feedclient

import (
	"context"

	"github.com/sirupsen/logrus"

	feedsdomain "github.com/cased/dashboard-api/infrastructure/integrator/feeds/domain"
)

// FetchActivity busca o feed de eventos de atividade
func (c *FeedClient) FetchActivity(ctx context.Context) (*feedsdomain.ActivityResponse, error) {
	logrus.Debug("Buscando feed de atividade")

	var response feedsdomain.ActivityResponse
	if err := c.fetch(ctx, "activity", c.cfg.Feeds.ActivityURL, &response); err != nil {
		logrus.WithError(err).Warn("Erro ao buscar feed de atividade")
		return nil, err
	}

	return &response, nil
}
