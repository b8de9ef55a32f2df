package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/cased/dashboard-api/infrastructure/cache"
	"github.com/cased/dashboard-api/infrastructure/integrator/feeds/feedclient"
	"github.com/cased/dashboard-api/internal/api"
	"github.com/cased/dashboard-api/internal/config"
	"github.com/cased/dashboard-api/internal/scheduler"
	"github.com/cased/dashboard-api/internal/usecases/dashboarding"
	"github.com/cased/dashboard-api/pkg/log"
)

func main() {
	log.Setup()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := cache.NewStore()
	feedClient := feedclient.NewClient(cfg)

	dashboardService := dashboarding.NewService(cfg, feedClient, store)

	autoRefreshService := scheduler.NewAutoRefreshService(dashboardService, cfg)
	if err := autoRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização automática do dashboard")
	} else {
		logrus.Info("Agendador de atualização automática do dashboard iniciado com sucesso")
	}

	server, err := api.New(cfg, dashboardService, autoRefreshService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
