package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/carson-networks/spaces-server/api"
	"github.com/carson-networks/spaces-server/internal/events"
	"github.com/carson-networks/spaces-server/internal/handlers/v1/response"
	"github.com/carson-networks/spaces-server/internal/operator"
	"github.com/carson-networks/spaces-server/internal/service"
	"github.com/carson-networks/spaces-server/internal/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	logger.WithField("environment", cfg.Environment).Info("spaces-server starting")

	store, err := storage.NewStorage(cfg)
	if err != nil {
		logger.WithError(err).Error("storage.NewStorage")
		return err
	}
	defer store.Close()

	publisher, err := events.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange, logger)
	if err != nil {
		logger.WithError(err).Error("events.NewPublisher")
		return err
	}
	defer publisher.Close()

	delegator := operator.NewOperatorDelegator(cfg.ProcessWorkers, logger)
	delegator.Start()
	defer delegator.Stop()

	response.Install(cfg.IsDevelopment())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rest := api.Rest{
		Logger:   logger,
		Config:   cfg,
		Service:  service.NewService(store, publisher, logger),
		Operator: delegator,
	}
	return rest.Serve(ctx)
}
