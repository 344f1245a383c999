package cmd

import (
	"context"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/carson-networks/spaces-server/internal/events"
	"github.com/carson-networks/spaces-server/internal/operator"
	"github.com/carson-networks/spaces-server/internal/operator/actions"
	"github.com/carson-networks/spaces-server/internal/service"
	"github.com/carson-networks/spaces-server/internal/storage"
)

var (
	flagSpace string
	flagDump  bool
)

var processDueCmd = &cobra.Command{
	Use:   "process-due",
	Short: "Materialize due recurring transactions for one space",
	RunE:  runProcessDue,
}

func init() {
	processDueCmd.Flags().StringVarP(&flagSpace, "space", "s", "", "Space UUID (required)")
	processDueCmd.Flags().BoolVar(&flagDump, "dump", false, "Print the full result")
	_ = processDueCmd.MarkFlagRequired("space")
	rootCmd.AddCommand(processDueCmd)
}

func runProcessDue(cmd *cobra.Command, _ []string) error {
	spaceID, err := uuid.FromString(flagSpace)
	if err != nil {
		return fmt.Errorf("--space: %w", err)
	}

	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	store, err := storage.NewStorage(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	publisher, err := events.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange, logger)
	if err != nil {
		return err
	}
	defer publisher.Close()

	svc := service.NewService(store, publisher, logger)
	ctx := context.Background()
	if !svc.Space.SpaceExists(ctx, spaceID) {
		return fmt.Errorf("space %s not found", spaceID)
	}

	delegator := operator.NewOperatorDelegator(1, logger)
	delegator.Start()
	defer delegator.Stop()

	action := &actions.ProcessDue{SpaceID: spaceID, Processor: svc.Recurring}
	if err := delegator.Process(ctx, action); err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"spaceID":   spaceID.String(),
		"processed": action.Result.Processed,
	}).Info("ProcessDue.complete")
	if flagDump {
		spew.Fdump(cmd.OutOrStdout(), action.Result)
	}
	return nil
}
