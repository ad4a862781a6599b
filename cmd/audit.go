package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ncc-uat/ncc-admin-services/internal/events"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Tail the audit topic and log every change event",
	Run: func(cmd *cobra.Command, args []string) {

		// Load the config and set up logging
		commonSetUp()

		if appCfg.Pulsar.URL == "" {
			log.Fatal().Msg("pulsar.url is not configured")
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// Initialize event consumer
		consumer, err := events.NewEventConsumer(appCfg.Pulsar.URL, appCfg.Pulsar.Topic, appCfg.Pulsar.Subscription)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize event consumer")
		}
		defer consumer.Close()

		log.Info().Str("topic", appCfg.Pulsar.Topic).Msg("Waiting for audit events")

		// Consume messages
		ctx = log.Logger.WithContext(ctx)
		events.Consume(ctx, consumer, time.Second, func(event events.AuditEvent) {
			log.Log().
				Str("entity", event.Entity).
				Str("entity_id", event.EntityID).
				Str("action", event.Action).
				Str("actor", event.Actor).
				Str("at", event.Timestamp).
				Msg("Audit event")
		})
		log.Info().Msg("Audit consumer stopped")
	},
}

func init() {
	rootCmd.AddCommand(auditCmd)
}
