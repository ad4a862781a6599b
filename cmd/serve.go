package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ncc-uat/ncc-admin-services/api/handlers"
	"github.com/ncc-uat/ncc-admin-services/api/services"
	"github.com/ncc-uat/ncc-admin-services/internal/appconfig"
	"github.com/ncc-uat/ncc-admin-services/internal/authn"
	awsclient "github.com/ncc-uat/ncc-admin-services/internal/aws"
	"github.com/ncc-uat/ncc-admin-services/internal/events"
	"github.com/ncc-uat/ncc-admin-services/internal/mail"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// @title NCC UAT Admin API
// @version v1
// @description Back-office API for the NCC UAT dashboard.
// @BasePath /api
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server for handling API requests",
	Run: func(cmd *cobra.Command, args []string) {

		// Load the config and set up logging
		commonSetUp()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		issuer, err := newIssuer(ctx, appCfg)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize token issuer")
		}

		// Initialize audit event publisher
		notifier, err := events.NewNotifier(appCfg.Pulsar.URL, appCfg.Pulsar.Topic)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize event publisher")
		}
		defer notifier.Close()

		mailer, err := newMailer(ctx, appCfg)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize mailer")
		}

		service := services.NewService(appCfg, issuer, notifier, mailer)

		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

		server := &http.Server{
			Addr:              fmt.Sprintf("%s:%d", host, port),
			Handler:           handlers.NewRouter(service, reg),
			ReadHeaderTimeout: 10 * time.Second,
		}

		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("Server shutdown failed")
			}
		}()

		log.Info().Bool("enforce", appCfg.Auth.Enforce).Msg(fmt.Sprintf("Server started at %s:%d", host, port))

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("could not start server")
		}
		log.Info().Msg("Server stopped")
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&host, "host", "0.0.0.0", "host to run the server on")
	serveCmd.Flags().IntVar(&port, "port", 8080, "port to run the server on")
}

// newIssuer resolves the signing key, from Secrets Manager when a secret id
// is configured, and builds the token issuer.
func newIssuer(ctx context.Context, cfg *appconfig.Config) (*authn.Issuer, error) {
	var sm authn.SecretsManagerAPI
	if cfg.Auth.SigningSecretID != "" {
		awsCfg, err := awsclient.LoadAWSConfig(ctx, cfg.AWS.Region)
		if err != nil {
			return nil, err
		}
		sm = awsclient.NewSecretsManagerClient(awsCfg)
	}

	key, err := authn.ResolveSigningKey(ctx, sm, cfg.Auth.SigningSecretID, cfg.Auth.SigningKey)
	if err != nil {
		return nil, err
	}
	return authn.NewIssuer(key, cfg.Auth.TokenTTL, cfg.Auth.Issuer)
}

// newMailer returns an SES mailer when mail is enabled and nil otherwise.
func newMailer(ctx context.Context, cfg *appconfig.Config) (mail.Mailer, error) {
	if !cfg.Mail.Enabled {
		return nil, nil
	}

	awsCfg, err := awsclient.LoadAWSConfig(ctx, cfg.AWS.Region)
	if err != nil {
		return nil, err
	}

	log.Info().Str("region", cfg.AWS.Region).Str("from", cfg.Mail.FromAddress).Msg("Welcome emails enabled")
	return mail.NewSESMailer(awsclient.NewSESClient(awsCfg), cfg.Mail.FromAddress, cfg.Mail.AppURL), nil
}
