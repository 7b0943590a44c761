package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/tifyai/website/internal/catalog"
	"github.com/tifyai/website/internal/config"
	"github.com/tifyai/website/internal/database"
	"github.com/tifyai/website/internal/logger"
	"github.com/tifyai/website/internal/relay"
	"github.com/tifyai/website/internal/repository"
	"github.com/tifyai/website/internal/server"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cmd, err := newCommand()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() (*cobra.Command, error) {
	v := viper.New()
	cmd := &cobra.Command{
		Use:           "tify-server",
		Short:         "Serve the Tify website API",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, cfg)
		},
	}
	if err := config.BindFlags(cmd.Flags(), v); err != nil {
		return nil, err
	}
	return cmd, nil
}

func run(ctx context.Context, cfg config.Config) error {
	log, err := logger.Config{Format: cfg.LogFormat, Level: cfg.LogLevel}.New(os.Stdout)
	if err != nil {
		return err
	}
	defer log.Sync()

	// Initialize the entity store
	db, err := database.New(cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	seed := database.DefaultSeed()
	if err := database.Seed(ctx, db, seed); err != nil {
		return err
	}
	log.Info("Entity store seeded",
		zap.Int("blog_posts", len(seed.BlogPosts)),
		zap.Int("courses", len(seed.Courses)),
		zap.Int("products", len(seed.Products)),
		zap.Int("testimonials", len(seed.Testimonials)),
		zap.Int("team_members", len(seed.TeamMembers)),
	)

	repo := repository.New(db)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	relayClient := relay.NewClient(relay.Config{
		URL:        cfg.WebhookURL,
		AuthHeader: cfg.WebhookAuthHeader,
		Timeout:    cfg.RelayTimeout,
	}, &http.Client{}, log.With(zap.String("component", "chat_relay")), reg)
	if !cfg.RelayConfigured() {
		log.Warn("Chat webhook not configured, chat messages will only get the fallback reply")
	}

	h := server.NewHandler(server.Options{
		Catalog:     catalog.New(repo),
		Relay:       relayClient,
		Health:      repo.Ping,
		Logger:      log,
		Registry:    reg,
		CORSOrigins: cfg.CORSOrigins,
	})

	return server.Run(ctx, cfg.HTTPAddr, h, server.Timeouts{
		Write:    cfg.WriteTimeout,
		Shutdown: cfg.ShutdownTimeout,
	}, log)
}
