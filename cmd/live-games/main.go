// Package main provides the entry point for the live-games analysis daemon.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/value-hunter/internal/config"
	"github.com/yourusername/value-hunter/internal/database"
	"github.com/yourusername/value-hunter/internal/engine"
	"github.com/yourusername/value-hunter/internal/health"
	"github.com/yourusername/value-hunter/internal/logger"
	"github.com/yourusername/value-hunter/internal/metrics"
	"github.com/yourusername/value-hunter/internal/oddsfeed"
	"github.com/yourusername/value-hunter/internal/repository"
	"github.com/yourusername/value-hunter/internal/scheduler"
	"github.com/yourusername/value-hunter/internal/service"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
)

var (
	configFile string
	demoMode   bool
	once       bool
)

var recentLimit int

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	rootCmd.PersistentFlags().BoolVarP(&demoMode, "demo", "d", false, "Use demo fixtures instead of the live odds feed")
	rootCmd.PersistentFlags().BoolVar(&once, "once", false, "Run one batch and exit instead of starting the scheduler")
	recentCmd.Flags().IntVarP(&recentLimit, "limit", "n", 10, "Number of analyses to show")
	rootCmd.AddCommand(recentCmd)
}

var rootCmd = &cobra.Command{
	Use:   "live-games",
	Short: "Analyse live games for value betting opportunities",
	Long:  `Fetches live games from the configured odds feed, runs each through the valuation engine and reports games whose odds are priced above the estimated probability.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show the most recently persisted analyses",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRecent()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func runRecent() error {
	cfg, err := config.LoadWithDefaults(configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if !cfg.Features.PersistenceEnabled {
		return fmt.Errorf("persistence is disabled; no analysis history to show")
	}

	appLog := logger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)

	params, err := engine.FromConfig(&cfg.Engine)
	if err != nil {
		return fmt.Errorf("invalid engine configuration: %w", err)
	}
	eng, err := engine.New(params)
	if err != nil {
		return fmt.Errorf("invalid engine configuration: %w", err)
	}

	ctx := context.Background()
	db, err := database.Initialize(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	repos, err := repository.NewRepositories(db)
	if err != nil {
		return fmt.Errorf("failed to create repositories: %w", err)
	}

	source := oddsfeed.NewSourceFromConfig(cfg, appLog)
	defer closeSource(source, appLog)

	analyzerSvc := service.NewAnalyzerService(eng, source, repos, appLog, service.AnalyzerConfig{
		BatchLimit:     cfg.Analysis.BatchLimit,
		PersistResults: cfg.Analysis.PersistResults,
	})

	analyses, err := analyzerSvc.RecentAnalyses(ctx, recentLimit)
	if err != nil {
		return fmt.Errorf("failed to fetch recent analyses: %w", err)
	}
	if len(analyses) == 0 {
		fmt.Println("No analyses recorded yet.")
		return nil
	}
	for _, analysis := range analyses {
		fmt.Println(analysis.Summary())
	}
	return nil
}

func run() error {
	cfg, err := config.LoadWithDefaults(configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if demoMode {
		cfg.Analysis.DemoMode = true
	}

	// Load AWS secrets if enabled
	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			return fmt.Errorf("AWS_REGION and AWS_SECRET_NAME must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
			return fmt.Errorf("failed to load secrets: %w", err)
		}
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	appLog := logger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)
	appLog.WithFields(logrus.Fields{
		"environment": cfg.App.Environment,
		"version":     Version,
		"commit":      GitCommit,
		"demo_mode":   cfg.Analysis.DemoMode,
	}).Info("Value Hunter live-games analyzer starting")

	params, err := engine.FromConfig(&cfg.Engine)
	if err != nil {
		return fmt.Errorf("invalid engine configuration: %w", err)
	}
	eng, err := engine.New(params)
	if err != nil {
		return fmt.Errorf("invalid engine configuration: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Persistence is optional; a missing database only disables history
	var (
		db    *database.DB
		repos *repository.Repositories
	)
	if cfg.Features.PersistenceEnabled {
		db, err = database.Initialize(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer db.Close()

		repos, err = repository.NewRepositories(db)
		if err != nil {
			return fmt.Errorf("failed to create repositories: %w", err)
		}
		appLog.Info("Database connection established")
	}

	source := oddsfeed.NewSourceFromConfig(cfg, appLog)
	defer closeSource(source, appLog)
	appLog.WithField("source", source.Name()).Info("Odds source initialized")

	analyzerSvc := service.NewAnalyzerService(eng, source, repos, appLog, service.AnalyzerConfig{
		BatchLimit:     cfg.Analysis.BatchLimit,
		PersistResults: cfg.Analysis.PersistResults,
	})

	if once || !cfg.Features.SchedulerEnabled {
		return runOnce(ctx, analyzerSvc)
	}

	return runDaemon(ctx, cfg, analyzerSvc, db, source, appLog)
}

// runOnce executes a single batch and prints the summary report
func runOnce(ctx context.Context, analyzerSvc *service.AnalyzerService) error {
	result, err := analyzerSvc.AnalyzeLiveGames(ctx)
	if err != nil {
		return fmt.Errorf("live-games analysis failed: %w", err)
	}

	fmt.Println(service.SummaryReport(result))
	return nil
}

// runDaemon starts the scheduler plus the metrics and health servers and
// blocks until a shutdown signal arrives
func runDaemon(
	ctx context.Context,
	cfg *config.Config,
	analyzerSvc *service.AnalyzerService,
	db *database.DB,
	source oddsfeed.GameSource,
	appLog *logrus.Logger,
) error {
	sched := scheduler.NewScheduler(analyzerSvc, appLog)
	if err := sched.ScheduleLivePolling(cfg.OddsFeed.PollIntervalSeconds); err != nil {
		return fmt.Errorf("failed to schedule live polling: %w", err)
	}
	if err := sched.Start(); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	defer sched.Stop()

	var metricsServer *http.Server
	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
		mux := http.NewServeMux()
		mux.Handle(cfg.Metrics.Path, metrics.Handler())
		metricsServer = &http.Server{
			Addr:    ":" + strconv.Itoa(cfg.Metrics.Port),
			Handler: mux,
		}
		go func() {
			appLog.WithField("port", cfg.Metrics.Port).Info("Metrics server starting")
			if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				appLog.WithError(err).Error("Metrics server error")
			}
		}()
	}

	healthServer := health.NewServer(health.Config{
		ServiceName: cfg.App.Name,
		Version:     Version,
		Commit:      GitCommit,
		Logger:      appLog,
		DB:          dbPinger(db),
		Feed:        source,
	})
	if err := healthServer.Start(ctx); err != nil {
		return fmt.Errorf("failed to start health server: %w", err)
	}
	healthServer.SetReady(true)

	appLog.WithField("next_run", sched.GetNextRun()).Info("Analyzer daemon running")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	appLog.WithField("signal", sig).Info("Shutdown signal received")

	healthServer.SetReady(false)

	if metricsServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			appLog.WithError(err).Error("Failed to shut down metrics server")
		}
	}

	return nil
}

// closeSource releases feed resources for sources that hold any.
func closeSource(source oddsfeed.GameSource, appLog *logrus.Logger) {
	if closer, ok := source.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			appLog.WithError(err).Warn("Failed to close odds source")
		}
	}
}

// dbHealth adapts the database to the readiness probe. HealthCheck runs a
// real query rather than a pool ping, so readiness proves the database
// answers statements.
type dbHealth struct {
	db *database.DB
}

func (h dbHealth) Ping(ctx context.Context) error {
	return h.db.HealthCheck(ctx)
}

// dbPinger returns the database as a pinger, or nil when persistence is off.
// A typed nil inside the interface would defeat the health server's nil check.
func dbPinger(db *database.DB) health.DatabasePinger {
	if db == nil {
		return nil
	}
	return dbHealth{db: db}
}
