package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"soscrise/internal/config"
	"soscrise/internal/database"
	"soscrise/internal/database/migration"
	"soscrise/internal/logger"
	"soscrise/internal/otel"
	"soscrise/internal/repository/postgres"
	"soscrise/internal/service"
)

const shutdownTimeout = 10 * time.Second

var rootCmd = &cobra.Command{
	Use:          "soscrise",
	Short:        "SOS Crise public information API",
	Long:         "Serves alerts, news, support points, organizations, supply needs, volunteer opportunities and preparedness guides as read-only JSON.",
	SilenceUsage: true,
	RunE:         runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API (default)",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the database schema if it is missing, then exit",
	RunE:  runMigrate,
}

var flags struct {
	port    string
	migrate bool
}

func init() {
	for _, cmd := range []*cobra.Command{rootCmd, serveCmd} {
		cmd.Flags().StringVar(&flags.port, "port", "", "listen port (overrides PORT)")
		cmd.Flags().BoolVar(&flags.migrate, "migrate", false, "run schema migration before serving (overrides DB_AUTO_MIGRATE)")
	}
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

// @title SOS Crise API
// @version 1.0.0
// @description Read-only public information for people affected by a crisis.
// @BasePath /
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap loads configuration and builds the logger shared by every command.
func bootstrap() (*config.AppConfig, *zap.Logger) {
	cfg := config.Load()
	if flags.port != "" {
		cfg.Port = flags.port
	}
	if flags.migrate {
		cfg.Database.AutoMigrate = true
	}
	return cfg, logger.New(cfg.LogLevel, logger.LoadLocation(cfg.Timezone))
}

func openDatabase(ctx context.Context, cfg *config.AppConfig, log *zap.Logger) (*sql.DB, error) {
	db, err := database.NewPostgres(ctx, cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return db, nil
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, log := bootstrap()
	defer func() { _ = log.Sync() }()

	db, err := openDatabase(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	defer db.Close()

	return migration.EnsureMigrated(cmd.Context(), db, log, cfg.Database.Host)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log := bootstrap()
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Warn("tracing_shutdown_failed", zap.Error(err))
		}
	}()

	db, err := openDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
			return err
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	svc := service.NewInfoService(postgres.NewRepositories(db))

	app, err := newApp(appDeps{
		Config:   cfg,
		DB:       db,
		Service:  svc,
		Log:      log,
		Registry: reg,
	})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Port
		log.Info("server_started", zap.String("addr", addr), zap.Strings("cors_origins", cfg.CORSOrigins))
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("server_stopping")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("shutdown server: %w", err)
	}
	log.Info("server_stopped")
	return nil
}
