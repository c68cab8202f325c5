package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"energymap.ch/internal/app"
	"energymap.ch/internal/appconf"
	"energymap.ch/internal/energy"
	"energymap.ch/internal/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, dataConfig, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	logger := logging.NewStructuredLogger(os.Stdout, logging.LevelFor(cfg.Verbose))
	slog.SetDefault(logger)

	if err := run(cfg, dataConfig, logger); err != nil {
		logging.LogError(logger, "server stopped", err, slog.String("component", "main"))
		os.Exit(1)
	}
}

// parseFlags reads the command line into the server and data configuration.
func parseFlags(args []string, output io.Writer) (appconf.Config, energy.DataConfig, error) {
	var cfg appconf.Config
	var dataConfig energy.DataConfig
	var env, trustedProxies string

	fs := flag.NewFlagSet("energymap", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&cfg.Port, "port", 4000, "API server port")
	fs.StringVar(&env, "env", "development", "Environment (development|test|production)")
	fs.IntVar(&cfg.RateLimit, "rate-limit", 100, "Requests per second per client, 0 disables limiting")
	fs.StringVar(&cfg.DBPath, "db-path", ":memory:", "SQLite file for the plant table")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Log debug messages")
	fs.StringVar(&trustedProxies, "trusted-proxies", "", "Comma-separated proxy addresses whose X-Forwarded-For header is honoured")
	fs.StringVar(&dataConfig.PlantsPath, "plants", "data/renewable_power_plants_CH.csv", "CSV file of renewable power plants")
	fs.StringVar(&dataConfig.CantonsPath, "cantons", "data/georef-switzerland-kanton.geojson", "GeoJSON file of canton boundaries")
	fs.StringVar(&dataConfig.CantonKey, "canton-key", energy.DefaultCantonKey, "GeoJSON feature property holding the canton name")
	if err := fs.Parse(args); err != nil {
		return cfg, dataConfig, err
	}

	cfg.Env = appconf.EnvFlagToEnvironment(env)
	cfg.TrustedProxies = splitList(trustedProxies)
	return cfg, dataConfig, nil
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// run loads the data and serves HTTP until SIGINT or SIGTERM.
func run(cfg appconf.Config, dataConfig energy.DataConfig, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, dataConfig, logger)
	if err != nil {
		return err
	}
	defer logging.SafeCloseWithLogging(application, logger, "application")

	handler, api := routes(application)
	defer api.Shutdown()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serveErr := make(chan error, 1)
	go func() {
		logging.LogOperation(logger, "starting server",
			slog.String("addr", srv.Addr),
			slog.String("env", cfg.Env.String()),
			slog.String("component", "main"))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logging.LogOperation(logger, "shutting down server", slog.String("component", "main"))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	return nil
}
