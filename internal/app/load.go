package app

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"energymap.ch/internal/appconf"
	"energymap.ch/internal/energy"
	"energymap.ch/internal/logging"
	"energymap.ch/plantdb"
)

// New loads the dataset, mirrors it into the plant table and returns the
// ready Application. Any load failure is returned unchanged so the caller
// can stop the process.
func New(ctx context.Context, config appconf.Config, dataConfig energy.DataConfig, logger *slog.Logger) (*Application, error) {
	if logger == nil {
		logger = slog.Default()
	}

	start := time.Now()
	ds, err := energy.LoadDataset(dataConfig)
	if err != nil {
		return nil, err
	}
	logging.LogOperation(logger, "dataset_loaded",
		slog.String("plants_file", dataConfig.PlantsPath),
		slog.String("cantons_file", dataConfig.CantonsPath),
		slog.Int("plants", len(ds.Records)),
		slog.Int("cantons", len(ds.CantonNames())),
		slog.Int("canton_boundaries", len(ds.Geometry)),
		slog.Duration("duration", time.Since(start)),
		slog.String("component", "loader"))
	LogLoadReport(logger, ds)

	dbPath := config.DBPath
	if dbPath == "" {
		dbPath = ":memory:"
	}
	client, err := plantdb.NewClient(ctx, plantdb.NewConfig(dbPath, config.Env, config.Verbose), logger)
	if err != nil {
		return nil, fmt.Errorf("error creating plant table: %w", err)
	}
	if err := client.ImportRecords(ctx, ds.Records); err != nil {
		logging.SafeCloseWithLogging(client, logger, "plant_table")
		return nil, fmt.Errorf("error importing plant table: %w", err)
	}

	return &Application{
		Config:     config,
		DataConfig: dataConfig,
		Logger:     logger,
		Dataset:    ds,
		PlantDB:    client,
	}, nil
}

// LogLoadReport warns about records that cannot appear in every view.
func LogLoadReport(logger *slog.Logger, ds *energy.Dataset) {
	report := ds.Report

	if unresolved := report.UnresolvedRows(); unresolved > 0 {
		codes := make([]string, 0, len(report.UnresolvedCantons))
		for code := range report.UnresolvedCantons {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		logging.LogWarning(logger, "plants with unknown canton code are left out of canton views",
			slog.Int("records", unresolved),
			slog.Any("codes", codes),
			slog.String("component", "loader"))
	}

	if report.WithoutLocation > 0 {
		logging.LogWarning(logger, "plants without coordinates are left out of canton maps",
			slog.Int("records", report.WithoutLocation),
			slog.String("component", "loader"))
	}

	if report.InvalidDates > 0 {
		logging.LogWarning(logger, "unparseable dates were left empty",
			slog.Int("fields", report.InvalidDates),
			slog.String("component", "loader"))
	}

	if missing := ds.MissingGeometry(); len(missing) > 0 {
		logging.LogWarning(logger, "cantons without boundary geometry",
			slog.Any("cantons", missing),
			slog.String("component", "loader"))
	}
}
