package plantdb

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"energymap.ch/internal/energy"
	"energymap.ch/internal/logging"
)

// Client is a read-mostly SQLite mirror of the plant table. It is filled
// once at startup and serves the paged table views.
type Client struct {
	config        Config
	DB            *sql.DB
	logger        *slog.Logger
	importRuntime time.Duration
}

// NewClient creates a new Client with the provided configuration
func NewClient(ctx context.Context, config Config, logger *slog.Logger) (*Client, error) {
	db, err := createDB(ctx, config)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	if config.verbose {
		logging.LogOperation(logger, "plant_table_created",
			slog.String("db_path", config.DBPath),
			slog.String("component", "plantdb"))
	}

	return &Client{
		config: config,
		DB:     db,
		logger: logger,
	}, nil
}

func (c *Client) Close() error {
	return c.DB.Close()
}

// ImportRecords replaces the table contents with records, keeping load order.
func (c *Client) ImportRecords(ctx context.Context, records []energy.PlantRecord) error {
	startTime := time.Now()
	defer func() {
		c.importRuntime = time.Since(startTime)

		if c.config.verbose {
			logging.LogOperation(c.logger, "plant_table_imported",
				slog.Int("records", len(records)),
				slog.Duration("duration", c.importRuntime),
				slog.String("component", "plantdb"))
		}
	}()

	return InsertPlantBatch(ctx, c.DB, records, c.logger)
}

// ImportRuntime reports how long the last import took.
func (c *Client) ImportRuntime() time.Duration {
	return c.importRuntime
}
