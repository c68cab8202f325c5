package plantdb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"energymap.ch/internal/energy"
	"energymap.ch/internal/logging"
	"energymap.ch/internal/models"
)

// InsertPlantBatch replaces the plant table with records. The row id is the
// record's position in the input.
func InsertPlantBatch(ctx context.Context, db *sql.DB, records []energy.PlantRecord, logger *slog.Logger) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer logging.SafeRollbackWithLogging(tx, logger, "insert_plants")

	if _, err := tx.ExecContext(ctx, "DELETE FROM plants"); err != nil {
		return fmt.Errorf("error clearing plants: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO plants (
			id, source, electrical_capacity, lon, lat, municipality,
			canton_code, canton_name, commissioning_date, contract_period_end
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for i, record := range records {
		var lon, lat sql.NullFloat64
		if record.HasLocation {
			lon = sql.NullFloat64{Float64: record.Lon, Valid: true}
			lat = sql.NullFloat64{Float64: record.Lat, Valid: true}
		}
		_, err := stmt.ExecContext(ctx,
			i, string(record.Source), record.Capacity, lon, lat, record.Municipality,
			record.CantonCode, record.CantonName,
			nullDate(record.CommissioningDate), nullDate(record.ContractPeriodEnd),
		)
		if err != nil {
			return fmt.Errorf("error inserting plant %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

func nullDate(t time.Time) sql.NullString {
	if t.IsZero() {
		return sql.NullString{}
	}
	return sql.NullString{String: t.Format(models.DateLayout), Valid: true}
}
