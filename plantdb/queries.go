package plantdb

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"energymap.ch/internal/models"
)

// Sort keys accepted by PlantsInCanton. A leading "-" sorts descending.
const (
	SortLoadOrder     = "order"
	SortCapacity      = "capacity"
	SortSource        = "source"
	SortMunicipality  = "municipality"
	SortCommissioning = "commissioning"
)

var sortColumns = map[string]string{
	SortLoadOrder:     "id",
	SortCapacity:      "electrical_capacity",
	SortSource:        "source",
	SortMunicipality:  "municipality",
	SortCommissioning: "commissioning_date",
}

// SortKeys lists the accepted sort keys without direction prefix.
func SortKeys() []string {
	return []string{SortLoadOrder, SortCapacity, SortSource, SortMunicipality, SortCommissioning}
}

// PlantQuery selects one page of a canton's plants.
type PlantQuery struct {
	Canton string
	Sort   string
	Limit  int
	Offset int
}

// orderClause turns a sort key into an ORDER BY clause. Ties keep load order.
func orderClause(sort string) (string, error) {
	direction := "ASC"
	key := sort
	if strings.HasPrefix(key, "-") {
		direction = "DESC"
		key = key[1:]
	}
	if key == "" {
		key = SortLoadOrder
	}
	column, ok := sortColumns[key]
	if !ok {
		return "", fmt.Errorf("unknown sort key %q", sort)
	}
	if column == "id" {
		return "ORDER BY id " + direction, nil
	}
	return fmt.Sprintf("ORDER BY %s %s, id ASC", column, direction), nil
}

// CountPlantsInCanton returns the number of plants of a canton.
func (c *Client) CountPlantsInCanton(ctx context.Context, canton string) (int, error) {
	var count int
	err := c.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM plants WHERE canton_name = ?", canton).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting plants: %w", err)
	}
	return count, nil
}

// PlantsInCanton returns one page of a canton's plants.
func (c *Client) PlantsInCanton(ctx context.Context, query PlantQuery) ([]models.PlantRow, error) {
	order, err := orderClause(query.Sort)
	if err != nil {
		return nil, err
	}

	stmt := `
		SELECT source, electrical_capacity, lon, lat, municipality,
			canton_name, canton_code, commissioning_date, contract_period_end
		FROM plants
		WHERE canton_name = ?
		` + order + `
		LIMIT ? OFFSET ?`

	limit := query.Limit
	if limit <= 0 {
		limit = -1
	}

	rows, err := c.DB.QueryContext(ctx, stmt, query.Canton, limit, query.Offset)
	if err != nil {
		return nil, fmt.Errorf("error querying plants: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	plants := []models.PlantRow{}
	for rows.Next() {
		row, err := scanPlantRow(rows)
		if err != nil {
			return nil, err
		}
		plants = append(plants, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading plants: %w", err)
	}
	return plants, nil
}

// SourceTotals returns total capacity and plant count per source, the same
// numbers as the overview, computed by SQLite.
func (c *Client) SourceTotals(ctx context.Context) ([]models.SourceSummary, error) {
	rows, err := c.DB.QueryContext(ctx, `
		SELECT source, SUM(electrical_capacity), COUNT(*)
		FROM plants
		GROUP BY source
		ORDER BY source`)
	if err != nil {
		return nil, fmt.Errorf("error querying source totals: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	totals := []models.SourceSummary{}
	for rows.Next() {
		var summary models.SourceSummary
		if err := rows.Scan(&summary.Source, &summary.TotalCapacity, &summary.PlantCount); err != nil {
			return nil, fmt.Errorf("error scanning source totals: %w", err)
		}
		totals = append(totals, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading source totals: %w", err)
	}
	return totals, nil
}

func scanPlantRow(rows *sql.Rows) (models.PlantRow, error) {
	var (
		row                   models.PlantRow
		lon, lat              sql.NullFloat64
		commissioning, period sql.NullString
	)
	err := rows.Scan(
		&row.Source, &row.ElectricalCapacity, &lon, &lat, &row.Municipality,
		&row.Canton, &row.CantonCode, &commissioning, &period,
	)
	if err != nil {
		return row, fmt.Errorf("error scanning plant: %w", err)
	}
	if lon.Valid && lat.Valid {
		row.Lon, row.Lat = &lon.Float64, &lat.Float64
	}
	row.CommissioningDate = commissioning.String
	row.ContractPeriodEnd = period.String
	return row, nil
}
