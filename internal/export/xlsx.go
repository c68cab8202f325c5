package export

import (
	"fmt"
	"io"
	"strings"

	"energymap.ch/internal/models"
	"github.com/xuri/excelize/v2"
)

// ContentType is the media type of the workbook written by WritePlantsXLSX.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const defaultSheet = "Sheet1"

var plantHeaders = []string{
	"Energy Source",
	"Electrical Capacity",
	"Longitude",
	"Latitude",
	"Municipality",
	"Canton",
	"Canton Code",
	"Commissioning Date",
	"Contract Period End",
}

var columnWidths = []float64{16, 20, 12, 12, 24, 22, 12, 20, 20}

// SheetName derives a valid worksheet name from a canton name.
func SheetName(canton string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, strings.TrimSpace(canton))
	if name == "" {
		return "Plants"
	}
	if runes := []rune(name); len(runes) > 31 {
		name = string(runes[:31])
	}
	return name
}

// WritePlantsXLSX writes the plant rows of one canton as a workbook with a
// frozen, bold header row.
func WritePlantsXLSX(w io.Writer, canton string, rows []models.PlantRow) (err error) {
	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	sheet := SheetName(canton)
	if err := f.SetSheetName(defaultSheet, sheet); err != nil {
		return fmt.Errorf("error naming sheet: %w", err)
	}
	if err := f.SetDocProps(&excelize.DocProperties{
		Title:   fmt.Sprintf("Renewable power plants in %s", canton),
		Creator: "energymap",
	}); err != nil {
		return fmt.Errorf("error setting document properties: %w", err)
	}

	if err := writeHeader(f, sheet); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &[]interface{}{
			row.Source,
			row.ElectricalCapacity,
			optionalFloat(row.Lon),
			optionalFloat(row.Lat),
			row.Municipality,
			row.Canton,
			row.CantonCode,
			row.CommissioningDate,
			row.ContractPeriodEnd,
		}); err != nil {
			return fmt.Errorf("error writing row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("error writing workbook: %w", err)
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string) error {
	header := make([]interface{}, len(plantHeaders))
	for i, h := range plantHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("error writing header: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#DDEBF7"}},
	})
	if err != nil {
		return fmt.Errorf("error creating header style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(plantHeaders), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return fmt.Errorf("error styling header: %w", err)
	}

	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return fmt.Errorf("error setting column width: %w", err)
		}
	}

	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

// optionalFloat leaves the cell empty for missing coordinates.
func optionalFloat(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
