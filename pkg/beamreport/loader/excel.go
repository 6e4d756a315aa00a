// Package loader reads beam sample data from an Excel workbook.
package loader

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/fossee/beamreport-go/pkg/beamreport/models"
)

// ErrSourceNotFound indicates the input workbook does not exist.
var ErrSourceNotFound = errors.New("input file not found")

// ErrMissingColumn indicates a required header column is absent.
var ErrMissingColumn = errors.New("required column missing")

// ErrEmptyTable indicates the workbook holds no data rows.
var ErrEmptyTable = errors.New("no data rows")

// Required header names, matched case-insensitively after trimming.
const (
	ColumnPosition = "x"
	ColumnShear    = "Shear force"
	ColumnMoment   = "Bending Moment"
)

// Load reads the first sheet of the workbook at path and returns the
// validated dataset. Loading is all-or-nothing: any schema or parse
// problem fails the whole load.
func Load(path string) (*models.Dataset, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyTable
	}
	sheetName := sheets[0]

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}

	headerIdx, cols, err := findHeader(rows)
	if err != nil {
		return nil, err
	}

	var samples []models.Sample
	for rowIdx := headerIdx + 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		if isEmptyRow(row) {
			continue
		}

		s := models.Sample{}
		for _, field := range []struct {
			col  int
			name string
			dst  *float64
		}{
			{cols.position, ColumnPosition, &s.Position},
			{cols.shear, ColumnShear, &s.Shear},
			{cols.moment, ColumnMoment, &s.Moment},
		} {
			v, err := cellFloat(row, field.col)
			if err != nil {
				cellName, _ := excelize.CoordinatesToCellName(field.col+1, rowIdx+1)
				return nil, fmt.Errorf("non-numeric %s value in cell %s: %w", field.name, cellName, err)
			}
			*field.dst = v
		}
		samples = append(samples, s)
	}

	if len(samples) == 0 {
		return nil, fmt.Errorf("%w in sheet %q", ErrEmptyTable, sheetName)
	}

	return models.NewDataset(samples)
}

// columnIndexes holds the zero-based column of each required header.
type columnIndexes struct {
	position int
	shear    int
	moment   int
}

// findHeader locates the header row: the first non-empty row. It must
// contain all three required columns.
func findHeader(rows [][]string) (int, columnIndexes, error) {
	for rowIdx, row := range rows {
		if isEmptyRow(row) {
			continue
		}

		cols := columnIndexes{position: -1, shear: -1, moment: -1}
		for colIdx, cell := range row {
			switch normalizeHeader(cell) {
			case normalizeHeader(ColumnPosition):
				cols.position = colIdx
			case normalizeHeader(ColumnShear):
				cols.shear = colIdx
			case normalizeHeader(ColumnMoment):
				cols.moment = colIdx
			}
		}

		var missing []string
		if cols.position < 0 {
			missing = append(missing, ColumnPosition)
		}
		if cols.shear < 0 {
			missing = append(missing, ColumnShear)
		}
		if cols.moment < 0 {
			missing = append(missing, ColumnMoment)
		}
		if len(missing) > 0 {
			return 0, columnIndexes{}, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
		}
		return rowIdx, cols, nil
	}

	return 0, columnIndexes{}, ErrEmptyTable
}

func normalizeHeader(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// cellFloat parses the cell at col as a float. Cells beyond the row's
// trailing-empty truncation count as empty.
func cellFloat(row []string, col int) (float64, error) {
	if col >= len(row) {
		return 0, fmt.Errorf("empty cell")
	}
	raw := strings.TrimSpace(row[col])
	if raw == "" {
		return 0, fmt.Errorf("empty cell")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", raw)
	}
	return v, nil
}
