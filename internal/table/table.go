package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/socialmind-lab/cohortsim/internal/model"
)

// Columns is the fixed column order of the delimited table.
// The order follows the data model's field list and must never change:
// downstream consumers (spreadsheets, notebooks) rely on it.
var Columns = []string{
	"daily_hours",
	"loneliness",
	"depression",
	"anxiety",
	"compare_self",
	"took_break",
	"felt_better",
}

const (
	// DefaultPrecision is the declared decimal precision for continuous
	// columns. Four places keep the file human-readable while staying well
	// below the noise scales of the simulation.
	DefaultPrecision = 4

	// NAMarker is written for the structurally missing felt_better value.
	// An explicit marker rather than an empty field so spreadsheet imports
	// show missingness instead of silently coercing blanks.
	NAMarker = "NA"
)

// Write serializes the cohort to w in the fixed delimited format, rounding
// continuous columns to the given decimal precision.
func Write(w io.Writer, cohort model.Cohort, precision int) error {
	if precision < 0 {
		return ErrInvalidPrecision
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i := range cohort {
		if err := cw.Write(formatRow(&cohort[i], precision)); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush table: %w", err)
	}
	return nil
}

// WriteFile writes the cohort to path, creating parent directories as
// needed. Write failures surface wrapped so callers can report the path.
func WriteFile(path string, cohort model.Cohort, precision int) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create dataset directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create dataset file: %w", err)
	}

	if err := Write(f, cohort, precision); err != nil {
		f.Close()
		return fmt.Errorf("failed to write dataset %s: %w", path, err)
	}
	return f.Close()
}

// Read parses a cohort from r, validating the header against the fixed
// schema. Parse errors carry the one-based data row number.
func Read(r io.Reader) (model.Cohort, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Columns)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: missing header", ErrSchemaMismatch)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	for i, col := range Columns {
		if header[i] != col {
			return nil, fmt.Errorf("%w: column %d is %q, want %q", ErrSchemaMismatch, i, header[i], col)
		}
	}

	var cohort model.Cohort
	for row := 1; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		ind, err := parseRow(record)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		cohort = append(cohort, ind)
	}

	if len(cohort) == 0 {
		return nil, ErrEmptyTable
	}
	return cohort, nil
}

// ReadFile parses a cohort from the file at path.
func ReadFile(path string) (model.Cohort, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided dataset path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	cohort, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}
	return cohort, nil
}

// formatRow renders one individual in column order.
func formatRow(ind *model.Individual, precision int) []string {
	feltBetter := NAMarker
	if ind.FeltBetter != nil {
		feltBetter = formatBool(*ind.FeltBetter)
	}
	return []string{
		strconv.FormatFloat(ind.DailyHours, 'f', precision, 64),
		strconv.FormatFloat(ind.Loneliness, 'f', precision, 64),
		strconv.FormatFloat(ind.Depression, 'f', precision, 64),
		strconv.FormatFloat(ind.Anxiety, 'f', precision, 64),
		formatBool(ind.CompareSelf),
		formatBool(ind.TookBreak),
		feltBetter,
	}
}

// parseRow parses one data row in column order.
func parseRow(record []string) (model.Individual, error) {
	var ind model.Individual
	var err error

	if ind.DailyHours, err = parseFloat("daily_hours", record[0]); err != nil {
		return ind, err
	}
	if ind.Loneliness, err = parseFloat("loneliness", record[1]); err != nil {
		return ind, err
	}
	if ind.Depression, err = parseFloat("depression", record[2]); err != nil {
		return ind, err
	}
	if ind.Anxiety, err = parseFloat("anxiety", record[3]); err != nil {
		return ind, err
	}
	if ind.CompareSelf, err = parseBool("compare_self", record[4]); err != nil {
		return ind, err
	}
	if ind.TookBreak, err = parseBool("took_break", record[5]); err != nil {
		return ind, err
	}

	if record[6] != NAMarker {
		felt, err := parseBool("felt_better", record[6])
		if err != nil {
			return ind, err
		}
		ind.FeltBetter = &felt
	}
	return ind, nil
}

func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func parseFloat(column, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("column %s: invalid number %q", column, s)
	}
	return v, nil
}

func parseBool(column, s string) (bool, error) {
	switch s {
	case "1":
		return true, nil
	case "0":
		return false, nil
	default:
		return false, fmt.Errorf("column %s: invalid boolean %q (want 0 or 1)", column, s)
	}
}
