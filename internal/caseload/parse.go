// Package caseload ingests case tables and holds a session's case registry.
package caseload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"

	"github.com/osse101/CaseAssign_Go/internal/domain"
)

// RowError describes why a case table was rejected. Row 1 is the header.
type RowError struct {
	Row    int
	Column string
	Reason string
}

func (e *RowError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("%s: row %d: %s", domain.ErrMsgInvalidCSV, e.Row, e.Reason)
	}
	return fmt.Sprintf("%s: row %d: %s: %s", domain.ErrMsgInvalidCSV, e.Row, e.Column, e.Reason)
}

// Unwrap lets errors.Is match domain.ErrInvalidCSV
func (e *RowError) Unwrap() error {
	return domain.ErrInvalidCSV
}

type caseRow struct {
	CaseID      int    `validate:"gt=0"`
	Type        string `validate:"max=64"`
	Region      string `validate:"max=64"`
	Priority    string `validate:"max=32"`
	Points      int    `validate:"gte=0,lte=1000000"`
	DateFiled   string `validate:"max=32"`
	Description string `validate:"max=2000"`
}

var rowValidator = validator.New()

// Parse reads a pasted case table. Under IngestStrict every column must be
// present and every numeric field must parse; under IngestLenient missing
// columns and empty fields default to zero values. A malformed value or a
// duplicate Case_ID rejects the whole table under either policy.
func Parse(text string, policy domain.IngestPolicy) ([]domain.Case, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &RowError{Row: 1, Reason: ReasonEmptyTable}
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextReadHeader, &RowError{Row: 1, Reason: err.Error()})
	}

	index, err := headerIndex(header, policy)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]struct{})
	var out []domain.Case

	for rowNum := 2; ; rowNum++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextReadRow, &RowError{Row: rowNum, Reason: ReasonMalformedRow})
		}
		if isBlank(record) {
			continue
		}

		row, err := decodeRow(record, index, policy, rowNum)
		if err != nil {
			return nil, err
		}
		if err := rowValidator.Struct(row); err != nil {
			return nil, validationRowError(err, rowNum)
		}
		if _, dup := seen[row.CaseID]; dup {
			return nil, &RowError{Row: rowNum, Column: ColumnCaseID, Reason: ReasonDuplicateID}
		}
		seen[row.CaseID] = struct{}{}

		c := domain.NewCase(row.CaseID, row.Points)
		c.Type = row.Type
		c.Region = row.Region
		c.Priority = row.Priority
		c.DateFiled = row.DateFiled
		c.Description = row.Description
		out = append(out, c)
	}

	return out, nil
}

// headerIndex maps each known column to its position. Header names match
// case-insensitively; unknown columns are ignored.
func headerIndex(header []string, policy domain.IngestPolicy) (map[string]int, error) {
	fold := cases.Fold()
	known := make(map[string]string, len(Columns))
	for _, col := range Columns {
		known[fold.String(col)] = col
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if col, ok := known[fold.String(name)]; ok {
			if _, dup := index[col]; dup {
				return nil, &RowError{Row: 1, Column: col, Reason: ReasonDuplicateColumn}
			}
			index[col] = i
		}
	}

	for _, col := range Columns {
		if _, ok := index[col]; ok {
			continue
		}
		if col == ColumnCaseID || policy == domain.IngestStrict {
			return nil, &RowError{Row: 1, Column: col, Reason: ReasonMissingColumn}
		}
	}
	return index, nil
}

func decodeRow(record []string, index map[string]int, policy domain.IngestPolicy, rowNum int) (caseRow, error) {
	field := func(col string) (string, bool) {
		i, ok := index[col]
		if !ok || i >= len(record) {
			return "", false
		}
		return strings.TrimSpace(record[i]), true
	}

	var row caseRow

	id, err := intField(field, ColumnCaseID, true, rowNum)
	if err != nil {
		return row, err
	}
	row.CaseID = id

	row.Points, err = intField(field, ColumnPoints, policy == domain.IngestStrict, rowNum)
	if err != nil {
		return row, err
	}

	for _, col := range []string{ColumnCaseType, ColumnRegion, ColumnPriority, ColumnDateFiled, ColumnDescription} {
		v, ok := field(col)
		if !ok && policy == domain.IngestStrict {
			return row, &RowError{Row: rowNum, Column: col, Reason: ReasonMissingValue}
		}
		switch col {
		case ColumnCaseType:
			row.Type = v
		case ColumnRegion:
			row.Region = v
		case ColumnPriority:
			row.Priority = v
		case ColumnDateFiled:
			row.DateFiled = v
		case ColumnDescription:
			row.Description = v
		}
	}

	return row, nil
}

func intField(field func(string) (string, bool), col string, required bool, rowNum int) (int, error) {
	v, ok := field(col)
	if !ok || v == "" {
		if required {
			return 0, &RowError{Row: rowNum, Column: col, Reason: ReasonMissingValue}
		}
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, &RowError{Row: rowNum, Column: col, Reason: ReasonNotInteger}
	}
	return n, nil
}

func validationRowError(err error, rowNum int) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		return &RowError{Row: rowNum, Column: columnFor(validationErrors[0].Field()), Reason: ReasonInvalidValue}
	}
	return &RowError{Row: rowNum, Reason: ReasonInvalidValue}
}

func columnFor(field string) string {
	switch field {
	case "CaseID":
		return ColumnCaseID
	case "Type":
		return ColumnCaseType
	case "Region":
		return ColumnRegion
	case "Priority":
		return ColumnPriority
	case "Points":
		return ColumnPoints
	case "DateFiled":
		return ColumnDateFiled
	default:
		return ColumnDescription
	}
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
