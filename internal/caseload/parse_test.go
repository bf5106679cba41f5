package caseload

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CaseAssign_Go/internal/domain"
)

const header = "Case_ID,Case_Type,Region,Priority,Points,Date_Filled,Description\n"

func TestParse_Strict(t *testing.T) {
	text := header +
		"1,civil,north east,high,5,2024-01-02,Contract dispute\n" +
		"2,criminal,south,low,8,2024-02-03,\"Theft, petty\"\n"

	got, err := Parse(text, domain.IngestStrict)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, "civil", got[0].Type)
	assert.Equal(t, "north east", got[0].Region)
	assert.Equal(t, "high", got[0].Priority)
	assert.Equal(t, 5, got[0].Points)
	assert.Equal(t, "2024-01-02", got[0].DateFiled)
	assert.Equal(t, domain.CaseStatusUnassigned, got[0].Status)
	assert.Nil(t, got[0].OwnerID)

	assert.Equal(t, "Theft, petty", got[1].Description)
}

func TestParse_KeepsDescriptiveFieldsVerbatim(t *testing.T) {
	text := header + "1, DUI ,NYC,P1-HIGH,5,2024-01-02,McDonald v. O'Brien\n"

	got, err := Parse(text, domain.IngestStrict)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, "DUI", got[0].Type)
	assert.Equal(t, "NYC", got[0].Region)
	assert.Equal(t, "P1-HIGH", got[0].Priority)
	assert.Equal(t, "McDonald v. O'Brien", got[0].Description)
}

func TestParse_HeaderNamesIgnoreCase(t *testing.T) {
	text := "case_id,CASE_TYPE,region,priority,POINTS,date_filled,description,Notes\n" +
		"1,civil,north,high,5,2024-01-02,x,ignored\n"

	got, err := Parse(text, domain.IngestStrict)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 5, got[0].Points)
	assert.Equal(t, "civil", got[0].Type)

	_, err = Parse("Case_ID,case_id\n1,2\n", domain.IngestLenient)
	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, ReasonDuplicateColumn, rowErr.Reason)
}

func TestParse_SkipsBlankLinesAndReordersColumns(t *testing.T) {
	text := "Points,Case_ID,Case_Type,Region,Priority,Date_Filled,Description\n" +
		"3,10,family,west,medium,2024-05-05,Custody\n" +
		",,,,,,\n" +
		"4,11,family,west,medium,2024-05-06,Custody\n"

	got, err := Parse(text, domain.IngestStrict)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 10, got[0].ID)
	assert.Equal(t, 3, got[0].Points)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		policy domain.IngestPolicy
		row    int
		column string
		reason string
	}{
		{"empty", "", domain.IngestStrict, 1, "", ReasonEmptyTable},
		{"missing column strict", "Case_ID,Points\n1,2\n", domain.IngestStrict, 1, ColumnCaseType, ReasonMissingColumn},
		{"missing case id column lenient", "Points\n2\n", domain.IngestLenient, 1, ColumnCaseID, ReasonMissingColumn},
		{"missing points strict", header + "1,civil,n,high,,2024-01-01,x\n", domain.IngestStrict, 2, ColumnPoints, ReasonMissingValue},
		{"non numeric points", header + "1,civil,n,high,five,2024-01-01,x\n", domain.IngestLenient, 2, ColumnPoints, ReasonNotInteger},
		{"non numeric id", header + "x,civil,n,high,5,2024-01-01,x\n", domain.IngestLenient, 2, ColumnCaseID, ReasonNotInteger},
		{"missing id", header + ",civil,n,high,5,2024-01-01,x\n", domain.IngestLenient, 2, ColumnCaseID, ReasonMissingValue},
		{"zero id", header + "0,civil,n,high,5,2024-01-01,x\n", domain.IngestStrict, 2, ColumnCaseID, ReasonInvalidValue},
		{"negative points", header + "1,civil,n,high,-2,2024-01-01,x\n", domain.IngestStrict, 2, ColumnPoints, ReasonInvalidValue},
		{"duplicate id", header + "1,a,b,c,1,d,e\n1,a,b,c,2,d,e\n", domain.IngestStrict, 3, ColumnCaseID, ReasonDuplicateID},
		{"short row strict", header + "1,civil,n,high,5\n", domain.IngestStrict, 2, ColumnDateFiled, ReasonMissingValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.text, tt.policy)
			require.Error(t, err)
			assert.Nil(t, got, "no partial commit")
			assert.ErrorIs(t, err, domain.ErrInvalidCSV)

			var rowErr *RowError
			require.True(t, errors.As(err, &rowErr))
			assert.Equal(t, tt.row, rowErr.Row)
			assert.Equal(t, tt.column, rowErr.Column)
			assert.Equal(t, tt.reason, rowErr.Reason)
		})
	}
}

func TestParse_LenientDefaults(t *testing.T) {
	text := "Case_ID,Case_Type\n" +
		"1,civil\n" +
		"2\n"

	got, err := Parse(text, domain.IngestLenient)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, 0, got[0].Points)
	assert.Equal(t, "civil", got[0].Type)
	assert.Equal(t, "", got[1].Type)
	assert.Equal(t, "", got[1].Region)
}
