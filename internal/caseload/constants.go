package caseload

// CSV column names
const (
	ColumnCaseID      = "Case_ID"
	ColumnCaseType    = "Case_Type"
	ColumnRegion      = "Region"
	ColumnPriority    = "Priority"
	ColumnPoints      = "Points"
	ColumnDateFiled   = "Date_Filled"
	ColumnDescription = "Description"
)

// Columns is the header order of an exported case table
var Columns = []string{
	ColumnCaseID,
	ColumnCaseType,
	ColumnRegion,
	ColumnPriority,
	ColumnPoints,
	ColumnDateFiled,
	ColumnDescription,
}

// Row-level error reasons
const (
	ReasonMissingColumn   = "missing column"
	ReasonMissingValue    = "missing value"
	ReasonNotInteger      = "not an integer"
	ReasonDuplicateID     = "duplicate case id"
	ReasonInvalidValue    = "invalid value"
	ReasonMalformedRow    = "malformed row"
	ReasonEmptyTable      = "no header row"
	ReasonDuplicateColumn = "duplicate column"
)

// Error contexts
const (
	ErrContextReadHeader = "failed to read header"
	ErrContextReadRow    = "failed to read row"
)
