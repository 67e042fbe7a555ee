// Package sqlerr translates database driver errors into application
// errors.
//
// It parses SQLSTATE codes from the PostgreSQL driver and converts
// them into the errs.HTTPError shapes the API returns (e.g. a unique
// violation becomes a 409 Conflict).
package sqlerr

// Code classifies a database error by its SQLSTATE.
type Code int

const (
	// Other covers errors with no specific mapping.
	Other Code = iota
	UniqueViolation
	ForeignKeyViolation
	NotNullViolation
	CheckViolation
	ConnectionFailure
)

// Severity mirrors the PostgreSQL error severity field.
type Severity int

const (
	SeverityUnknown Severity = iota
	SeverityError
	SeverityFatal
	SeverityPanic
)

// Error is a normalized database error carrying the metadata PostgreSQL
// reports alongside the SQLSTATE, so callers can switch on Code and
// build messages from table/column/constraint names.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string

	driverErr error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the original driver error for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.driverErr
}

// MapCode maps a SQLSTATE string onto our Code enum.
//
// SQLSTATE class 23 covers integrity constraint violations; class 08
// covers connection exceptions.
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case "23505":
		return UniqueViolation
	case "23503":
		return ForeignKeyViolation
	case "23502":
		return NotNullViolation
	case "23514":
		return CheckViolation
	}
	if len(sqlstate) >= 2 && sqlstate[:2] == "08" {
		return ConnectionFailure
	}
	return Other
}

// MapSeverity maps the driver's severity string onto our enum.
func MapSeverity(severity string) Severity {
	switch severity {
	case "ERROR":
		return SeverityError
	case "FATAL":
		return SeverityFatal
	case "PANIC":
		return SeverityPanic
	default:
		return SeverityUnknown
	}
}
