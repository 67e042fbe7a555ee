package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fennelworks/catalog-api/internal/errs"
)

func TestMapCode(t *testing.T) {
	assert.Equal(t, UniqueViolation, MapCode("23505"))
	assert.Equal(t, ForeignKeyViolation, MapCode("23503"))
	assert.Equal(t, NotNullViolation, MapCode("23502"))
	assert.Equal(t, CheckViolation, MapCode("23514"))
	assert.Equal(t, ConnectionFailure, MapCode("08006"))
	assert.Equal(t, Other, MapCode("42601"))
	assert.Equal(t, Other, MapCode(""))
}

func TestMapSeverity(t *testing.T) {
	assert.Equal(t, SeverityError, MapSeverity("ERROR"))
	assert.Equal(t, SeverityFatal, MapSeverity("FATAL"))
	assert.Equal(t, SeverityPanic, MapSeverity("PANIC"))
	assert.Equal(t, SeverityUnknown, MapSeverity("NOTICE"))
}

func TestErrCode(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", Severity: "ERROR", TableName: "users"}
	converted := ConvertPgError(pgErr)

	assert.Equal(t, UniqueViolation, ErrCode(converted))
	assert.Equal(t, UniqueViolation, ErrCode(fmt.Errorf("creating user: %w", converted)))
	assert.Equal(t, Other, ErrCode(errors.New("unrelated")))
}

func TestHandleErrorUniqueViolationIsConflict(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		TableName:      "users",
		ConstraintName: "users_email_key",
	}

	err := HandleError(pgErr)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)

	assert.Equal(t, http.StatusConflict, httpErr.Status)
	assert.Equal(t, "USER_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A User with this Email already exists", httpErr.Message)
	assert.True(t, httpErr.Override)
}

func TestHandleErrorForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:       "23503",
		Severity:   "ERROR",
		TableName:  "items",
		ColumnName: "user_id",
	}

	err := HandleError(pgErr)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "ITEM_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "The referenced User does not exist", httpErr.Message)
}

func TestHandleErrorNotNullViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:       "23502",
		Severity:   "ERROR",
		TableName:  "items",
		ColumnName: "name",
	}

	err := HandleError(pgErr)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "name", httpErr.Errors[0].Field)
	assert.Equal(t, "is required", httpErr.Errors[0].Error)
}

func TestHandleErrorNoRowsIsNotFound(t *testing.T) {
	for _, sentinel := range []error{pgx.ErrNoRows, sql.ErrNoRows} {
		err := HandleError(sentinel)

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
	}
}

func TestHandleErrorPassesThroughHTTPError(t *testing.T) {
	original := errs.NewNotFoundError("Item not found", false, nil)

	err := HandleError(original)

	assert.Same(t, original, err)
}

func TestHandleErrorUnknownIsInternal(t *testing.T) {
	err := HandleError(errors.New("connection reset by peer"))

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	assert.Equal(t, "email", extractColumnForUniqueViolation("users_email_key"))
	assert.Equal(t, "username", extractColumnForUniqueViolation("users_username_ukey"))
	assert.Equal(t, "email", extractColumnForUniqueViolation("unique_users_email"))
	assert.Equal(t, "", extractColumnForUniqueViolation("pkey"))
	assert.Equal(t, "", extractColumnForUniqueViolation(""))
}

func TestGenerateErrorCode(t *testing.T) {
	assert.Equal(t, "USER_ALREADY_EXISTS", generateErrorCode("users", UniqueViolation))
	assert.Equal(t, "ITEM_NOT_FOUND", generateErrorCode("items", ForeignKeyViolation))
	assert.Equal(t, "RECORD_ERROR", generateErrorCode("", Other))
}
