package sqlerr

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/amaldanavina3112/chennai-evento-connect/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	uniqueKeyPattern  = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)
	foreignKeyPattern = regexp.MustCompile(`([^_]+_id)_fkey$`)
)

// ConvertPgError converts a raw postgres error into an *Error.
//
// Postgres does not report a column for foreign key violations, so it is
// read from the constraint name instead.
func ConvertPgError(src *pgconn.PgError) *Error {
	columnName := src.ColumnName
	if columnName == "" && src.Code == "23503" {
		columnName = extractColumnForForeignKey(src.TableName, src.ConstraintName)
	}

	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     columnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// generateErrorCode builds <ENTITY>_<ACTION>, e.g. users + UniqueViolation
// becomes USER_ALREADY_EXISTS. Foreign keys are named after the referenced
// entity (bookings.event_id -> EVENT_NOT_FOUND).
func generateErrorCode(tableName, columnName string, errType Code) string {
	domain := strings.ToUpper(tableName)
	if errType == ForeignKeyViolation && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		domain = strings.ToUpper(strings.TrimSuffix(strings.ToLower(columnName), "_id"))
	}
	if domain == "" {
		domain = "RECORD"
	}
	if enquiry, ok := strings.CutSuffix(domain, "IES"); ok {
		domain = enquiry + "Y"
	} else if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		domain = domain[:len(domain)-1]
	}

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation, InvalidText, DataException:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

func formatUserFriendlyMessage(sqlErr *Error) string {
	entityName := getEntityName(sqlErr.TableName, sqlErr.ColumnName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", entityName)
	case UniqueViolation:
		return fmt.Sprintf("A %s with this identifier already exists", entityName)
	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)
	case CheckViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"
	case InvalidText:
		return "One or more values have an invalid format"
	case DataException:
		return "One or more values are malformed or out of range"
	default:
		return "An error occurred while processing your request"
	}
}

// getEntityName prefers a *_id column over the table name.
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		return humanizeText(strings.TrimSuffix(strings.ToLower(columnName), "_id"))
	}

	if tableName != "" {
		entity := tableName
		if base, ok := strings.CutSuffix(entity, "ies"); ok {
			entity = base + "y"
		} else if strings.HasSuffix(entity, "s") && len(entity) > 1 {
			entity = entity[:len(entity)-1]
		}
		return humanizeText(entity)
	}

	return "record"
}

func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// extractColumnForUniqueViolation reads the column out of constraint names
// shaped like unique_<table>_<column> or <table>_<column>_key.
func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	matches := uniqueKeyPattern.FindStringSubmatch(constraintName)
	if len(matches) > 1 {
		return matches[1]
	}

	return ""
}

// extractColumnForForeignKey reads the column out of the default
// <table>_<column>_fkey constraint name.
func extractColumnForForeignKey(tableName, constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if tableName != "" {
		if column, ok := strings.CutPrefix(constraintName, tableName+"_"); ok {
			if column, ok = strings.CutSuffix(column, "_fkey"); ok && column != "" {
				return column
			}
		}
	}

	matches := foreignKeyPattern.FindStringSubmatch(constraintName)
	if len(matches) > 1 {
		return matches[1]
	}

	return ""
}

// HandleError converts a database error into an *errs.HTTPError.
//
// Constraint violations and malformed input (SQLSTATE class 22) become
// 400s with a machine code, a stray
// pgx.ErrNoRows becomes a 404 and everything else is a 500. An
// *errs.HTTPError passes through unchanged.
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)
		if sqlErr.TableName == "" {
			var tableErr *tableError
			if errors.As(err, &tableErr) {
				sqlErr.TableName = tableErr.table
			}
		}

		errorCode := generateErrorCode(sqlErr.TableName, sqlErr.ColumnName, sqlErr.Code)
		userMessage := formatUserFriendlyMessage(sqlErr)

		switch sqlErr.Code {
		case ForeignKeyViolation:
			return errs.NewBadRequestError(userMessage, false, &errorCode, nil, nil)

		case UniqueViolation:
			if columnName := extractColumnForUniqueViolation(sqlErr.ConstraintName); columnName != "" {
				userMessage = strings.ReplaceAll(userMessage, "identifier", humanizeText(columnName))
			}
			return errs.NewBadRequestError(userMessage, true, &errorCode, nil, nil)

		case NotNullViolation:
			fieldErrors := []errs.FieldError{
				{
					Field: strings.ToLower(sqlErr.ColumnName),
					Error: "is required",
				},
			}
			return errs.NewBadRequestError(userMessage, true, &errorCode, fieldErrors, nil)

		case CheckViolation, InvalidText, DataException:
			return errs.NewBadRequestError(userMessage, true, &errorCode, nil, nil)

		default:
			return errs.NewInternalServerError()
		}
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	return errs.NewInternalServerError()
}
