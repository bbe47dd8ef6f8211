package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Resource errors. Every failure of a resource operation carries exactly one
// of these sentinels.
var (
	ErrBackend    = errors.New("backend error")
	ErrNotFound   = errors.New("not found")
	ErrMissingID  = errors.New("ID is required")
	ErrValidation = errors.New("validation failed")
)

// NewBackendError reports a transport or query failure from the database.
func NewBackendError(operation, table string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrBackend,
		Details:    fmt.Sprintf("failed to %s %s", operation, table),
		Cause:      cause,
	}
}

// NewNotFoundError reports an expected row that is absent. The cause is kept
// so callers can still tell an empty result from a failed query.
func NewNotFoundError(table string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("%s %w", table, ErrNotFound),
		Cause:      cause,
	}
}

// NewMissingIDError is returned before any statement is issued.
func NewMissingIDError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrMissingID,
		Field:      "id",
	}
}

// NewValidationError reports a payload the backend (or the column whitelist)
// rejected.
func NewValidationError(table, field string, cause error) *ApiErr {
	e := &ApiErr{
		StatusCode: http.StatusUnprocessableEntity,
		err:        ErrValidation,
		Details:    fmt.Sprintf("invalid %s payload", table),
		Field:      field,
		Cause:      cause,
	}
	if field != "" {
		e.Details = fmt.Sprintf("invalid field %s on %s", field, table)
	}
	return e
}

func IsBackend(err error) bool {
	return errors.Is(err, ErrBackend)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsMissingID(err error) bool {
	return errors.Is(err, ErrMissingID)
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
