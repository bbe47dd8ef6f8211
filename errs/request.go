package errs

import (
	"errors"
	"net/http"
)

var (
	Unauthorized = &ApiErr{StatusCode: http.StatusUnauthorized, err: ErrUnauthorized}
)

// ErrAuth marks a credential mismatch at the login endpoint.
var ErrAuth = errors.New("invalid credentials")

func NewAuthError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrAuth,
		Field:      "credentials",
	}
}

func IsAuth(err error) bool {
	return errors.Is(err, ErrAuth)
}

// ErrorKind names an error family for presentation.
type ErrorKind string

const (
	KindNone       ErrorKind = ""
	KindMissingID  ErrorKind = "missing-id"
	KindNotFound   ErrorKind = "not-found"
	KindValidation ErrorKind = "validation"
	KindAuth       ErrorKind = "auth"
	KindBadRequest ErrorKind = "bad-request"
	KindBackend    ErrorKind = "backend"
)

// Kind classifies err. Anything unrecognised is reported as a backend error.
func Kind(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case IsMissingID(err):
		return KindMissingID
	case IsNotFound(err):
		return KindNotFound
	case IsValidation(err):
		return KindValidation
	case IsAuth(err), IsUnauthorized(err):
		return KindAuth
	case IsBadRequest(err):
		return KindBadRequest
	default:
		return KindBackend
	}
}
