package service

import (
	"fmt"
	"net/http"
)

type AuthzErrorKind int

const (
	MissingCredential AuthzErrorKind = iota + 1
	InvalidCredential
	ResourceNotFound
	Forbidden
)

// AuthzError reports why a caller may not act on a space. Err, when set, is the
// collaborator failure behind it and is never shown to the caller.
type AuthzError struct {
	Kind AuthzErrorKind
	Err  error
}

func (e *AuthzError) Error() string {
	switch e.Kind {
	case MissingCredential:
		return "Missing Bearer Token"
	case InvalidCredential:
		return "Invalid token"
	case ResourceNotFound:
		return "Space not found"
	case Forbidden:
		return "Forbidden: not space owner"
	default:
		return fmt.Sprintf("authorization error (kind %d)", int(e.Kind))
	}
}

func (e *AuthzError) Unwrap() error { return e.Err }

// StatusCode maps the kind to its HTTP status.
func (e *AuthzError) StatusCode() int {
	switch e.Kind {
	case MissingCredential, InvalidCredential:
		return http.StatusUnauthorized
	case ResourceNotFound:
		return http.StatusNotFound
	case Forbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

type ValidationErrorKind int

const (
	MissingEmail ValidationErrorKind = iota + 1
)

type ValidationError struct {
	Kind ValidationErrorKind
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case MissingEmail:
		return "Missing email"
	default:
		return fmt.Sprintf("validation error (kind %d)", int(e.Kind))
	}
}

// PersistenceError wraps a failed write. Nothing was stored and no email was sent.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string { return e.Err.Error() }

func (e *PersistenceError) Unwrap() error { return e.Err }
