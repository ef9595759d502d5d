package models

// Typed errors returned by the service layer. The helper package maps them
// to HTTP status codes by concrete type, so handlers never pick codes
// themselves.

type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string {
	return e.Message
}

type ErrorForbidden struct {
	Message string
}

func (e ErrorForbidden) Error() string {
	return e.Message
}

type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string {
	return e.Message
}

// ErrorConflict covers duplicate signups (username or email already taken).
type ErrorConflict struct {
	Message string
}

func (e ErrorConflict) Error() string {
	return e.Message
}

// ErrorValidation carries field-level messages. The operation that produced
// it has not written anything.
type ErrorValidation struct {
	Fields map[string][]string
}

func (e ErrorValidation) Error() string {
	return "validation failed"
}

type ErrorInternalServer struct {
	Message string
}

func (e ErrorInternalServer) Error() string {
	return e.Message
}
