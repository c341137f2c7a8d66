package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrMissingFields       = errors.New("missing required fields")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrPasswordRequired    = errors.New("admin password required")
	ErrAdminDisabled       = errors.New("admin operations are disabled on server")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected http status")
)
