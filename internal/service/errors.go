package service

import "errors"

var (
	ErrInvalidAppData = errors.New("invalid app data provided")
	ErrEmptyAppName   = errors.New("app name is empty")

	ErrAdminDisabled        = errors.New("admin operations are disabled")
	ErrMissingAdminPassword = errors.New("missing admin password")
	ErrWrongAdminPassword   = errors.New("wrong admin password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
)
