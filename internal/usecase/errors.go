package usecase

import "errors"

var (
	ErrPersonNotFound = errors.New("person not found")
	ErrOrgNotFound    = errors.New("organization tree not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInternal       = errors.New("internal error")
)
