package admin

import "errors"

var (
	ErrUnauthorized    = errors.New("caller is not an admin")
	ErrValidation      = errors.New("validation error")
	ErrWeakPassword    = errors.New("password does not meet the strength policy")
	ErrDuplicate       = errors.New("username or email already exists")
	ErrPayloadTooLarge = errors.New("driver picture exceeds the size limit")
)
