package auth

import "errors"

var (
	ErrClaimsIncomplete = errors.New("claims incomplete")
	ErrInvalidToken     = errors.New("invalid token")
	ErrMalformedToken   = errors.New("malformed token")
	ErrMisconfigured    = errors.New("misconfigured")
	ErrMissingToken     = errors.New("missing token")
)
