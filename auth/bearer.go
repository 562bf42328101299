package auth

import (
	"fmt"
	"strings"
)

const bearerPrefix = "Bearer "

// ParseBearer retrieves the token from the value of an Authorization header.
//
// An empty header returns ErrMissingToken.
// Any header not shaped exactly as "Bearer <token>" returns ErrMalformedToken.
func ParseBearer(header string) (string, error) {
	if header == "" {
		return "", ErrMissingToken
	}

	if !strings.HasPrefix(header, bearerPrefix) {
		return "", fmt.Errorf("%w: no bearer scheme", ErrMalformedToken)
	}

	token := strings.TrimPrefix(header, bearerPrefix)
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", fmt.Errorf("%w: expected exactly one token", ErrMalformedToken)
	}

	return token, nil
}
