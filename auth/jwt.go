package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
)

// Verify decodes the Claims of token,
// checking its signature against the configured secret.
//
// If no secret is configured, Verify returns ErrMisconfigured.
// Any token failing signature, expiry, audience or shape checks
// returns ErrInvalidToken.
func (s *Service) Verify(ctx context.Context, token string) (Claims, error) {
	if len(s.key) == 0 {
		return Claims{}, fmt.Errorf("%w: no JWT secret", ErrMisconfigured)
	}

	if err := ctx.Err(); err != nil {
		return Claims{}, err
	}

	claims := new(Claims)
	_, err := s.parser.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return s.key, nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}

	if s.audience != "" && !claims.VerifyAudience(s.audience, true) {
		return Claims{}, fmt.Errorf("%w: audience does not include %q", ErrInvalidToken, s.audience)
	}

	return *claims, nil
}
