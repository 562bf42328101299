package auth

import (
	"github.com/golang-jwt/jwt/v4"
)

var _ Verifier = new(Service)

// Service is an implementation of the Verifier interface defined in this package.
type Service struct {
	audience string
	key      []byte
	parser   *jwt.Parser
}

// A ServiceOpt configures a Service when constructing a new one.
type ServiceOpt func(*Service)

// WithAudience requires verified tokens to list aud in their "aud" claim.
func WithAudience(aud string) ServiceOpt {
	return func(s *Service) {
		s.audience = aud
	}
}

// NewService constructs a Service verifying tokens signed with secret.
//
// An empty secret does not fail construction;
// instead, every call to Verify returns ErrMisconfigured.
func NewService(secret string, opts ...ServiceOpt) *Service {
	s := &Service{
		key:    []byte(secret),
		parser: &jwt.Parser{ValidMethods: []string{jwt.SigningMethodHS256.Alg()}},
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}
