package auth

import "context"

// A Verifier checks a raw token and decodes the Claims it carries.
type Verifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
