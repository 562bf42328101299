package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/logger"
)

var _ logger.LogUser = Claims{}

// Claims are the decoded payload of an identity provider's access token.
//
// Subject identifies the user within the identity provider.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// Complete asserts the Claims identify a user by both subject and email.
func (c Claims) Complete() error {
	if c.Subject == "" || c.Email == "" {
		return fmt.Errorf("%w: sub and email required", ErrClaimsIncomplete)
	}

	return nil
}

// GetEmail implements logger.LogUser.
func (c Claims) GetEmail() string { return c.Email }

// GetID implements logger.LogUser.
func (c Claims) GetID() string { return c.Subject }

// NewClaimsContext returns a copy of ctx carrying c.
func NewClaimsContext(ctx context.Context, c Claims) context.Context {
	return context.WithValue(ctx, waypoint.ClaimsKey, c)
}

// ClaimsFromContext retrieves the Claims stored in ctx, if any.
func ClaimsFromContext(ctx context.Context) (Claims, bool) {
	c, ok := ctx.Value(waypoint.ClaimsKey).(Claims)
	return c, ok
}
