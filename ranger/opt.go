package ranger

import (
	"context"
	"fmt"
	"net/http"

	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/auth"
	"github.com/xy-planning-network/waypoint/http/middleware"
	"github.com/xy-planning-network/waypoint/http/resp"
	"github.com/xy-planning-network/waypoint/logger"
	"github.com/xy-planning-network/waypoint/postgres"
	"github.com/xy-planning-network/waypoint/supabase"
)

// A RangerOption configures a *Ranger either (1) directly, immediately upon being called
// or (2) in the OptFollowup it returns.
// Some RangerOptions require data in others and thus an OptFollowup can be returned
// in order to be called at a later time when that data is available.
//
// WithDB is an example of the first.
// An unexported field on the passed in *Ranger is updated with the enclosed value.
//
// WithMiddleware is an example of the second.
// The *router.Router it adds to only exists
// once every RangerOption and default has been applied.
type RangerOption func(rng *Ranger) (OptFollowup, error)
type OptFollowup func() error

// WithContext exposes the provided context.Context to the waypoint app.
func WithContext(ctx context.Context) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if ctx == nil {
			return nil, fmt.Errorf("%w: nil context", waypoint.ErrBadConfig)
		}

		rng.ctx = ctx
		return nil, nil
	}
}

// WithDB exposes the provided *postgres.DB to the waypoint app.
//
// WithDB assumes a connection has already been established.
// Unless WithReadDB is also used, reads go to db as well.
func WithDB(db *postgres.DB) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if db == nil {
			return nil, fmt.Errorf("%w: nil *postgres.DB", waypoint.ErrBadConfig)
		}

		rng.db = db
		return nil, nil
	}
}

// WithReadDB exposes the provided *postgres.DB to the waypoint app for reads.
//
// WithReadDB assumes a connection has already been established.
func WithReadDB(db *postgres.DB) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if db == nil {
			return nil, fmt.Errorf("%w: nil *postgres.DB", waypoint.ErrBadConfig)
		}

		rng.readDB = db
		return nil, nil
	}
}

// WithEnv casts the provided string into a valid Environment,
// or, reads from the ENVIRONMENT environment variable a valid Environment.
//
// If both fail, the default Environment is set to Development.
func WithEnv(envVar string) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		e := waypoint.Environment(envVar)
		if err := e.Valid(); err != nil {
			e = waypoint.EnvVarOrEnv(environmentEnvVar, waypoint.Development)
		}

		rng.env = e
		return nil, nil
	}
}

// WithIdentityClient exposes the provided *supabase.Client to the waypoint app.
func WithIdentityClient(c *supabase.Client) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.idp = c
		return nil, nil
	}
}

// WithLimiter rate limits every request with l.
func WithLimiter(l middleware.Limiter) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.limiter = l
		return nil, nil
	}
}

// WithLogger exposes the provided logger.Logger to the waypoint app.
func WithLogger(l logger.Logger) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.l = l
		return nil, nil
	}
}

// WithMiddleware constructs a followup option that, when called,
// appends the middlewares to those run on every request.
func WithMiddleware(mws ...middleware.Adapter) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		return func() error {
			rng.Router.OnEveryRequest(mws...)
			rng.l.Debug(fmt.Sprintf("using %d additional middlewares", len(mws)), nil)

			return nil
		}, nil
	}
}

// WithResponder exposes the *resp.Responder to the waypoint app.
func WithResponder(d *resp.Responder) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.Responder = d
		return nil, nil
	}
}

// WithServer exposes the *http.Server to the waypoint app.
func WithServer(s *http.Server) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if s == nil {
			return nil, fmt.Errorf("%w: nil *http.Server", waypoint.ErrBadConfig)
		}

		rng.srv = s
		return nil, nil
	}
}

// WithVerifier checks bearer tokens with v.
func WithVerifier(v auth.Verifier) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.verifier = v
		return nil, nil
	}
}
