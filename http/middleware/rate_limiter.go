package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/xy-planning-network/waypoint/http/resp"
	"github.com/xy-planning-network/waypoint/logger"
	"golang.org/x/time/rate"
)

const visitorTTL = 60 * time.Minute

// A Limiter decides whether the client identified by key may make another request.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// A Visitor tracks a rate limiter and last seen time.
type Visitor struct {
	LastSeen time.Time
	Limiter  *rate.Limiter
}

// A Visitors maps a Visitor to an IP address.
//
// Visitors only limits requests reaching this process.
// Use a RedisLimiter to share limits across processes.
type Visitors struct {
	burst int
	limit rate.Limit
	val   map[string]Visitor
	sync.Mutex
}

// NewVisitors constructs a Visitors allowing each visitor
// limit requests every second with bursts of up to burst.
func NewVisitors(limit float64, burst int) *Visitors {
	return &Visitors{
		burst: burst,
		limit: rate.Limit(limit),
		val:   make(map[string]Visitor),
	}
}

// Allow implements Limiter.
func (vs *Visitors) Allow(_ context.Context, ip string) (bool, error) {
	ok := vs.Fetch(ip).Limiter.Allow()
	vs.cleanup()
	return ok, nil
}

// Fetch retrieves the Visitor for the given ip creating a new Visitor if not seen.
func (vs *Visitors) Fetch(ip string) Visitor {
	vs.Lock()
	defer vs.Unlock()

	v, ok := vs.val[ip]
	if !ok {
		v = Visitor{Limiter: rate.NewLimiter(vs.limit, vs.burst)}
	}

	v.LastSeen = time.Now().UTC()
	vs.val[ip] = v
	return v
}

// cleanup deletes a Visitor from Visitors if they have not been seen in over an hour.
func (vs *Visitors) cleanup() {
	vs.Lock()
	defer vs.Unlock()
	for ip, v := range vs.val {
		if time.Since(v.LastSeen) > visitorTTL {
			delete(vs.val, ip)
		}
	}
}

// RateLimit limits requests per client IP address, see ClientIP, using the Limiter,
// responding 429 to clients over their limit.
//
// Should the Limiter fail, RateLimit logs the error and lets the request through.
//
// NOTE: implementation found here:
// https://www.alexedwards.net/blog/how-to-rate-limit-http-requests
//
// If l is nil, NoopAdapter returns and this middleware does nothing.
func RateLimit(d *resp.Responder, l Limiter, ls logger.Logger) Adapter {
	if d == nil || l == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ok, err := l.Allow(r.Context(), ClientIP(r))
			if err != nil && ls != nil {
				ls.Warn("rate limiter failed, allowing request", &logger.LogContext{Error: err, Request: r})
			}

			if err == nil && !ok {
				d.Json(w, r, resp.Code(http.StatusTooManyRequests), resp.Msg(http.StatusText(http.StatusTooManyRequests)))
				return
			}

			h.ServeHTTP(w, r)
		})
	}
}
