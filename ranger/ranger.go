package ranger

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/joho/godotenv/autoload"
	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/auth"
	"github.com/xy-planning-network/waypoint/conferencing"
	"github.com/xy-planning-network/waypoint/health"
	"github.com/xy-planning-network/waypoint/http/middleware"
	"github.com/xy-planning-network/waypoint/http/resp"
	"github.com/xy-planning-network/waypoint/http/router"
	"github.com/xy-planning-network/waypoint/logger"
	"github.com/xy-planning-network/waypoint/postgres"
	"github.com/xy-planning-network/waypoint/settings"
	"github.com/xy-planning-network/waypoint/supabase"
)

// APIPrefix prefixes every route waypoint serves.
const APIPrefix = "/api/v1/custom"

const healthRoute = "/health"

// HealthPath serves dependency health without authentication.
const HealthPath = APIPrefix + healthRoute

const shutdownTimeout = 5 * time.Second

// A Ranger manages and exposes all components of a waypoint app to one another.
type Ranger struct {
	*resp.Responder
	*router.Router

	ctx      context.Context
	cancel   context.CancelFunc
	db       *postgres.DB
	env      waypoint.Environment
	idp      *supabase.Client
	l        logger.Logger
	limiter  middleware.Limiter
	readDB   *postgres.DB
	redis    *redis.Client
	srv      *http.Server
	url      *url.URL
	verifier auth.Verifier
}

// New constructs a Ranger from the provided options.
// Options passed into New are applied first;
// defaults then fill in whatever they left unset.
//
// New registers these routes:
//
//   - GET /api/v1/custom/health
//   - GET /api/v1/custom/settings
//   - GET /api/v1/custom/conferencing
func New(opts ...RangerOption) (*Ranger, error) {
	r := new(Ranger)
	followups := make([]OptFollowup, 0)

	for _, opt := range opts {
		fn, err := opt(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", waypoint.ErrBadConfig, err)
		}

		if fn != nil {
			followups = append(followups, fn)
		}
	}

	if err := r.applyDefaults(); err != nil {
		return nil, err
	}

	for _, fn := range followups {
		if err := fn(); err != nil {
			return nil, fmt.Errorf("%w: %s", waypoint.ErrBadConfig, err)
		}
	}

	r.routes()

	return r, nil
}

// applyDefaults sets up every component no RangerOption configured,
// in the order components depend on one another.
func (r *Ranger) applyDefaults() error {
	if r.ctx == nil {
		r.ctx = context.Background()
	}
	r.ctx, r.cancel = context.WithCancel(r.ctx)

	if r.env == "" {
		r.env = waypoint.EnvVarOrEnv(environmentEnvVar, waypoint.Development)
	}

	if r.l == nil {
		r.l = defaultAppLogger(r.env)
	}
	r.l.Debug(fmt.Sprintf("using env %s", r.env), nil)

	port := waypoint.EnvVarOrString(portEnvVar, DefaultPort)
	if port[0] != ':' {
		port = ":" + port
	}
	r.url = waypoint.EnvVarOrURL(BaseURLEnvVar, "http://"+waypoint.EnvVarOrString(hostEnvVar, DefaultHost)+port)
	if r.url == nil {
		r.url, _ = url.ParseRequestURI(defaultBaseURL)
	}

	if r.db == nil {
		db, err := defaultDB(r.env)
		if err != nil {
			return fmt.Errorf("%w: can't connect to database: %s", waypoint.ErrBadConfig, err)
		}

		r.db = db
	}

	if r.readDB == nil {
		db, err := defaultReadDB(r.env, r.db)
		if err != nil {
			return fmt.Errorf("%w: can't connect to read database: %s", waypoint.ErrBadConfig, err)
		}

		r.readDB = db
	}

	if r.verifier == nil {
		r.verifier = defaultVerifier(r.l)
	}

	if r.idp == nil {
		r.idp = defaultIdentityClient(r.l)
	}

	if r.limiter == nil {
		limiter, client, err := defaultLimiter()
		if err != nil {
			return err
		}

		r.limiter = limiter
		r.redis = client
		r.l.Debug(fmt.Sprintf("using rate limiter %T", limiter), nil)
	}

	if r.Responder == nil {
		r.Responder = defaultResponder(r.l)
	}

	if r.Router == nil {
		r.Router = defaultRouter(r.env, r.Responder, r.l, r.limiter)
	}

	if r.srv == nil {
		r.srv = defaultServer(r.ctx)
	}

	return nil
}

// routes registers every waypoint endpoint on the Ranger's router.
func (r *Ranger) routes() {
	users := settings.NewStore(r.readDB)
	apps := conferencing.NewRepository(r.readDB)

	// NOTE: a nil *supabase.Client must not become a non-nil health.Checker.
	var identity health.Checker
	if r.idp != nil {
		identity = r.idp
	}

	api := r.Router.Subrouter(APIPrefix)
	api.UnauthedRoutes([]router.Route{
		{Path: healthRoute, Method: http.MethodGet, Handler: health.NewHandler(r.Responder, r.l, r.readDB, identity).Get},
	})
	api.AuthedRoutes(r.verifier, []router.Route{
		{Path: "/settings", Method: http.MethodGet, Handler: settings.NewHandler(r.Responder, users).Get},
		{Path: "/conferencing", Method: http.MethodGet, Handler: conferencing.NewHandler(r.Responder, users, apps).List},
	})
}

// Context exposes the context.Context the web server's requests derive from.
func (r *Ranger) Context() context.Context { return r.ctx }

// DB exposes the primary *postgres.DB.
func (r *Ranger) DB() *postgres.DB { return r.db }

// Env exposes the Environment the app runs in.
func (r *Ranger) Env() waypoint.Environment { return r.env }

// Logger exposes the logger.Logger of the app.
func (r *Ranger) Logger() logger.Logger { return r.l }

// URL exposes the base URL the app is served at.
func (r *Ranger) URL() *url.URL { return r.url }

// Guide begins the web server.
//
// These, and (*Ranger).Shutdown, stop Guide:
//
// - os.Interrupt
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
func (r *Ranger) Guide() error {
	ch := make(chan os.Signal, 1)
	signal.Notify(
		ch,
		os.Interrupt,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	defer signal.Stop(ch)

	go func() {
		select {
		case s := <-ch:
			r.l.Info(fmt.Sprint("received shutdown signal: ", s), nil)
			r.cancel()
		case <-r.ctx.Done():
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		r.l.Info(fmt.Sprintf("running web server at %s", r.url), nil)
		r.srv.Handler = r.Router
		if err := r.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			err = fmt.Errorf("could not listen: %w", err)
			r.l.Error(err.Error(), nil)
			errCh <- err
		}
	}()

	select {
	case <-r.ctx.Done():
		return r.Shutdown()
	case err := <-errCh:
		r.cancel()
		return errors.Join(err, r.Shutdown())
	}
}

// Shutdown shutdowns the web server
// and closes connections to the database and Redis.
func (r *Ranger) Shutdown() error {
	r.cancel()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	r.l.Info("shutting down web server", nil)
	err := r.srv.Shutdown(shutdownCtx)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		err = fmt.Errorf("could not shutdown: %w", err)
	} else {
		err = nil
	}

	err = errors.Join(err, r.close())
	if err != nil {
		return err
	}

	r.l.Info("web server shutdown successfully", nil)
	return nil
}

// close releases connections the Ranger opened.
func (r *Ranger) close() error {
	var err error
	for _, db := range []*postgres.DB{r.db, r.readDB} {
		if db == nil || db.DB() == nil {
			continue
		}

		sqlDB, dbErr := db.DB().DB()
		if dbErr != nil {
			continue
		}

		if cerr := sqlDB.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("could not close database: %w", cerr))
		}

		if r.readDB == r.db {
			break
		}
	}

	if r.redis != nil {
		if cerr := r.redis.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("could not close redis: %w", cerr))
		}
	}

	return err
}
