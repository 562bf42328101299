package ranger

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/auth"
	"github.com/xy-planning-network/waypoint/http/middleware"
	"github.com/xy-planning-network/waypoint/http/resp"
	"github.com/xy-planning-network/waypoint/http/router"
	"github.com/xy-planning-network/waypoint/logger"
	"github.com/xy-planning-network/waypoint/migrations"
	"github.com/xy-planning-network/waypoint/postgres"
	"github.com/xy-planning-network/waypoint/postgres/postgrestest"
	"github.com/xy-planning-network/waypoint/supabase"
)

const (
	// Base URL defaults
	BaseURLEnvVar = "BASE_URL"

	// CORS defaults
	corsOriginEnvVar = "CORS_ALLOWED_ORIGIN"

	// Environment defaults
	environmentEnvVar = "ENVIRONMENT"

	// Log defaults
	logLevelEnvVar = "LOG_LEVEL"
	defaultLogLvl  = logger.LogLevelInfo

	// Database defaults
	dbHostEnvVar         = "DATABASE_HOST"
	defaultDBHost        = "localhost"
	dbLogQueriesEnvVar   = "DATABASE_LOG_QUERIES"
	dbNameEnvVar         = "DATABASE_NAME"
	dbPassEnvVar         = "DATABASE_PASSWORD"
	dbPortEnvVar         = "DATABASE_PORT"
	defaultDBPort        = "5432"
	dbReadURLEnvVar      = "DATABASE_READ_URL"
	dbSSLModeEnvVar      = "DATABASE_SSLMODE"
	defaultDBSSLMode     = "prefer"
	dbURLEnvVar          = "DATABASE_URL"
	dbUserEnvVar         = "DATABASE_USER"
	dbMaxIdleCxnsEnvVar  = "DATABASE_MAX_IDLE_CXNS"
	defaultDBMaxIdleCxns = 1
	dbMaxOpenCxnsEnvVar  = "DATABASE_MAX_OPEN_CXNS"
	defaultDBMaxOpenCxns = 10

	// Identity provider defaults
	SupabaseAnonKeyEnvVar     = "NEXT_PUBLIC_SUPABASE_ANON_KEY"
	SupabaseJWTAudienceEnvVar = "SUPABASE_JWT_AUDIENCE"
	SupabaseJWTSecretEnvVar   = "SUPABASE_JWT_SECRET"
	SupabaseURLEnvVar         = "NEXT_PUBLIC_SUPABASE_URL"

	// Rate limit defaults
	rateLimitBurstEnvVar  = "RATE_LIMIT_BURST"
	defaultRateLimitBurst = 20
	rateLimitRPSEnvVar    = "RATE_LIMIT_RPS"
	defaultRateLimitRPS   = 10
	redisURLEnvVar        = "REDIS_URL"

	// Web server defaults
	DefaultHost               = "localhost"
	hostEnvVar                = "HOST"
	DefaultPort               = ":3000"
	portEnvVar                = "PORT"
	serverReadTimeoutEnvVar   = "SERVER_READ_TIMEOUT"
	DefaultServerReadTimeout  = 5 * time.Second
	serverIdleTimeoutEnvVar   = "SERVER_IDLE_TIMEOUT"
	DefaultServerIdleTimeout  = 120 * time.Second
	serverWriteTimeoutEnvVar  = "SERVER_WRITE_TIMEOUT"
	DefaultServerWriteTimeout = 5 * time.Second
)

var defaultBaseURL = "http://" + DefaultHost + DefaultPort

// NewPostgresConfig constructs a *postgres.CxnConfig appropriate to the given environment.
// Confer the DATABASE env vars for usage.
func NewPostgresConfig(env waypoint.Environment) *postgres.CxnConfig {
	var cfg *postgres.CxnConfig
	url := os.Getenv(dbURLEnvVar)
	switch {
	case env.IsTesting():
		cfg = postgrestest.Config()

	case url == "":
		cfg = &postgres.CxnConfig{
			Host:     waypoint.EnvVarOrString(dbHostEnvVar, defaultDBHost),
			IsTestDB: false,
			Name:     os.Getenv(dbNameEnvVar),
			Password: os.Getenv(dbPassEnvVar),
			Port:     waypoint.EnvVarOrString(dbPortEnvVar, defaultDBPort),
			SSLMode:  waypoint.EnvVarOrString(dbSSLModeEnvVar, defaultDBSSLMode),
			User:     os.Getenv(dbUserEnvVar),
		}

	default:
		cfg = &postgres.CxnConfig{IsTestDB: false, URL: url}
	}

	cfg.LogQueries = waypoint.EnvVarOrBool(dbLogQueriesEnvVar, false)
	cfg.MaxIdleCxns = waypoint.EnvVarOrInt(dbMaxIdleCxnsEnvVar, defaultDBMaxIdleCxns)
	cfg.MaxOpenCxns = waypoint.EnvVarOrInt(dbMaxOpenCxnsEnvVar, defaultDBMaxOpenCxns)

	return cfg
}

// NewReadPostgresConfig constructs a *postgres.CxnConfig for a read replica
// from DATABASE_READ_URL.
//
// If DATABASE_READ_URL is not set, NewReadPostgresConfig returns nil.
func NewReadPostgresConfig() *postgres.CxnConfig {
	url := os.Getenv(dbReadURLEnvVar)
	if url == "" {
		return nil
	}

	return &postgres.CxnConfig{
		URL:         url,
		LogQueries:  waypoint.EnvVarOrBool(dbLogQueriesEnvVar, false),
		MaxIdleCxns: waypoint.EnvVarOrInt(dbMaxIdleCxnsEnvVar, defaultDBMaxIdleCxns),
		MaxOpenCxns: waypoint.EnvVarOrInt(dbMaxOpenCxnsEnvVar, defaultDBMaxOpenCxns),
	}
}

// defaultMigrations lists the migrations to run in env.
//
// The scheduling platform owns the schema everywhere else.
func defaultMigrations(env waypoint.Environment) []postgres.Migration {
	if env.OwnsSchema() {
		return migrations.All
	}

	return nil
}

// defaultDB connects to a Postgres database
// using default configuration environment variables.
func defaultDB(env waypoint.Environment) (*postgres.DB, error) {
	return postgres.Connect(NewPostgresConfig(env), defaultMigrations(env), env)
}

// defaultReadDB connects to the read replica, if one is configured.
// Otherwise, defaultReadDB returns primary.
func defaultReadDB(env waypoint.Environment, primary *postgres.DB) (*postgres.DB, error) {
	cfg := NewReadPostgresConfig()
	if cfg == nil {
		return primary, nil
	}

	return postgres.Connect(cfg, nil, env)
}

// defaultAppLogger constructs a [logger.Logger] configured for use in the application.
func defaultAppLogger(env waypoint.Environment) logger.Logger {
	return logger.NewLogger(
		logger.WithEnv(env.String()),
		logger.WithLevel(waypoint.EnvVarOrLogLevel(logLevelEnvVar, defaultLogLvl)),
	)
}

// defaultIdentityClient constructs the *supabase.Client from the NEXT_PUBLIC_SUPABASE env vars.
//
// Lacking either, defaultIdentityClient logs the misconfiguration and returns nil.
func defaultIdentityClient(l logger.Logger) *supabase.Client {
	c, err := supabase.New(os.Getenv(SupabaseURLEnvVar), os.Getenv(SupabaseAnonKeyEnvVar))
	if err != nil {
		l.Error(
			fmt.Sprintf("identity provider client not configured; check %s and %s", SupabaseURLEnvVar, SupabaseAnonKeyEnvVar),
			&logger.LogContext{Error: err},
		)
		return nil
	}

	return c
}

// defaultLimiter constructs a [middleware.Limiter] shared through Redis when REDIS_URL is set
// or kept in memory otherwise.
func defaultLimiter() (middleware.Limiter, *redis.Client, error) {
	rps := waypoint.EnvVarOrInt(rateLimitRPSEnvVar, defaultRateLimitRPS)
	burst := waypoint.EnvVarOrInt(rateLimitBurstEnvVar, defaultRateLimitBurst)

	redisURL := os.Getenv(redisURLEnvVar)
	if redisURL == "" {
		return middleware.NewVisitors(float64(rps), burst), nil, nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %s", waypoint.ErrBadConfig, redisURLEnvVar, err)
	}

	client := redis.NewClient(opts)

	return middleware.NewRedisLimiter(client, int64(rps*60), time.Minute), client, nil
}

// defaultResponder configures the [*resp.Responder] to be used by http.Handlers.
func defaultResponder(l logger.Logger) *resp.Responder {
	return resp.NewResponder(resp.WithLogger(l))
}

// defaultVerifier constructs the [auth.Verifier] checking bearer tokens
// against SUPABASE_JWT_SECRET.
//
// An unset secret is logged, not returned:
// requests then fail verification with auth.ErrMisconfigured.
func defaultVerifier(l logger.Logger) auth.Verifier {
	secret := os.Getenv(SupabaseJWTSecretEnvVar)
	if secret == "" {
		l.Error(fmt.Sprintf("CRITICAL: %s is not set", SupabaseJWTSecretEnvVar), nil)
	}

	var opts []auth.ServiceOpt
	if aud := os.Getenv(SupabaseJWTAudienceEnvVar); aud != "" {
		opts = append(opts, auth.WithAudience(aud))
	}

	return auth.NewService(secret, opts...)
}

// defaultRouter constructs a [*router.Router] to be used by the web server.
func defaultRouter(env waypoint.Environment, d *resp.Responder, l logger.Logger, limiter middleware.Limiter) *router.Router {
	logReq := middleware.LogRequest(l)
	route := router.New(env, d, logReq)
	route.OnEveryRequest(
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		logReq,
		middleware.ForceHTTPS(env, HealthPath),
		middleware.CORS(os.Getenv(corsOriginEnvVar)),
		middleware.RateLimit(d, limiter, l),
	)
	route.HandleNotFound(func(w http.ResponseWriter, r *http.Request) {
		d.Json(w, r, resp.Code(http.StatusNotFound), resp.Msg(http.StatusText(http.StatusNotFound)))
	})

	return route
}

// defaultServer constructs a default [*http.Server].
func defaultServer(ctx context.Context) *http.Server {
	port := waypoint.EnvVarOrString(portEnvVar, DefaultPort)
	if port[0] != ':' {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		IdleTimeout:  waypoint.EnvVarOrDuration(serverIdleTimeoutEnvVar, DefaultServerIdleTimeout),
		ReadTimeout:  waypoint.EnvVarOrDuration(serverReadTimeoutEnvVar, DefaultServerReadTimeout),
		WriteTimeout: waypoint.EnvVarOrDuration(serverWriteTimeoutEnvVar, DefaultServerWriteTimeout),
	}
	if ctx != nil {
		srv.BaseContext = func(_ net.Listener) context.Context { return ctx }
	}

	return srv
}
