/*
Package ranger initializes and manages a waypoint app with sane defaults.

# Ranger

The main entrypoint to package ranger is the [Ranger] type.
A [Ranger] ought to be constructed with [New].

[*Ranger.Guide] begins waypoint's web server.
By default, [*Ranger.Guide] listens on [DefaultPort] (:3000),
assuming either a reverse proxy proxies requests
or only a client application makes direct requests to the web server.

Stop that web server with [*Ranger.Shutdown]
or send a signal [*Ranger.Guide] listens for.

# Configuration

A developer configures a waypoint app through environment variables
and by passing [RangerOption] to [New].
For environment variables, required values can be discovered by inspecting the errors [New] returns.

Environment variables ought to be set in a file called ".env"
found at the same directory the application is executed from.

Here are the available environment variables.
  - BASE_URL: the base URL the application runs on; replaces HOST & PORT
  - CORS_ALLOWED_ORIGIN: the origin browsers may call the API from; default: none
  - DATABASE_HOST: the host the database is running on; default: localhost
  - DATABASE_LOG_QUERIES: "true" logs every SQL statement; default: false
  - DATABASE_MAX_IDLE_CXNS: the maximum idle connections to the database; default: 1
  - DATABASE_MAX_OPEN_CXNS: the maximum open connections to the database; default: 10
  - DATABASE_NAME: the name of the database
  - DATABASE_PASSWORD: the password for authenticating a connection to the database
  - DATABASE_PORT: the port the database is listening on; default: 5432
  - DATABASE_READ_URL: the fully-qualified connection string for a read replica; default: reads use the primary
  - DATABASE_SSLMODE: cf. https://www.postgresql.org/docs/current/libpq-ssl.html; default: prefer
  - DATABASE_URL: the fully-qualified connection string for connecting to the database; replaces all other DATABASE_* env vars
  - DATABASE_USER: the user for authenticating a connection to the database
  - DATABASE_TEST_*: the same as the above, used when ENVIRONMENT is TESTING
  - ENVIRONMENT: the environment the application is running in; cf. [waypoint.Environment]
  - HOST: the host the application is running on; default: localhost
  - LOG_LEVEL: the level at which to begin logging; default: INFO; cf. [logger.LogLevel]
  - NEXT_PUBLIC_SUPABASE_ANON_KEY: the identity provider's public API key
  - NEXT_PUBLIC_SUPABASE_URL: the identity provider's project URL
  - PORT: the port the application should listen on; default: :3000
  - RATE_LIMIT_BURST: the requests a client may burst above RATE_LIMIT_RPS; default: 20
  - RATE_LIMIT_RPS: the requests per second a client may make; default: 10
  - REDIS_URL: the Redis instance rate limits are shared through; default: limits are kept in memory
  - SENTRY_DSN: the Sentry project errors are reported to; default: none
  - SERVER_IDLE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for idling between requests when using keep-alives; default: 120s
  - SERVER_READ_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for reading HTTP requests; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for writing HTTP responses; default: 5s
  - SUPABASE_JWT_AUDIENCE: the audience bearer tokens must be issued for; default: any
  - SUPABASE_JWT_SECRET: the secret bearer tokens are signed with

Migrations only run in the DEVELOPMENT and TESTING environments.
*/
package ranger
