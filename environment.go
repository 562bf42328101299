package waypoint

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/xy-planning-network/waypoint/logger"
)

// An Environment is a different context in which waypoint operates.
//
// Outside Development and Testing, the scheduling platform owns the database schema
// and waypoint only reads from it.
type Environment string

const (
	Development Environment = "DEVELOPMENT"
	Production  Environment = "PRODUCTION"
	Review      Environment = "REVIEW"
	Staging     Environment = "STAGING"
	Testing     Environment = "TESTING"
)

func (e Environment) String() string { return string(e) }

// Valid asserts e is a known Environment, returning ErrNotValid otherwise.
func (e Environment) Valid() error {
	switch e {
	case Development, Production, Review, Staging, Testing:
		return nil
	default:
		return ErrNotValid
	}
}

func (e Environment) IsDevelopment() bool {
	return e == Development
}

func (e Environment) IsProduction() bool {
	return e == Production
}

func (e Environment) IsTesting() bool {
	return e == Testing
}

// OwnsSchema asserts whether waypoint creates and migrates the tables it reads in e.
func (e Environment) OwnsSchema() bool {
	return e == Development || e == Testing
}

// envVarOr parses the environment variable key with parse,
// returning def when key is unset or fails to parse.
func envVarOr[T any](key string, def T, parse func(string) (T, error)) T {
	val := os.Getenv(key)
	if val == "" {
		return def
	}

	v, err := parse(val)
	if err != nil {
		return def
	}

	return v
}

// EnvVarOrBool gets the environment variable for the provided key
// as a bool, per strconv.ParseBool, or returns def.
func EnvVarOrBool(key string, def bool) bool {
	return envVarOr(key, def, strconv.ParseBool)
}

// EnvVarOrDuration gets the environment variable for the provided key
// as a [time.Duration], e.g., "250ms", or returns def.
func EnvVarOrDuration(key string, def time.Duration) time.Duration {
	return envVarOr(key, def, time.ParseDuration)
}

// EnvVarOrEnv gets the environment variable for the provided key
// as an [Environment], case-insensitively, or returns def.
func EnvVarOrEnv(key string, def Environment) Environment {
	return envVarOr(key, def, func(val string) (Environment, error) {
		env := Environment(strings.ToUpper(val))
		return env, env.Valid()
	})
}

// EnvVarOrInt gets the environment variable for the provided key as an int or returns def.
func EnvVarOrInt(key string, def int) int {
	return envVarOr(key, def, strconv.Atoi)
}

// EnvVarOrLogLevel gets the environment variable for the provided key
// as a [logger.LogLevel], case-insensitively, or returns def.
func EnvVarOrLogLevel(key string, def logger.LogLevel) logger.LogLevel {
	return envVarOr(key, def, func(val string) (logger.LogLevel, error) {
		ll := logger.NewLogLevel(val)
		if ll == logger.LogLevelUnk {
			return ll, ErrNotValid
		}

		return ll, nil
	})
}

// EnvVarOrString gets the environment variable for the provided key or returns def.
func EnvVarOrString(key, def string) string {
	return envVarOr(key, def, func(val string) (string, error) { return val, nil })
}

// EnvVarOrURL gets the environment variable for the provided key as a *url.URL
// or returns def parsed, with its path reset to "/".
//
// If def does not parse, EnvVarOrURL returns nil.
func EnvVarOrURL(key, def string) *url.URL {
	defURL, err := url.ParseRequestURI(def)
	if err != nil {
		return nil
	}
	defURL.Path = "/"

	return envVarOr(key, defURL, url.ParseRequestURI)
}
