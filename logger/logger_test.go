package logger_test

import (
	"bytes"
	"errors"
	"io"
	"log"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waypoint/logger"
)

var (
	logLevelRegexp = regexp.MustCompile(`^\[[A-Z]+\]`)
	fpRegexp       = regexp.MustCompile(`logger/logger_test\.go:\d+`)
	msgRegexp      = regexp.MustCompile(`'(.*)'`)
)

func newTestLogger(w io.Writer) *log.Logger {
	return log.New(w, "", 0)
}

func TestNewLogLevel(t *testing.T) {
	for _, tc := range []struct {
		input    string
		expected logger.LogLevel
	}{
		{"", logger.LogLevelUnk},
		{"DEBUG", logger.LogLevelDebug},
		{"INFO", logger.LogLevelInfo},
		{"WARN", logger.LogLevelWarn},
		{"ERROR", logger.LogLevelError},
		{"FATAL", logger.LogLevelFatal},
		{"warn", logger.LogLevelWarn},
		{"verbose", logger.LogLevelUnk},
	} {
		t.Run(tc.input, func(t *testing.T) {
			require.Equal(t, tc.expected, logger.NewLogLevel(tc.input))
		})
	}
}

func TestLogLevelString(t *testing.T) {
	require.Equal(t, "[WARN]", logger.LogLevelWarn.String())
	require.Equal(t, "[UNK]", logger.LogLevelUnk.String())
	require.Equal(t, "[UNK]", logger.LogLevel(42).String())
}

func TestAppLoggerLevels(t *testing.T) {
	for _, tc := range []struct {
		name     string
		level    logger.LogLevel
		log      func(l logger.Logger)
		expected string
	}{
		{"Debug-At-Debug", logger.LogLevelDebug, func(l logger.Logger) { l.Debug("hi", nil) }, "[DEBUG]"},
		{"Debug-At-Info", logger.LogLevelInfo, func(l logger.Logger) { l.Debug("hi", nil) }, ""},
		{"Info-At-Info", logger.LogLevelInfo, func(l logger.Logger) { l.Info("hi", nil) }, "[INFO]"},
		{"Warn-At-Error", logger.LogLevelError, func(l logger.Logger) { l.Warn("hi", nil) }, ""},
		{"Error-At-Warn", logger.LogLevelWarn, func(l logger.Logger) { l.Error("hi", nil) }, "[ERROR]"},
		{"Fatal-At-Fatal", logger.LogLevelFatal, func(l logger.Logger) { l.Fatal("hi", nil) }, "[FATAL]"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			b := new(bytes.Buffer)
			l := logger.NewLogger(logger.WithLevel(tc.level), logger.WithLogger(newTestLogger(b)))

			// Act
			tc.log(l)

			// Assert
			if tc.expected == "" {
				require.Zero(t, b.Len())
				return
			}

			require.Equal(t, tc.expected, logLevelRegexp.FindString(stripColor(b.String())))
			require.Regexp(t, fpRegexp, b.String())
			require.Equal(t, "'hi'", msgRegexp.FindString(b.String()))
		})
	}
}

func TestAppLoggerLogContext(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	l := logger.NewLogger(logger.WithLogger(newTestLogger(b)))

	// Act
	l.Error("oops", &logger.LogContext{Caller: "somewhere.go:1", Error: errors.New("boom")})

	// Assert
	require.Contains(t, b.String(), "somewhere.go:1")
	require.Contains(t, b.String(), `log_context: {"error":"boom"}`)
}

func TestAppLoggerAddSkip(t *testing.T) {
	// Arrange
	l := logger.NewLogger().(logger.SkipLogger)

	// Act
	skipped := l.AddSkip(2)

	// Assert
	require.Zero(t, l.Skip())
	require.Equal(t, 2, skipped.Skip())
}

var colorCodes = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripColor(s string) string { return colorCodes.ReplaceAllString(s, "") }
