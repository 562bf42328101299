package logger

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/getsentry/sentry-go"
)

var (
	// sensitiveHeaders carry credentials that never leave the app.
	sensitiveHeaders = []string{"Authorization", "Apikey", "Cookie"}

	// maskedParams are query params carrying credentials.
	maskedParams = []string{"access_token", "password", "refresh_token", "token"}
)

// A SentryLogger writes logs through a SkipLogger
// and reports the errors of warnings and above to Sentry.
type SentryLogger struct {
	l SkipLogger
}

// NewSentryLogger constructs a SentryLogger based off the provided AppLogger.
//
// Bearer tokens, API keys and cookies are scrubbed from events before they are sent.
func NewSentryLogger(tl *AppLogger, dsn string) Logger {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:          dsn,
		Environment:  tl.env,
		IgnoreErrors: []string{"write: broken pipe", "context canceled"},
		BeforeSend:   scrubEvent,
	})
	if err != nil {
		err = fmt.Errorf("unable to init Sentry: %s", err)
		tl.Error(err.Error(), nil)
		return tl
	}

	l := tl.AddSkip(1 + tl.Skip())
	return &SentryLogger{l: l}
}

// AddSkip replaces the current number of frames to scroll back
// when logging a message.
//
// Use Skip to get the current skip amount
// when needing to add to it with AddSkip.
func (sl *SentryLogger) AddSkip(i int) SkipLogger { return &SentryLogger{l: sl.l.AddSkip(i)} }

// Debug writes a debug log.
func (sl *SentryLogger) Debug(msg string, ctx *LogContext) { sl.l.Debug(msg, ctx) }

// Error writes an error log and sends it to Sentry.
func (sl *SentryLogger) Error(msg string, ctx *LogContext) {
	sl.l.Error(msg, ctx)
	sl.report(LogLevelError, ctx)
}

// Fatal writes a fatal log and sends it to Sentry.
func (sl *SentryLogger) Fatal(msg string, ctx *LogContext) {
	sl.l.Fatal(msg, ctx)
	sl.report(LogLevelFatal, ctx)
}

// Info writes an info log.
func (sl *SentryLogger) Info(msg string, ctx *LogContext) { sl.l.Info(msg, ctx) }

// Warn writes a warning log and sends it to Sentry.
func (sl *SentryLogger) Warn(msg string, ctx *LogContext) {
	sl.l.Warn(msg, ctx)
	sl.report(LogLevelWarn, ctx)
}

// LogLevel returns the LogLevel set for the SentryLogger.
func (sl *SentryLogger) LogLevel() LogLevel { return sl.l.LogLevel() }

// Skip returns the current amount of frames to scroll back
// when logging a message.
func (sl *SentryLogger) Skip() int { return sl.l.Skip() }

var sentryLevels = map[LogLevel]sentry.Level{
	LogLevelWarn:  sentry.LevelWarning,
	LogLevelError: sentry.LevelError,
	LogLevelFatal: sentry.LevelFatal,
}

// report captures ctx.Error in Sentry at level,
// unless level is below the SentryLogger's LogLevel.
//
// The user, request and data of ctx are attached to the event.
func (sl *SentryLogger) report(level LogLevel, ctx *LogContext) {
	if level < sl.l.LogLevel() || ctx == nil || ctx.Error == nil {
		return
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(sentryLevels[level])
		if ctx.User != nil {
			scope.SetUser(sentry.User{Email: ctx.User.GetEmail(), ID: ctx.User.GetID()})
		}

		if ctx.Request != nil {
			scope.SetRequest(ctx.Request)
			scope.SetTag("method", ctx.Request.Method)
			scope.SetTag("path", ctx.Request.URL.Path)
		}

		if ctx.Data != nil {
			scope.SetExtra("data", ctx.Data)
			if id, ok := ctx.Data["requestId"].(string); ok {
				scope.SetTag("request_id", id)
			}
		}

		sentry.CaptureException(ctx.Error)
	})
}

// scrubEvent removes credentials from the request attached to event.
func scrubEvent(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
	if event == nil || event.Request == nil {
		return event
	}

	event.Request.Cookies = ""
	for k := range event.Request.Headers {
		for _, sensitive := range sensitiveHeaders {
			if http.CanonicalHeaderKey(k) == sensitive {
				event.Request.Headers[k] = logMaskVal
			}
		}
	}

	if q, err := url.ParseQuery(event.Request.QueryString); err == nil {
		for _, key := range maskedParams {
			if q.Has(key) {
				q.Set(key, logMaskVal)
			}
		}
		event.Request.QueryString = q.Encode()
	}

	return event
}
