package resp_test

import (
	"bytes"
	"fmt"

	"github.com/xy-planning-network/waypoint/logger"
)

const jsonMediaType = "application/json; charset=UTF-8"

type testLogger struct {
	b   *bytes.Buffer
	ctx **logger.LogContext
}

func newLogger() testLogger {
	return testLogger{b: new(bytes.Buffer), ctx: new(*logger.LogContext)}
}

func (tl testLogger) Debug(msg string, _ *logger.LogContext) { fmt.Fprint(tl.b, msg) }
func (tl testLogger) Error(msg string, ctx *logger.LogContext) {
	fmt.Fprint(tl.b, msg)
	*tl.ctx = ctx
}
func (tl testLogger) Fatal(msg string, _ *logger.LogContext) { fmt.Fprint(tl.b, msg) }
func (tl testLogger) Info(msg string, _ *logger.LogContext)  { fmt.Fprint(tl.b, msg) }
func (tl testLogger) Warn(msg string, _ *logger.LogContext)  { fmt.Fprint(tl.b, msg) }
func (tl testLogger) LogLevel() logger.LogLevel              { return logger.LogLevelDebug }

type testUser struct{}

func (testUser) GetID() string    { return "abc" }
func (testUser) GetEmail() string { return "husserl@example.com" }
