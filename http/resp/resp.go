package resp

import (
	"errors"
	"net/http"

	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/logger"
)

var (
	ErrDone        = errors.New("request ctx done")
	ErrMissingData = errors.New("missing data")
)

// newLogContext structures a logger.LogContext from the parts of a failed response.
//
// The ID middleware.RequestID stores in the context of r is logged under "requestId".
func newLogContext(r *http.Request, err error, data map[string]any, user logger.LogUser) *logger.LogContext {
	if r == nil && err == nil && data == nil && user == nil {
		return nil
	}

	lc := &logger.LogContext{Error: err, Request: r, User: user}
	if len(data) > 0 {
		lc.Data = make(map[string]any, len(data)+1)
		for k, v := range data {
			lc.Data[k] = v
		}
	}

	if r == nil {
		return lc
	}

	if id, ok := r.Context().Value(waypoint.RequestIDKey).(string); ok {
		if lc.Data == nil {
			lc.Data = make(map[string]any, 1)
		}
		lc.Data["requestId"] = id
	}

	return lc
}
