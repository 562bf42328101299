package resp

import (
	"fmt"
	"net/http"

	"github.com/xy-planning-network/waypoint/logger"
)

// A Fn is a functional option that mutates the state of the Response.
type Fn func(Responder, *Response) error

// A Response is the internal object a Responder response method builds while applying all
// functional options.
type Response struct {
	w       http.ResponseWriter
	r       *http.Request
	code    int
	data    any
	err     error
	header  http.Header
	logData map[string]any
	msg     string
	user    logger.LogUser
}

// Code sets the response status code.
func Code(c int) Fn {
	return func(_ Responder, r *Response) error {
		r.code = c
		return nil
	}
}

// Data stores the value to encode as JSON for the client.
func Data(d any) Fn {
	return func(_ Responder, r *Response) error {
		r.data = d
		return nil
	}
}

// Err sets the status code http.StatusInternalServerError and logs the error.
//
// The error itself is never written to the client.
func Err(e error) Fn {
	return func(_ Responder, r *Response) error {
		if e != nil {
			r.err = e
		}

		if r.code < http.StatusBadRequest {
			r.code = http.StatusInternalServerError
		}

		return nil
	}
}

// Header adds vals to the response's header key.
func Header(key string, vals ...string) Fn {
	return func(_ Responder, r *Response) error {
		if key == "" {
			return fmt.Errorf("%w: no header key", ErrMissingData)
		}

		for _, v := range vals {
			r.header.Add(key, v)
		}

		return nil
	}
}

// LogData adds data to the logger.LogContext of the error set by Err.
func LogData(data map[string]any) Fn {
	return func(_ Responder, r *Response) error {
		if r.logData == nil {
			r.logData = make(map[string]any)
		}

		for k, v := range data {
			r.logData[k] = v
		}

		return nil
	}
}

// Msg sets the client-facing message of the response, encoded as
//
//	{"message": "..."}
func Msg(msg string) Fn {
	return func(_ Responder, r *Response) error {
		r.msg = msg
		return nil
	}
}

// User sets the user the request is made on behalf of,
// used as the logger.LogContext.User of the error set by Err.
func User(u logger.LogUser) Fn {
	return func(_ Responder, r *Response) error {
		r.user = u
		return nil
	}
}
