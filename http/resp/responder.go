package resp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/xy-planning-network/waypoint/logger"
)

const (
	jsonMediaType   = "application/json; charset=UTF-8"
	responderFrames = 2
)

// Responder maintains reusable pieces for responding to HTTP requests.
// It exposes methods for writing structured data as a JSON HTTP response.
//
// Most oftentimes, setting up a single instance of a Responder suffices for an application.
//
// When handling a specific HTTP request, calling code supplies additional data, structure,
// and so forth through Fn functions.
type Responder struct {
	logger logger.Logger

	// Pool of *bytes.Buffer to prerender responses into
	pool *sync.Pool
}

// NewResponder constructs a *Responder using the ResponderOptFns passed in.
func NewResponder(opts ...ResponderOptFn) *Responder {
	d := &Responder{
		pool: &sync.Pool{New: func() any { return new(bytes.Buffer) }},
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.logger == nil {
		d.logger = logger.NewLogger()
	}

	if l, ok := d.logger.(logger.SkipLogger); ok {
		d.logger = l.AddSkip(l.Skip() + responderFrames)
	}

	return d
}

// Err responds with the error status code set by Code,
// or http.StatusInternalServerError if none is, logging err.
//
// The client only receives the message set by Msg,
// or the status text of the code if none is.
func (doer *Responder) Err(w http.ResponseWriter, r *http.Request, err error, opts ...Fn) error {
	rr, nested := doer.do(w, r, append(opts, Err(err))...)
	if nested != nil {
		return nested
	}

	if rr.code < http.StatusBadRequest {
		rr.code = http.StatusInternalServerError
	}

	if rr.msg == "" {
		rr.msg = http.StatusText(rr.code)
	}

	return doer.write(w, rr, message{Message: rr.msg})
}

type message struct {
	Message string `json:"message"`
}

// Json responds with data in JSON format, setting appropriate headers.
//
// Data sets the value to encode. When no Data is set but Msg is, Json encodes
//
//	{"message": "..."}
//
// The default status code is 200.
func (doer *Responder) Json(w http.ResponseWriter, r *http.Request, opts ...Fn) error {
	rr, err := doer.do(w, r, opts...)
	if err != nil {
		return err
	}

	if rr.code == 0 {
		rr.code = http.StatusOK
	}

	var payload any = rr.data
	if payload == nil && rr.msg != "" {
		payload = message{Message: rr.msg}
	}

	return doer.write(w, rr, payload)
}

// write encodes payload and sends it, along with headers and status code, to the client.
func (doer *Responder) write(w http.ResponseWriter, rr *Response, payload any) error {
	b := doer.pool.Get().(*bytes.Buffer)
	b.Reset()
	defer doer.pool.Put(b)

	if err := json.NewEncoder(b).Encode(payload); err != nil {
		err = fmt.Errorf("can't encode %T: %w", payload, err)
		doer.logger.Error(err.Error(), newLogContext(rr.r, err, nil, rr.user))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return err
	}

	for k, vals := range rr.header {
		for _, v := range vals {
			w.Header().Add(k, v)
		}
	}

	w.Header().Set("Content-Type", jsonMediaType)
	w.WriteHeader(rr.code)
	if _, err := b.WriteTo(w); err != nil {
		return err
	}

	return nil
}

// do applies all options to the passed in http.ResponseWriter and *http.Request.
//
// Should all options apply successfully, do returns a validly formed *Response
// and logs the error set by Err, if any.
func (doer *Responder) do(w http.ResponseWriter, r *http.Request, opts ...Fn) (*Response, error) {
	resp := &Response{
		header: make(http.Header),
		w:      w,
		r:      r,
	}

	for _, opt := range opts {
		select {
		case <-r.Context().Done():
			return nil, fmt.Errorf("%w", ErrDone)
		default:
			if err := opt(*doer, resp); err != nil {
				return nil, err
			}
		}
	}

	if resp.err != nil {
		doer.logger.Error(resp.err.Error(), newLogContext(r, resp.err, resp.logData, resp.user))
	}

	return resp, nil
}
