package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an *Error.
type Kind string

// Error kinds.
const (
	// KindPlug means the caller passed a malformed argument. It is raised
	// before any request is sent.
	KindPlug Kind = "plug"
	// KindInvalidKey means the API rejected the key (HTTP 401).
	KindInvalidKey Kind = "invalid_key"
	// KindBadRequest means any other 4xx rejection.
	KindBadRequest Kind = "bad_request"
	// KindServer means a 5xx failure.
	KindServer Kind = "server"
	// KindTransport means the request never produced an HTTP response:
	// connection refused, DNS or TLS failure, cancelled context.
	KindTransport Kind = "transport"
)

// Sentinels for errors.Is. An *Error matches the sentinel of its Kind.
var (
	ErrPlug       = errors.New("invalid argument")
	ErrInvalidKey = errors.New("invalid API key")
	ErrBadRequest = errors.New("bad request")
	ErrServer     = errors.New("server error")
	ErrTransport  = errors.New("transport error")
)

func (k Kind) sentinel() error {
	switch k {
	case KindPlug:
		return ErrPlug
	case KindInvalidKey:
		return ErrInvalidKey
	case KindBadRequest:
		return ErrBadRequest
	case KindServer:
		return ErrServer
	case KindTransport:
		return ErrTransport
	}
	return nil
}

// Error is the single error type returned by Client operations. Every
// failure path of the client produces exactly one *Error, so
// errors.As(err, new(*Error)) catches any of them.
type Error struct {
	Kind    Kind
	Message string

	// Request context. Empty for KindPlug.
	Action Action
	Method string
	URL    string

	// Response context. StatusCode is zero when no response was received.
	StatusCode int
	Body       []byte

	// Cause is the underlying failure, if any.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		if s := e.Kind.sentinel(); s != nil {
			msg = s.Error()
		} else {
			msg = string(e.Kind)
		}
	}
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (HTTP %d)", msg, e.StatusCode)
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// AsError returns the *Error in err's chain, if any.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the Kind of the *Error in err's chain, or "" if there is none.
func KindOf(err error) Kind {
	if e, ok := AsError(err); ok {
		return e.Kind
	}
	return ""
}

// StatusCode returns the HTTP status carried by err, or zero.
func StatusCode(err error) int {
	if e, ok := AsError(err); ok {
		return e.StatusCode
	}
	return 0
}

func plugError(format string, a ...any) *Error {
	return &Error{Kind: KindPlug, Message: fmt.Sprintf(format, a...)}
}

// classify maps a transport failure for req into an *Error. A failure that
// is already an *Error is returned unchanged.
func classify(req *Request, err error) *Error {
	if e, ok := AsError(err); ok {
		return e
	}

	out := &Error{
		Action: req.Action,
		Method: req.Method,
		Cause:  err,
	}

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		out.Kind = KindTransport
		out.Message = fmt.Sprintf("%s %s failed", req.Method, req.Action)
		return out
	}

	out.URL = httpErr.URL
	out.StatusCode = httpErr.StatusCode
	out.Body = httpErr.Body
	// The HTTP error itself only repeats the status; keep its cause.
	out.Cause = httpErr.Err

	switch code := httpErr.StatusCode; {
	case code == 0:
		out.Kind = KindTransport
		out.Message = fmt.Sprintf("%s %s failed", req.Method, req.Action)
		if out.Cause == nil {
			out.Cause = httpErr
		}
	case code == http.StatusUnauthorized:
		out.Kind = KindInvalidKey
		out.Message = "invalid API key"
	case code >= 500:
		out.Kind = KindServer
		out.Message = fmt.Sprintf("%s: server error", req.Action)
	default:
		out.Kind = KindBadRequest
		out.Message = fmt.Sprintf("%s: request rejected", req.Action)
		if msg := apiErrorMessage(httpErr.Body); msg != "" {
			out.Message += ": " + msg
		}
	}
	return out
}

// isContextError reports whether err comes from a cancelled or expired context.
func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
