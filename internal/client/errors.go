package client

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"
)

// Kind classifies every failure the client can report
type Kind int

const (
	// KindUnknown is returned by KindOf for errors not produced by this package
	KindUnknown Kind = iota
	// KindTransport means the request never produced an HTTP response
	KindTransport
	// KindUnauthorized is a 401; the session has already been cleared
	KindUnauthorized
	// KindServer is a non-success status whose body carried a detail message
	KindServer
	// KindUnparseable is a non-success status without a usable detail message
	KindUnparseable
	// KindDecode means a success body did not match the expected type
	KindDecode
	// KindEncode means the request payload could not be marshalled
	KindEncode
)

// DefaultErrorMessage is used when an error body has no detail
const DefaultErrorMessage = "request failed"

// String returns a short name for the kind
func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindUnauthorized:
		return "unauthorized"
	case KindServer:
		return "server"
	case KindUnparseable:
		return "unparseable"
	case KindDecode:
		return "decode"
	case KindEncode:
		return "encode"
	default:
		return "unknown"
	}
}

// Error is the only error type returned by the client
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of err, or KindUnknown if err is not an *Error
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// StatusOf returns the HTTP status carried by err, or 0
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}

// errorFromBody builds the error for a non-success response
func errorFromBody(status int, body []byte, fallback string) *Error {
	if fallback == "" {
		fallback = DefaultErrorMessage
	}

	msg, ok := extractDetail(body)
	kind := KindServer
	if !ok {
		msg = fallback
		kind = KindUnparseable
	}
	if status == 401 {
		kind = KindUnauthorized
	}

	return &Error{Kind: kind, Status: status, Message: msg}
}

// extractDetail reads the "detail" field of an error body. Validation errors in
// the form {"detail": [{"msg": "..."}, ...]} are joined with "; ".
func extractDetail(body []byte) (string, bool) {
	if len(body) == 0 || !gjson.ValidBytes(body) {
		return "", false
	}

	detail := gjson.GetBytes(body, "detail")
	switch {
	case detail.Type == gjson.String:
		if detail.Str == "" {
			return "", false
		}
		return detail.Str, true
	case detail.IsArray():
		var msgs []string
		for _, item := range detail.Array() {
			if m := item.Get("msg"); m.Type == gjson.String && m.Str != "" {
				msgs = append(msgs, m.Str)
			} else if item.Type == gjson.String && item.Str != "" {
				msgs = append(msgs, item.Str)
			}
		}
		if len(msgs) == 0 {
			return "", false
		}
		return strings.Join(msgs, "; "), true
	}
	return "", false
}
