package errors

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"os"
)

// map[http]status class
var statusMap = map[int32]string{
	// [400]x
	http.StatusBadRequest:         "BAD_REQUEST",
	http.StatusUnauthorized:       "UNAUTHORIZED",
	http.StatusForbidden:          "FORBIDDEN",
	http.StatusNotFound:           "NOT_FOUND",
	http.StatusMethodNotAllowed:   "FORBIDDEN",
	http.StatusRequestTimeout:     "TIMEOUT",
	http.StatusConflict:           "CONFLICT",
	http.StatusPreconditionFailed: "PRECONDITION_FAILED",
	http.StatusTooManyRequests:    "RATE_LIMITED",
	// [500]x
	http.StatusInternalServerError:           "INTERNAL",
	http.StatusNotImplemented:                "NOT_IMPLEMENTED",
	http.StatusBadGateway:                    "UNAVAILABLE",
	http.StatusGatewayTimeout:                "TIMEOUT",
	http.StatusServiceUnavailable:            "UNAVAILABLE",
	http.StatusNetworkAuthenticationRequired: "UNAUTHORIZED",
}

func statusClass(code int32) string {
	if code < 0 {
		code *= -1 // make positive !
	}
	if class, ok := statusMap[code]; ok {
		return class
	}
	switch {
	case 400 <= code && code < 500: // Client-side
		return "BAD_REQUEST"
	case 500 <= code: // Server-side
		return "INTERNAL"
	}
	return "UNKNOWN"
}

// IsAuthentication reports whether [err] indicates
// an authentication (401) failure. Session must be destroyed.
func IsAuthentication(err error) bool {
	e, _ := FromError(err)
	return e != nil && e.Code == http.StatusUnauthorized
}

// IsAuthorization reports whether [err] indicates
// an authorization (403 ; role mismatch) failure.
func IsAuthorization(err error) bool {
	e, _ := FromError(err)
	return e != nil && e.Code == http.StatusForbidden
}

// IsNetwork reports whether [err] indicates
// a transport failure: request sent, no response received.
func IsNetwork(err error) bool {
	e, _ := FromError(err)
	return e != nil && e.Status == "NETWORK"
}

// IsConfig reports whether [err] indicates
// an invalid client configuration, fatal to all requests.
func IsConfig(err error) bool {
	e, _ := FromError(err)
	return e != nil && e.Status == "CONFIG"
}

// IsNotFound reports whether [err] indicates a missing (404) resource.
func IsNotFound(err error) bool {
	e, _ := FromError(err)
	return e != nil && e.Code == http.StatusNotFound
}

// FromTransport converts a round-trip error into its canonical *Error. Note that
// this is only used to translate errors raised BEFORE any response was received.
func FromTransport(err error) *Error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled):
		return Network(
			Id("request_canceled"),
			Message("request canceled"),
		)
	case errors.Is(err, context.DeadlineExceeded):
		return Network(
			Id("request_timeout"),
			Message("request timed out"),
		)
	case errors.Is(err, io.ErrUnexpectedEOF):
		return Network(
			Id("connection_reset"),
			Message("connection closed unexpectedly"),
		)
	case errors.Is(err, os.ErrDeadlineExceeded):
		return Network(
			Id("request_timeout"),
			Message("request timed out"),
		)
	}
	var neterr net.Error
	if errors.As(err, &neterr) && neterr.Timeout() {
		return Network(
			Id("request_timeout"),
			Message("request timed out"),
		)
	}
	return Network(
		Id("network_error"),
		Message("network error: %v", err),
	)
}
