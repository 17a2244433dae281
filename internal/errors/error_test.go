package errors

import (
	"context"
	"fmt"
	"net/http"
	"testing"
)

func TestParse(test *testing.T) {
	tests := []struct {
		name    string
		message string
		want    *Error
		wantOk  bool
	}{
		{
			name:    "wordpress error body",
			message: `{"code":"jwt_auth_invalid_token","message":"Invalid token provided.","data":{"status":403}}`,
			want: &Error{
				Id:      "jwt_auth_invalid_token",
				Code:    http.StatusForbidden,
				Status:  "FORBIDDEN",
				Message: "Invalid token provided.",
			},
			wantOk: true,
		},
		{
			name:    "plain text",
			message: "connection refused",
			want: &Error{
				Message: "connection refused",
			},
			wantOk: false,
		},
		{
			name:    "json without message",
			message: `{"code":"broken"}`,
			want: &Error{
				Message: `{"code":"broken"}`,
			},
			wantOk: true,
		},
		{
			name:    "blank",
			message: "   ",
			want:    nil,
			wantOk:  true,
		},
	}
	for _, tt := range tests {
		test.Run(tt.name, func(test *testing.T) {
			got, ok := Parse(tt.message)
			if ok != tt.wantOk {
				test.Errorf("Parse() ok = %v, want %v", ok, tt.wantOk)
			}
			if (got == nil) != (tt.want == nil) {
				test.Fatalf("Parse() = %+v, want %+v", got, tt.want)
			}
			if got != nil && *got != *tt.want {
				test.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestErrorString(test *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "full",
			err: Unauthorized(
				Message("authentication required"),
			),
			want: "(#401) UNAUTHORIZED ; authentication required",
		},
		{
			name: "message only",
			err:  Errorf("something went wrong"),
			want: "something went wrong",
		},
		{
			name: "nil",
			err:  nil,
			want: "",
		},
	}
	for _, tt := range tests {
		test.Run(tt.name, func(test *testing.T) {
			if got := tt.err.String(); got != tt.want {
				test.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPredicates(test *testing.T) {

	if !IsAuthentication(Unauthorized()) {
		test.Error("IsAuthentication(Unauthorized()) = false")
	}
	if IsAuthentication(Forbidden()) {
		test.Error("IsAuthentication(Forbidden()) = true")
	}
	if !IsAuthorization(Forbidden()) {
		test.Error("IsAuthorization(Forbidden()) = false")
	}
	if !IsNotFound(NotFound()) {
		test.Error("IsNotFound(NotFound()) = false")
	}
	if !IsConfig(Config()) {
		test.Error("IsConfig(Config()) = false")
	}
	if !IsNetwork(Network()) {
		test.Error("IsNetwork(Network()) = false")
	}
	if IsNetwork(fmt.Errorf("not classified")) {
		test.Error("IsNetwork(plain) = true")
	}

	// *Error round-trips through the error interface
	var err error = Unauthorized(Id("jwt_auth_invalid_token"))
	if !IsAuthentication(err) {
		test.Error("IsAuthentication(error) = false")
	}
	e, ok := FromError(err)
	if !ok || e.Id != "jwt_auth_invalid_token" {
		test.Errorf("FromError() = (%+v, %v)", e, ok)
	}
}

func TestFromTransport(test *testing.T) {
	tests := []struct {
		name   string
		err    error
		wantId string
	}{
		{name: "canceled", err: context.Canceled, wantId: "request_canceled"},
		{name: "deadline", err: context.DeadlineExceeded, wantId: "request_timeout"},
		{name: "generic", err: fmt.Errorf("dial tcp: connection refused"), wantId: "network_error"},
	}
	for _, tt := range tests {
		test.Run(tt.name, func(test *testing.T) {
			got := FromTransport(tt.err)
			if got == nil || got.Id != tt.wantId {
				test.Errorf("FromTransport() = %+v, want id %q", got, tt.wantId)
			}
			if !IsNetwork(got) {
				test.Errorf("IsNetwork(FromTransport()) = false")
			}
		})
	}
	if got := FromTransport(nil); got != nil {
		test.Errorf("FromTransport(nil) = %+v", got)
	}
}
