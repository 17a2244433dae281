package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// An API operation Error details
type Error struct {
	// Machine-readable error identifier, e.g.: "jwt_auth_invalid_token"
	Id string `json:"id,omitempty"`
	// HTTP status code characteristic
	Code int32 `json:"code,omitempty"`
	// Status code class, e.g.: "UNAUTHORIZED"
	Status string `json:"status,omitempty"`
	// Human-readable error message
	Message string `json:"message,omitempty"`
}

var _ error = (*Error)(nil)

// wpError is the WordPress REST error body shape
//
//	{"code":"jwt_auth_invalid_token","message":"Invalid token provided.","data":{"status":403}}
type wpError struct {
	Id      string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Data    struct {
		Status int32 `json:"status,omitempty"`
	} `json:"data,omitempty"`
}

// Parse tries to parse a JSON string into an error. If that
// fails, it will set the given string as the error message.
func Parse(message string) (err *Error, ok bool) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, true
	}
	src := new(wpError)
	der := json.Unmarshal(
		[]byte(message), src,
	)
	if der != nil || src.Message == "" {
		// NOT a WordPress error body ; keep as-is
		src.Message = message
		src.Id, src.Data.Status = "", 0
	}
	err = &Error{
		Id:      src.Id,
		Message: src.Message,
	}
	if code := src.Data.Status; code > 0 {
		err.Code = code
		err.Status = statusClass(code)
	}
	return err, (der == nil)
}

// FromError normalizes any error value into an *Error.
func FromError(src error) (err *Error, ok bool) {
	if src == nil {
		return nil, true
	}
	switch src := src.(type) {
	case *Error:
		{
			return src, true
		}
	}
	return Parse(src.Error())
}

func (err *Error) Error() string {
	if err == nil {
		return ""
	}
	data, _ := json.Marshal(err)
	return string(data)
}

func (err *Error) String() string {

	if err == nil {
		return ""
	}

	var (
		indent string
		format strings.Builder
	)
	defer format.Reset()

	if err.Code > 0 {
		fmt.Fprintf(&format, "(#%d)", err.Code)
		indent = " "
	}

	if err.Status != "" {
		format.WriteString(indent)
		format.WriteString(err.Status)
		indent = " ; "
	}

	if err.Message != "" {
		format.WriteString(indent)
		format.WriteString(err.Message)
	}

	return format.String()
}

type Option func(err *Error)

// Error.Id Option
func Id(id string) Option {
	return func(err *Error) {
		if id != "" {
			err.Id = id
		}
	}
}

// Error.Code Option
func Code(code int32) Option {
	return func(err *Error) {
		if code > 0 {
			err.Code = code
		}
	}
}

// Error.Status Option
func Status(code string) Option {
	return func(err *Error) {
		if code != "" {
			err.Status = code
		}
	}
}

func Message(form string, args ...any) Option {
	return func(err *Error) {
		text := form
		if len(args) > 0 {
			if form == "" {
				text = fmt.Sprint(args...)
			} else {
				text = fmt.Sprintf(form, args...)
			}
		}
		err.Message = text
	}
}

func New(opts ...Option) (err *Error) {
	err = &Error{}
	err.init(opts)
	return // err
}

func (err *Error) init(opts []Option) {
	for _, setup := range opts {
		setup(err)
	}
}

func Errorf(message string, args ...any) *Error {
	return New(Message(message, args...))
}

// (#401) UNAUTHORIZED
//
//	 New(
//		Status("UNAUTHORIZED"),
//		Code(http.StatusUnauthorized),
//		opts...,
//	)
func Unauthorized(opts ...Option) *Error {
	err := New(
		Status("UNAUTHORIZED"),
		Code(http.StatusUnauthorized),
	)
	err.init(opts)
	return err
}

// (#403) FORBIDDEN
func Forbidden(opts ...Option) *Error {
	err := New(
		Status("FORBIDDEN"),
		Code(http.StatusForbidden),
	)
	err.init(opts)
	return err
}

// (#400) BAD_REQUEST
func BadRequest(opts ...Option) *Error {
	err := New(
		Status("BAD_REQUEST"),
		Code(http.StatusBadRequest),
	)
	err.init(opts)
	return err
}

// (#404) NOT_FOUND
func NotFound(opts ...Option) *Error {
	err := New(
		Status("NOT_FOUND"),
		Code(http.StatusNotFound),
	)
	err.init(opts)
	return err
}

// (#503) UNAVAILABLE
func Unavailable(opts ...Option) *Error {
	err := New(
		Status("UNAVAILABLE"),
		Code(http.StatusServiceUnavailable),
	)
	err.init(opts)
	return err
}

// (#500) CONFIG ; invalid client configuration, fatal to ALL requests
func Config(opts ...Option) *Error {
	err := New(
		Status("CONFIG"),
		Code(http.StatusInternalServerError),
	)
	err.init(opts)
	return err
}

// (#503) NETWORK ; no response received at all
func Network(opts ...Option) *Error {
	err := New(
		Status("NETWORK"),
		Code(http.StatusServiceUnavailable),
	)
	err.init(opts)
	return err
}
