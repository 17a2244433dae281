package model

import (
	"net/http"
	"net/textproto"
)

// HTTP/1.* well-known headers
// net/textproto.CanonicalMIMEHeaderKey()
const (
	H1_Accept        = "Accept"
	H1_Authorization = "Authorization"
	H1_Content_Type  = "Content-Type"
	H1_User_Agent    = "User-Agent"
	// Per-request operation id ; logging correlation
	H1_X_Request_ID = "X-Request-Id"
)

// Authorization: Bearer <token> ; scheme prefix
const BearerSchema = "Bearer "

func Coalesce[T comparable](vs ...T) T {
	var zero T
	for _, v := range vs {
		if v != zero {
			return v
		}
	}
	return zero
}

func CoalesceLast[T comparable](vs ...T) T {
	var zero T
	for n := len(vs) - 1; n >= 0; n-- {
		if vs[n] != zero {
			return vs[n]
		}
	}
	return zero
}

func GetHeaderH1(h1 http.Header, key string) string {
	if h1 != nil {
		key = textproto.CanonicalMIMEHeaderKey(key)
		return CoalesceLast(h1[key]...)
	}
	return ""
}
