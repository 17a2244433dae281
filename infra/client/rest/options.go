package rest

import (
	"log/slog"
	"net/http"
	"time"
)

// TokenSource supplies the current bearer credential.
// Synchronous ; consulted on every outbound request.
type TokenSource interface {
	// Token returns the bearer credential ; "" ⇒ unauthenticated
	Token() string
}

// TokenSourceFunc implements TokenSource interface
type TokenSourceFunc func() string

func (fn TokenSourceFunc) Token() string {
	if fn != nil {
		return fn()
	}
	return ""
}

// REST Client Options
type Options struct {
	// Resolved API base URL ; "" ⇒ configuration error
	BaseURL string
	// Logger for this Client
	Logger *slog.Logger
	// Bearer credential supplier ; OPTIONAL
	Credentials TokenSource
	// Session-expiry hook ; invoked on 401/403 responses with the
	// bearer the rejected request was sent under. MUST be idempotent:
	// concurrent expired requests all call it, and the receiver MUST
	// ignore a token that is no longer the current session's.
	OnSessionExpired func(token string)
	// User-Agent product token
	UserAgent string
	// Underlying transport ; OPTIONAL
	HTTPClient *http.Client
	// Per-request timeout when the context has no deadline
	Timeout time.Duration
}

type Option func(opts *Options)

func WithBaseURL(rawURL string) Option {
	return func(opts *Options) {
		opts.BaseURL = rawURL
	}
}

func WithCredentials(source TokenSource) Option {
	return func(opts *Options) {
		opts.Credentials = source
	}
}

func WithSessionExpiredHook(hook func(token string)) Option {
	return func(opts *Options) {
		opts.OnSessionExpired = hook
	}
}

func WithUserAgent(product string) Option {
	return func(opts *Options) {
		opts.UserAgent = product
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(opts *Options) {
		opts.HTTPClient = client
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(opts *Options) {
		if timeout > 0 {
			opts.Timeout = timeout
		}
	}
}

func newOptions(logger *slog.Logger, opts []Option) (spec Options) {
	spec = Options{
		Logger:    logger,
		UserAgent: "vandapay-cli",
		Timeout:   time.Second * 30,
	}
	for _, option := range opts {
		option(&spec)
	}
	if spec.Logger == nil {
		spec.Logger = slog.Default()
	}
	if spec.HTTPClient == nil {
		spec.HTTPClient = &http.Client{}
	}
	return // spec
}
