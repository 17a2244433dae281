package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mrhaji1999/vandapay-sub001/infra/log/slogx"
	"github.com/mrhaji1999/vandapay-sub001/internal/errors"
	"github.com/mrhaji1999/vandapay-sub001/internal/model"
)

// ProfileFetcher issues one outbound profile request
// authorized by [token].
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, token string) (*model.UserProfile, error)
}

// ProfileFetcherFunc implements ProfileFetcher interface
type ProfileFetcherFunc func(ctx context.Context, token string) (*model.UserProfile, error)

func (fn ProfileFetcherFunc) FetchProfile(ctx context.Context, token string) (*model.UserProfile, error) {
	return fn(ctx, token)
}

// FetchProfile outcome tag
type FetchOutcome string

const (
	// Profile fetched, normalized and stored
	FetchSuccess FetchOutcome = "success"
	// No token set ; no network call was made
	FetchNoToken FetchOutcome = "no_token"
	// Authenticated request answered 404 ; principal unknown
	FetchNotFound FetchOutcome = "not_found"
	// Network failure, non-2xx or malformed body
	FetchTransportError FetchOutcome = "transport"
	// Session epoch moved while the request was in flight ;
	// response discarded, state unchanged
	FetchStale FetchOutcome = "stale"
)

// ProfileResult is the soft-failure outcome of Store.FetchProfile.
type ProfileResult struct {
	Outcome FetchOutcome
	User    *model.UserProfile
	Cause   error
}

// Profile returns the fetched profile, nil unless FetchSuccess.
func (r ProfileResult) Profile() *model.UserProfile {
	if r.Outcome == FetchSuccess {
		return r.User
	}
	return nil
}

// Store holds the current bearer token and normalized user profile.
//
// Exactly one Store exists per process, injected where needed ;
// it is the single writer of the durable credentials record.
// Each login lifetime is identified by a monotonically increasing
// epoch ; responses arriving from a stale epoch are discarded.
type Store struct {
	mu    sync.Mutex
	state model.Session
	epoch uint64
	opts  Options
}

// Store Options
type Options struct {
	// Durable credentials record path ; "" ⇒ memory only
	File string
	// Logger for this Store
	Logger *slog.Logger
	// Clock source
	Clock model.Clock
	// Profile request issuer ; MAY be bound later, see Store.Bind
	Fetcher ProfileFetcher
}

type Option func(opts *Options)

func WithFile(path string) Option {
	return func(opts *Options) {
		opts.File = path
	}
}

func WithClock(clock model.Clock) Option {
	return func(opts *Options) {
		opts.Clock = clock
	}
}

func WithFetcher(fetch ProfileFetcher) Option {
	return func(opts *Options) {
		opts.Fetcher = fetch
	}
}

func NewStore(logger *slog.Logger, opts ...Option) (*Store, error) {

	spec := Options{
		Logger: logger,
		Clock:  model.LocalTime,
	}
	for _, option := range opts {
		option(&spec)
	}
	if spec.Logger == nil {
		spec.Logger = slog.Default()
	}

	s := &Store{opts: spec}

	// restore persisted session, if any
	state, err := loadSessionFile(spec.File)
	if err != nil {
		// unreadable record is dropped, not fatal
		spec.Logger.Warn("session: discarding unreadable credentials record",
			slog.String("file", spec.File),
			slog.Any("err", err),
		)
	}
	if state != nil {
		s.state = *state
	}

	return s, nil
}

// Bind assigns the profile request issuer.
// Breaks the construction cycle: the API client needs this
// Store as its token source, this Store needs the API client
// to fetch profiles.
func (s *Store) Bind(fetch ProfileFetcher) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opts.Fetcher = fetch
}

// Token is the synchronous bearer accessor, usable from
// the HTTP client's request path. "" ⇒ unauthenticated.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Token
}

// User returns the cached profile ; MAY be nil while authenticated.
func (s *Store) User() *model.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.User
}

// Authenticated reports token presence ; authoritative.
func (s *Store) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Authenticated()
}

// Epoch identifies the current login lifetime.
func (s *Store) Epoch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.epoch
}

// Session returns a snapshot of the current session state.
func (s *Store) Session() *model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := s.state
	return &snapshot
}

// SetToken replaces the stored token and persists the session.
// A changed token starts a new login lifetime: the cached user
// is dropped and the epoch advances. Does NOT fetch the profile ;
// that is the caller's responsibility.
func (s *Store) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Token == token {
		return // no-op
	}

	s.epoch++
	if token == "" {
		s.state = model.Session{}
		s.removeLocked()
		return
	}
	s.state.Token = token
	s.state.User = nil
	s.state.Date = s.opts.Clock.Now()
	s.persistLocked()
}

// SetUser replaces the cached profile and persists the session.
func (s *Store) SetUser(user *model.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.User = user
	s.persistLocked()
}

// Logout clears token and user and removes the durable record.
// Idempotent ; reports whether there was a session to destroy.
func (s *Store) Logout() (ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Authenticated() && s.state.User == nil {
		return false // already logged out
	}

	s.epoch++
	s.state = model.Session{}
	s.removeLocked()
	return true
}

// Expire destroys the session iff it still holds [token].
// A 401 answered to a request sent under an older token MUST NOT
// destroy a session re-established while that request was in
// flight. Idempotent ; reports whether a session was destroyed.
func (s *Store) Expire(token string) (ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token == "" || s.state.Token != token {
		return false // stale credential ; current session survives
	}

	s.epoch++
	s.state = model.Session{}
	s.removeLocked()
	return true
}

// FetchProfile issues one profile request using the current token.
//
// Safe to call with no token set: returns immediately, zero network
// calls. On failure the session state is left unchanged and a warning
// is logged ; no error ever propagates to the caller. A response that
// lands after the session epoch moved (logout, re-login) is discarded.
func (s *Store) FetchProfile(ctx context.Context) ProfileResult {

	s.mu.Lock()
	token := s.state.Token
	epoch := s.epoch
	fetch := s.opts.Fetcher
	s.mu.Unlock()

	if token == "" {
		return ProfileResult{Outcome: FetchNoToken}
	}
	if fetch == nil {
		return ProfileResult{
			Outcome: FetchTransportError,
			Cause:   errors.Errorf("session: no profile fetcher bound"),
		}
	}

	user, err := fetch.FetchProfile(ctx, token)

	if err != nil {
		outcome := FetchTransportError
		if errors.IsNotFound(err) {
			outcome = FetchNotFound
		}
		s.opts.Logger.Warn("session: profile fetch failed",
			slogx.Token("bearer", token),
			slog.Any("err", err),
		)
		return ProfileResult{Outcome: outcome, Cause: err}
	}

	if user == nil {
		// 2xx with an unusable body
		s.opts.Logger.Warn("session: profile response malformed")
		return ProfileResult{
			Outcome: FetchTransportError,
			Cause:   errors.Errorf("session: profile response malformed"),
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.epoch != epoch {
		// session was destroyed or replaced while in flight ;
		// do NOT resurrect it
		s.opts.Logger.Warn("session: stale profile response discarded",
			slog.Uint64("epoch", epoch),
			slog.Uint64("current", s.epoch),
		)
		return ProfileResult{Outcome: FetchStale, User: user}
	}

	s.state.User = user
	s.persistLocked()

	return ProfileResult{Outcome: FetchSuccess, User: user}
}
