package navhistory

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"
)

// ErrSessionClosed is returned by Session operations after Close.
var ErrSessionClosed = errors.New("navhistory: session closed")

// Host is a router a Session can bind to.
type Host interface {
	Navigator
	Current() string
	Screens() []string
	OnChange(fn func(current string)) (unsubscribe func())
}

// Session scopes one Tracker to one router for the lifetime of a navigation
// scope. It subscribes the tracker to the router's change notifications so
// screen changes made outside the tracker are observed.
type Session struct {
	id          string
	host        Host
	tracker     *Tracker
	unsubscribe func()
	closed      bool
	logger      *slog.Logger
}

// WithSessionID overrides the generated session identifier.
func WithSessionID(id string) Option {
	return func(o *options) {
		o.id = id
	}
}

// NewSession creates a Session seeded with the host's current screen.
func NewSession(host Host, opts ...Option) *Session {
	o := buildOptions(opts)
	if o.id == "" {
		o.id = uuid.NewString()
	}
	logger := o.logger.With("session", o.id)

	s := &Session{
		id:      o.id,
		host:    host,
		tracker: New(host, host.Current(), WithLogger(logger)),
		logger:  logger,
	}
	s.unsubscribe = host.OnChange(s.tracker.Observe)
	logger.Debug("navigation session opened", "screen", host.Current())
	return s
}

// ID returns the session identifier used in log records.
func (s *Session) ID() string {
	return s.id
}

// NavigateTo moves the bound router to target. See Tracker.NavigateTo.
func (s *Session) NavigateTo(target string) error {
	if s.closed {
		return ErrSessionClosed
	}
	s.tracker.NavigateTo(target)
	return nil
}

// Plan reports what NavigateTo(target) would do.
func (s *Session) Plan(target string) Decision {
	return s.tracker.Plan(target)
}

// Observe records an external screen change directly, for routers that
// cannot deliver change notifications.
func (s *Session) Observe(current string) error {
	if s.closed {
		return ErrSessionClosed
	}
	s.tracker.Observe(current)
	return nil
}

// CurrentScreen returns the latest observed current screen.
func (s *Session) CurrentScreen() string {
	return s.tracker.CurrentScreen()
}

// History returns a copy of the tracked history.
func (s *Session) History() []string {
	return s.tracker.History()
}

// Resync replaces the tracked history with the router's actual stack.
func (s *Session) Resync() error {
	if s.closed {
		return ErrSessionClosed
	}
	s.tracker.Resync(s.host.Screens())
	return nil
}

// Close detaches the session from the router. Safe to call more than once.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.unsubscribe()
	s.logger.Debug("navigation session closed", "depth", s.tracker.Len())
}
