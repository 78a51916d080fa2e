package router

import (
	"log/slog"
	"slices"
	"time"

	"go.uber.org/atomic"

	"github.com/jhncrl04/smartspeak-sub001/pkg/smartspeak/constants"
)

// ScreenSpec describes a registered screen.
// Roles lists the roles whose menus show the screen; an empty list means
// the screen is reachable but never listed. Order sorts menu entries.
type ScreenSpec struct {
	Roles []constants.Role
	Order int
}

// VisibleTo returns true if the screen is listed for the given role.
func (s ScreenSpec) VisibleTo(role constants.Role) bool {
	return slices.Contains(s.Roles, role)
}

// Listener is called with the new current screen whenever it changes.
type Listener = func(current string)

// Router is the ambient navigation stack: a current screen plus the screens
// that back navigation returns to. Screens are opaque identifiers; pushing an
// unregistered screen is allowed.
//
// Router is not safe for concurrent mutation. Current may be read from any
// goroutine.
type Router struct {
	screens   map[string]ScreenSpec
	stack     *Stack
	current   *atomic.String
	listeners []subscription
	nextID    int
	logger    *slog.Logger
	now       func() time.Time
}

type subscription struct {
	id int
	fn Listener
}

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the logger used for navigation events.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithClock overrides the time source used for stack entry timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *Router) {
		if now != nil {
			r.now = now
		}
	}
}

// New creates a Router whose current screen is root.
func New(root string, opts ...Option) *Router {
	r := &Router{
		screens: make(map[string]ScreenSpec),
		stack:   NewStack(),
		current: atomic.NewString(root),
		logger:  slog.New(slog.DiscardHandler),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a screen to the router's catalog.
func (r *Router) Register(screen string, spec ScreenSpec) *Router {
	r.screens[screen] = spec
	return r
}

// Spec returns the registered spec for a screen.
func (r *Router) Spec(screen string) (ScreenSpec, bool) {
	spec, ok := r.screens[screen]
	return spec, ok
}

// Registered returns all registered screen identifiers, sorted.
func (r *Router) Registered() []string {
	screens := make([]string, 0, len(r.screens))
	for screen := range r.screens {
		screens = append(screens, screen)
	}
	slices.Sort(screens)
	return screens
}

// Current returns the current screen identifier.
func (r *Router) Current() string {
	return r.current.Load()
}

// PushForward moves the current screen onto the stack and makes screen current.
func (r *Router) PushForward(screen string) {
	prev := r.Current()
	r.stack.Push(prev, r.now())
	r.logger.Debug("router push", "from", prev, "to", screen, "depth", r.stack.Len())
	r.setCurrent(prev, screen)
}

// GoBack pops the stack and makes the popped screen current.
// At the root it does nothing.
func (r *Router) GoBack() {
	entry := r.stack.Pop()
	if entry == nil {
		r.logger.Warn("router back ignored at root", "current", r.Current())
		return
	}
	prev := r.Current()
	r.logger.Debug("router back", "from", prev, "to", entry.Screen, "depth", r.stack.Len())
	r.setCurrent(prev, entry.Screen)
}

// CanGoBack returns true if GoBack would change the current screen's stack position.
func (r *Router) CanGoBack() bool {
	return !r.stack.IsEmpty()
}

// Reset clears the stack and makes root the current screen.
// Used after login or logout, when back navigation must not cross the boundary.
func (r *Router) Reset(root string) {
	prev := r.Current()
	r.stack.Clear()
	r.logger.Debug("router reset", "from", prev, "to", root)
	r.setCurrent(prev, root)
}

// Screens returns the full navigation stack, oldest first, ending with the
// current screen.
func (r *Router) Screens() []string {
	return append(r.stack.Screens(), r.Current())
}

// Stack returns the navigation stack below the current screen.
func (r *Router) Stack() *Stack {
	return r.stack
}

// OnChange subscribes a listener to current screen changes.
// Listeners run synchronously in subscription order.
// The returned function removes the listener.
func (r *Router) OnChange(fn Listener) func() {
	r.nextID++
	id := r.nextID
	r.listeners = append(r.listeners, subscription{id: id, fn: fn})
	return func() {
		r.listeners = slices.DeleteFunc(r.listeners, func(s subscription) bool {
			return s.id == id
		})
	}
}

func (r *Router) setCurrent(prev, next string) {
	r.current.Store(next)
	if prev == next {
		return
	}
	for _, s := range slices.Clone(r.listeners) {
		s.fn(next)
	}
}
