package navhistory

import (
	"log/slog"
	"slices"
)

// Navigator is the router capability a Tracker drives.
// Both calls are assumed to succeed; neither reports failure.
type Navigator interface {
	GoBack()
	PushForward(screen string)
}

// Tracker maintains the navigation history of one navigation scope.
//
// The history is never empty and its last entry is always the most recently
// observed or navigated screen. A screen may appear more than once.
//
// Tracker is not safe for concurrent use; it is driven from the UI goroutine.
type Tracker struct {
	nav        Navigator
	history    []string
	navigating bool
	logger     *slog.Logger
}

// Option configures a Tracker or Session.
type Option func(*options)

type options struct {
	logger *slog.Logger
	id     string
}

// WithLogger sets the logger used for navigation decisions.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New creates a Tracker whose history starts as [current].
func New(nav Navigator, current string, opts ...Option) *Tracker {
	o := buildOptions(opts)
	return &Tracker{
		nav:     nav,
		history: []string{current},
		logger:  o.logger,
	}
}

// CurrentScreen returns the latest observed current screen.
func (t *Tracker) CurrentScreen() string {
	return t.history[len(t.history)-1]
}

// History returns a copy of the recorded history, oldest first.
func (t *Tracker) History() []string {
	return slices.Clone(t.history)
}

// Len returns the number of history entries.
func (t *Tracker) Len() int {
	return len(t.history)
}

// Observe records a change of the router's current screen that happened
// outside the tracker, such as a hardware back press. The screen is appended
// unless it already is the last entry.
//
// Observations delivered while NavigateTo is issuing router calls are the
// tracker's own intermediate screens and are ignored.
func (t *Tracker) Observe(current string) {
	if t.navigating {
		return
	}
	if t.CurrentScreen() == current {
		return
	}
	t.history = append(t.history, current)
	t.logger.Debug("navigation observed", "screen", current, "depth", len(t.history))
}

// Plan reports what NavigateTo(target) would do without doing it.
func (t *Tracker) Plan(target string) Decision {
	return plan(t.history, target)
}

// NavigateTo moves to target. If target is the current screen nothing
// happens. If it is an earlier entry, the router goes back once per entry
// between the most recent occurrence and the tail, and the history is cut
// back to that occurrence. Otherwise the router pushes target.
func (t *Tracker) NavigateTo(target string) {
	d := t.Plan(target)
	if d.Action == ActionNone {
		return
	}

	t.navigating = true
	defer func() { t.navigating = false }()

	switch d.Action {
	case ActionBack:
		t.logger.Debug("navigation back-replay",
			"target", target,
			"steps", d.Steps,
			"from", t.CurrentScreen(),
		)
		for range d.Steps {
			t.nav.GoBack()
		}
		t.history = t.history[:d.Index+1]
	case ActionPush:
		t.logger.Debug("navigation push", "target", target, "from", t.CurrentScreen())
		t.nav.PushForward(target)
		t.history = append(t.history, target)
	}
}

// Resync replaces the history with entries, typically the router's real
// stack. An empty slice is ignored so the history never becomes empty.
func (t *Tracker) Resync(entries []string) {
	if len(entries) == 0 {
		t.logger.Warn("navigation resync ignored: empty stack")
		return
	}
	t.logger.Debug("navigation resync", "before", len(t.history), "after", len(entries))
	t.history = slices.Clone(entries)
}
