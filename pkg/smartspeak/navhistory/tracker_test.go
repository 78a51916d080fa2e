package navhistory

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingNavigator records router calls without keeping any stack.
type recordingNavigator struct {
	backs  int
	pushes []string
}

func (n *recordingNavigator) GoBack() { n.backs++ }

func (n *recordingNavigator) PushForward(screen string) {
	n.pushes = append(n.pushes, screen)
}

// newTrackerWithHistory builds a tracker whose history is exactly screens,
// using observations so the navigator sees no calls.
func newTrackerWithHistory(t *testing.T, nav Navigator, screens ...string) *Tracker {
	t.Helper()
	require.NotEmpty(t, screens)
	tr := New(nav, screens[0])
	for _, s := range screens[1:] {
		tr.Observe(s)
	}
	require.Equal(t, screens, tr.History())
	return tr
}

func assertHistory(t *testing.T, tr *Tracker, want ...string) {
	t.Helper()
	if diff := cmp.Diff(want, tr.History()); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}
}

func TestNew_SeedsHistory(t *testing.T) {
	tr := New(&recordingNavigator{}, "home")

	assert.Equal(t, "home", tr.CurrentScreen())
	assert.Equal(t, 1, tr.Len())
	assertHistory(t, tr, "home")
}

func TestNavigateTo_SelfTargetIsNoop(t *testing.T) {
	nav := &recordingNavigator{}
	tr := newTrackerWithHistory(t, nav, "A", "B", "S")

	tr.NavigateTo("S")

	assert.Zero(t, nav.backs)
	assert.Empty(t, nav.pushes)
	assertHistory(t, tr, "A", "B", "S")
}

func TestNavigateTo_BackReplayCount(t *testing.T) {
	nav := &recordingNavigator{}
	tr := newTrackerWithHistory(t, nav, "A", "B", "C", "D")

	tr.NavigateTo("B")

	assert.Equal(t, 2, nav.backs)
	assert.Empty(t, nav.pushes)
	assertHistory(t, tr, "A", "B")
	assert.Equal(t, "B", tr.CurrentScreen())
}

func TestNavigateTo_BackToRoot(t *testing.T) {
	nav := &recordingNavigator{}
	tr := newTrackerWithHistory(t, nav, "A", "B", "C", "D")

	tr.NavigateTo("A")

	assert.Equal(t, 3, nav.backs)
	assertHistory(t, tr, "A")
}

func TestNavigateTo_MostRecentMatchWins(t *testing.T) {
	nav := &recordingNavigator{}
	tr := newTrackerWithHistory(t, nav, "A", "B", "A", "C")

	tr.NavigateTo("A")

	assert.Equal(t, 1, nav.backs)
	assertHistory(t, tr, "A", "B", "A")
}

func TestNavigateTo_PushUnknownTarget(t *testing.T) {
	nav := &recordingNavigator{}
	tr := newTrackerWithHistory(t, nav, "A", "B")

	tr.NavigateTo("Z")

	assert.Zero(t, nav.backs)
	assert.Equal(t, []string{"Z"}, nav.pushes)
	assertHistory(t, tr, "A", "B", "Z")
}

func TestNavigateTo_EmptyTargetIsPushed(t *testing.T) {
	nav := &recordingNavigator{}
	tr := newTrackerWithHistory(t, nav, "A")

	tr.NavigateTo("")

	assert.Equal(t, []string{""}, nav.pushes)
	assertHistory(t, tr, "A", "")

	tr.NavigateTo("")
	assert.Len(t, nav.pushes, 1, "empty target is now current")
}

func TestNavigateTo_SequentialSameTargetIsIdempotent(t *testing.T) {
	nav := &recordingNavigator{}
	tr := newTrackerWithHistory(t, nav, "A", "B")

	tr.NavigateTo("X")
	tr.NavigateTo("X")

	assert.Equal(t, []string{"X"}, nav.pushes)
	assert.Zero(t, nav.backs)
	assertHistory(t, tr, "A", "B", "X")

	tr.NavigateTo("A")
	tr.NavigateTo("A")

	assert.Equal(t, 2, nav.backs)
	assertHistory(t, tr, "A")
}

func TestObserve_DedupsTailOnly(t *testing.T) {
	tr := newTrackerWithHistory(t, &recordingNavigator{}, "A", "B")

	tr.Observe("B")
	assertHistory(t, tr, "A", "B")

	tr.Observe("C")
	assertHistory(t, tr, "A", "B", "C")

	tr.Observe("A")
	assertHistory(t, tr, "A", "B", "C", "A")
}

func TestObserve_DoesNotCallNavigator(t *testing.T) {
	nav := &recordingNavigator{}
	tr := New(nav, "A")

	tr.Observe("B")
	tr.Observe("C")

	assert.Zero(t, nav.backs)
	assert.Empty(t, nav.pushes)
}

// echoNavigator reports every screen change straight back into the tracker,
// the way a router with synchronous change notifications does.
type echoNavigator struct {
	tracker *Tracker
	stack   []string
	backs   int
	pushes  int
}

func (n *echoNavigator) GoBack() {
	n.backs++
	if len(n.stack) < 2 {
		return
	}
	n.stack = n.stack[:len(n.stack)-1]
	n.tracker.Observe(n.stack[len(n.stack)-1])
}

func (n *echoNavigator) PushForward(screen string) {
	n.pushes++
	n.stack = append(n.stack, screen)
	n.tracker.Observe(screen)
}

func TestNavigateTo_IgnoresOwnObservations(t *testing.T) {
	nav := &echoNavigator{stack: []string{"A"}}
	tr := New(nav, "A")
	nav.tracker = tr

	tr.NavigateTo("B")
	tr.NavigateTo("C")
	tr.NavigateTo("D")
	assertHistory(t, tr, "A", "B", "C", "D")
	assert.Equal(t, []string{"A", "B", "C", "D"}, nav.stack)

	tr.NavigateTo("B")
	assert.Equal(t, 2, nav.backs)
	assertHistory(t, tr, "A", "B")
	assert.Equal(t, []string{"A", "B"}, nav.stack)

	// observations outside NavigateTo still count
	tr.Observe("E")
	assertHistory(t, tr, "A", "B", "E")
}

func TestPlan(t *testing.T) {
	tests := []struct {
		name    string
		history []string
		target  string
		want    Decision
	}{
		{
			name:    "current screen",
			history: []string{"A", "B"},
			target:  "B",
			want:    Decision{Action: ActionNone, Target: "B", Index: -1},
		},
		{
			name:    "ancestor",
			history: []string{"A", "B", "C", "D"},
			target:  "B",
			want:    Decision{Action: ActionBack, Target: "B", Steps: 2, Index: 1},
		},
		{
			name:    "rightmost ancestor",
			history: []string{"A", "B", "A", "C"},
			target:  "A",
			want:    Decision{Action: ActionBack, Target: "A", Steps: 1, Index: 2},
		},
		{
			name:    "unknown",
			history: []string{"A"},
			target:  "Z",
			want:    Decision{Action: ActionPush, Target: "Z", Index: -1},
		},
		{
			name:    "duplicate of tail earlier in history",
			history: []string{"B", "A", "B"},
			target:  "B",
			want:    Decision{Action: ActionNone, Target: "B", Index: -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := &recordingNavigator{}
			tr := newTrackerWithHistory(t, nav, tt.history...)

			got := tr.Plan(tt.target)
			assert.Equal(t, tt.want, got)

			// Plan must agree with what NavigateTo does.
			tr.NavigateTo(tt.target)
			switch got.Action {
			case ActionNone:
				assert.Zero(t, nav.backs)
				assert.Empty(t, nav.pushes)
			case ActionBack:
				assert.Equal(t, got.Steps, nav.backs)
				assert.Equal(t, tt.history[:got.Index+1], tr.History())
			case ActionPush:
				assert.Equal(t, []string{tt.target}, nav.pushes)
			}
		})
	}
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "none", ActionNone.String())
	assert.Equal(t, "back", ActionBack.String())
	assert.Equal(t, "push", ActionPush.String())
	assert.Equal(t, "unknown", Action(42).String())
}

func TestResync(t *testing.T) {
	tr := newTrackerWithHistory(t, &recordingNavigator{}, "A", "B", "A")

	tr.Resync([]string{"A"})
	assertHistory(t, tr, "A")

	tr.Resync(nil)
	assertHistory(t, tr, "A")

	entries := []string{"A", "C"}
	tr.Resync(entries)
	entries[1] = "mutated"
	assertHistory(t, tr, "A", "C")
}

func TestHistory_ReturnsCopy(t *testing.T) {
	tr := newTrackerWithHistory(t, &recordingNavigator{}, "A", "B")

	h := tr.History()
	h[0] = "mutated"

	assertHistory(t, tr, "A", "B")
}
