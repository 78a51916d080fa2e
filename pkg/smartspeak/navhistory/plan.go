package navhistory

// Action is the kind of router operation a navigation request resolves to.
type Action int

const (
	ActionNone Action = iota // Target is already the current screen
	ActionBack               // Target is an ancestor; replay back Steps times
	ActionPush               // Target is not in history; push it forward
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionBack:
		return "back"
	case ActionPush:
		return "push"
	default:
		return "unknown"
	}
}

// Decision describes how a navigation request will be carried out.
type Decision struct {
	Action Action
	Target string
	Steps  int // Back calls to issue (ActionBack only)
	Index  int // History index of the matched ancestor, -1 unless ActionBack
}

// plan resolves target against history. The match is the rightmost
// occurrence strictly before the tail.
func plan(history []string, target string) Decision {
	last := len(history) - 1
	if history[last] == target {
		return Decision{Action: ActionNone, Target: target, Index: -1}
	}
	for i := last - 1; i >= 0; i-- {
		if history[i] == target {
			return Decision{Action: ActionBack, Target: target, Steps: last - i, Index: i}
		}
	}
	return Decision{Action: ActionPush, Target: target, Index: -1}
}
