// Package scenario replays scripted navigation flows against a router and a
// navigation session, recording the tracked history after every step.
package scenario

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// StepAction is the kind of event a scenario step injects.
type StepAction string

const (
	// StepNavigate asks the session to navigate to Screen.
	StepNavigate StepAction = "navigate"
	// StepBack presses the hardware back button on the router.
	StepBack StepAction = "back"
	// StepObserve reports Screen as the current screen directly to the session.
	StepObserve StepAction = "observe"
	// StepResync replaces the session history with the router's stack.
	StepResync StepAction = "resync"
)

// ErrInvalidScenario is wrapped by every validation error.
var ErrInvalidScenario = errors.New("invalid scenario")

// Scenario is a scripted navigation flow.
type Scenario struct {
	Name  string `toml:"name"`
	Start string `toml:"start"`
	Steps []Step `toml:"step"`
}

// Step is a single scripted event.
type Step struct {
	Action StepAction `toml:"action"`
	Screen *string    `toml:"screen"`
}

// Target returns the step's screen, or "" when it has none.
func (s Step) Target() string {
	if s.Screen == nil {
		return ""
	}
	return *s.Screen
}

// Parse decodes and validates a TOML scenario.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	md, err := toml.Decode(string(data), &s)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("scenario: unknown key %q: %w", undecoded[0].String(), ErrInvalidScenario)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	return Parse(data)
}

// Validate checks that every step is well formed. Navigate steps must name a
// screen, though the name may be empty; observe steps need a non-empty screen.
func (s *Scenario) Validate() error {
	if s.Start == "" {
		return fmt.Errorf("scenario: missing start screen: %w", ErrInvalidScenario)
	}
	for i, step := range s.Steps {
		switch step.Action {
		case StepNavigate:
			if step.Screen == nil {
				return fmt.Errorf("scenario: step %d: navigate needs a screen: %w", i+1, ErrInvalidScenario)
			}
		case StepObserve:
			if step.Target() == "" {
				return fmt.Errorf("scenario: step %d: observe needs a screen: %w", i+1, ErrInvalidScenario)
			}
		case StepBack, StepResync:
			if step.Screen != nil {
				return fmt.Errorf("scenario: step %d: %s takes no screen: %w", i+1, step.Action, ErrInvalidScenario)
			}
		default:
			return fmt.Errorf("scenario: step %d: unknown action %q: %w", i+1, step.Action, ErrInvalidScenario)
		}
	}
	return nil
}
