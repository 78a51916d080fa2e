package scenario

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/jhncrl04/smartspeak-sub001/pkg/smartspeak/navhistory"
	"github.com/jhncrl04/smartspeak-sub001/pkg/smartspeak/router"
)

// StepResult is the state after one step.
type StepResult struct {
	Step     Step
	Decision navhistory.Decision // zero unless the step was a navigate
	History  []string            // tracked history
	Stack    []string            // router's actual stack, oldest first
	Current  string              // router's current screen
}

// InSync returns true if the tracked history matches the router's stack.
func (r StepResult) InSync() bool {
	return slices.Equal(r.History, r.Stack)
}

// Result is the outcome of a replayed scenario.
type Result struct {
	Name    string
	Session string
	Steps   []StepResult
}

// Final returns the last step's result, or false if the scenario had no steps.
func (r *Result) Final() (StepResult, bool) {
	if len(r.Steps) == 0 {
		return StepResult{}, false
	}
	return r.Steps[len(r.Steps)-1], true
}

// Replay resets r to the scenario's start screen, opens a session on it and
// runs every step. The context is checked between steps.
func Replay(ctx context.Context, s *Scenario, r *router.Router, logger *slog.Logger) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	r.Reset(s.Start)
	session := navhistory.NewSession(r, navhistory.WithLogger(logger))
	defer session.Close()

	logger.Debug("scenario replay started", "scenario", s.Name, "session", session.ID(), "steps", len(s.Steps))

	result := &Result{Name: s.Name, Session: session.ID()}
	for i, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("scenario: step %d: %w", i+1, err)
		}

		var decision navhistory.Decision
		var err error
		switch step.Action {
		case StepNavigate:
			decision = session.Plan(step.Target())
			err = session.NavigateTo(step.Target())
		case StepBack:
			r.GoBack()
		case StepObserve:
			err = session.Observe(step.Target())
		case StepResync:
			err = session.Resync()
		}
		if err != nil {
			return result, fmt.Errorf("scenario: step %d: %w", i+1, err)
		}

		sr := StepResult{
			Step:     step,
			Decision: decision,
			History:  session.History(),
			Stack:    r.Screens(),
			Current:  r.Current(),
		}
		if !sr.InSync() {
			logger.Debug("navigation history differs from router stack",
				"step", i+1,
				"history", sr.History,
				"stack", sr.Stack,
			)
		}
		result.Steps = append(result.Steps, sr)
	}

	return result, nil
}
