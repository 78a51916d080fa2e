package router

import "time"

// StackEntry represents a single entry in the navigation stack.
// It stores the screen identifier and when the screen was entered.
type StackEntry struct {
	Screen    string
	EnteredAt time.Time
}

// Stack holds the screens below the current one, oldest first.
// Pushed when navigating forward, popped when navigating back.
type Stack struct {
	entries []StackEntry
}

// NewStack creates a new empty navigation stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]StackEntry, 0),
	}
}

// Push adds a new entry to the stack.
func (s *Stack) Push(screen string, enteredAt time.Time) {
	s.entries = append(s.entries, StackEntry{
		Screen:    screen,
		EnteredAt: enteredAt,
	})
}

// Pop removes and returns the top entry from the stack.
// Returns nil if the stack is empty.
func (s *Stack) Pop() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the top entry without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all entries from the stack.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}

// Screens returns the screen identifiers on the stack, oldest first.
func (s *Stack) Screens() []string {
	screens := make([]string, len(s.entries))
	for i, e := range s.entries {
		screens[i] = e.Screen
	}
	return screens
}
