package router

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhncrl04/smartspeak-sub001/pkg/smartspeak/constants"
)

func TestStack_PushPop(t *testing.T) {
	s := NewStack()
	require.True(t, s.IsEmpty())
	assert.Nil(t, s.Pop())
	assert.Nil(t, s.Peek())

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.Push("a", at)
	s.Push("b", at.Add(time.Second))

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"a", "b"}, s.Screens())
	require.NotNil(t, s.Peek())
	assert.Equal(t, "b", s.Peek().Screen)

	entry := s.Pop()
	require.NotNil(t, entry)
	assert.Equal(t, "b", entry.Screen)
	assert.Equal(t, at.Add(time.Second), entry.EnteredAt)
	assert.Equal(t, 1, s.Len())

	s.Clear()
	assert.True(t, s.IsEmpty())
}

func TestRouter_PushAndBack(t *testing.T) {
	r := New("a")

	r.PushForward("b")
	r.PushForward("c")
	assert.Equal(t, "c", r.Current())
	assert.Equal(t, []string{"a", "b", "c"}, r.Screens())
	assert.True(t, r.CanGoBack())

	r.GoBack()
	assert.Equal(t, "b", r.Current())
	r.GoBack()
	assert.Equal(t, "a", r.Current())
	assert.False(t, r.CanGoBack())

	r.GoBack()
	assert.Equal(t, "a", r.Current(), "back at root is a no-op")
	assert.Equal(t, []string{"a"}, r.Screens())
}

func TestRouter_PushRecordsEntryTime(t *testing.T) {
	at := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	r := New("a", WithClock(func() time.Time { return at }))

	r.PushForward("b")

	entry := r.Stack().Peek()
	require.NotNil(t, entry)
	assert.Equal(t, "a", entry.Screen)
	assert.Equal(t, at, entry.EnteredAt)
}

func TestRouter_OnChangeNotifiesOnlyOnChange(t *testing.T) {
	r := New("a")
	var seen []string
	r.OnChange(func(current string) { seen = append(seen, current) })

	r.PushForward("b")
	r.PushForward("b")
	r.GoBack()
	r.GoBack()
	r.GoBack()

	// second push keeps "b" current, the back that pops it lands on "b" again
	assert.Equal(t, []string{"b", "a"}, seen)
}

func TestRouter_Unsubscribe(t *testing.T) {
	r := New("a")
	var first, second int
	unsubscribe := r.OnChange(func(string) { first++ })
	r.OnChange(func(string) { second++ })

	r.PushForward("b")
	unsubscribe()
	r.PushForward("c")

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestRouter_UnsubscribeDuringNotify(t *testing.T) {
	r := New("a")
	calls := 0
	var unsubscribe func()
	unsubscribe = r.OnChange(func(string) {
		calls++
		unsubscribe()
	})

	r.PushForward("b")
	r.PushForward("c")

	assert.Equal(t, 1, calls)
}

func TestRouter_Reset(t *testing.T) {
	r := New(constants.ScreenLogin)
	r.PushForward(constants.ScreenSignup)

	var seen []string
	r.OnChange(func(current string) { seen = append(seen, current) })
	r.Reset(constants.ScreenGuardianHome)

	assert.Equal(t, constants.ScreenGuardianHome, r.Current())
	assert.False(t, r.CanGoBack())
	assert.Equal(t, []string{constants.ScreenGuardianHome}, seen)
}

func TestRouter_Registry(t *testing.T) {
	r := New(constants.ScreenLogin).
		Register(constants.ScreenCards, ScreenSpec{Roles: []constants.Role{constants.RoleTeacher}, Order: 2}).
		Register(constants.ScreenCategories, ScreenSpec{Order: 1})

	assert.Equal(t, []string{constants.ScreenCards, constants.ScreenCategories}, r.Registered())

	spec, ok := r.Spec(constants.ScreenCards)
	require.True(t, ok)
	assert.True(t, spec.VisibleTo(constants.RoleTeacher))
	assert.False(t, spec.VisibleTo(constants.RoleLearner))

	_, ok = r.Spec("missing")
	assert.False(t, ok)
}
