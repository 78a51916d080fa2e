// Package navhistory keeps an ordered record of visited screens consistent
// with an external router's back stack, and picks the cheapest way to reach
// a requested screen.
//
// A Tracker records every screen it sees. When asked to navigate to a screen
// that is already in its history, it replays the router's back primitive as
// many times as needed to reach the most recent occurrence and truncates the
// history there. Otherwise it pushes the screen forward.
//
// The router's primitives are fire-and-forget. The tracker never checks that
// a back step actually happened, so its history can drift from the router's
// real stack (for example if the router ignores a back request at its root).
// Call Resync, or Session.Resync, to replace the history with the router's
// actual stack.
//
// A Session binds one Tracker to one router for the lifetime of a navigation
// scope and feeds the router's change notifications into Observe.
package navhistory
