// Package internal contains the infrastructure behind the smartspeak package:
// process-wide logging and the hardware back-button listener.
// Types and functions in this package are not part of the public API.
package internal
