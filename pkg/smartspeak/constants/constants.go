// Package constants defines shared constants, identifiers, and environment
// configuration used throughout the SmartSpeak navigation packages.
package constants

import (
	"os"
	"strings"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// ConfigPathEnvVar is the environment variable name for an explicit config file path.
const ConfigPathEnvVar = "SMARTSPEAK_CONFIG"

// LogLevelEnvVar is the environment variable name that overrides the configured log level.
const LogLevelEnvVar = "SMARTSPEAK_LOG_LEVEL"

// AppName is used for XDG directories and log file naming.
const AppName = "smartspeak"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Screen identifiers for the SmartSpeak application.
// Identifiers are opaque strings; the router and the history tracker only
// compare them for equality.
const (
	ScreenLogin         = "login"
	ScreenSignup        = "signup"
	ScreenGuardianHome  = "guardian_home"
	ScreenTeacherHome   = "teacher_home"
	ScreenLearnerHome   = "learner_home"
	ScreenCards         = "cards"
	ScreenCategories    = "categories"
	ScreenLearners      = "learners"
	ScreenMessages      = "messages"
	ScreenNotifications = "notifications"
	ScreenProfile       = "profile"
	ScreenSettings      = "settings"
)

// Role identifies which kind of account is using the application.
// Each role sees its own set of screens and starts on its own home screen.
type Role int

const (
	RoleUnknown Role = iota
	RoleGuardian
	RoleTeacher
	RoleLearner
)

func (r Role) String() string {
	switch r {
	case RoleGuardian:
		return "guardian"
	case RoleTeacher:
		return "teacher"
	case RoleLearner:
		return "learner"
	default:
		return "unknown"
	}
}

// HomeScreen returns the screen a role lands on after login.
// Unknown roles land on the login screen.
func (r Role) HomeScreen() string {
	switch r {
	case RoleGuardian:
		return ScreenGuardianHome
	case RoleTeacher:
		return ScreenTeacherHome
	case RoleLearner:
		return ScreenLearnerHome
	default:
		return ScreenLogin
	}
}

// ParseRole converts a role name (case-insensitive) to a Role.
// Returns RoleUnknown and false for unrecognized names.
func ParseRole(name string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "guardian":
		return RoleGuardian, true
	case "teacher":
		return RoleTeacher, true
	case "learner":
		return RoleLearner, true
	default:
		return RoleUnknown, false
	}
}

// HardwareButton represents a physical navigation button outside the
// application's own controls.
type HardwareButton int

const (
	HardwareButtonUnassigned HardwareButton = iota
	HardwareButtonBack
	HardwareButtonHome
)

func (hb HardwareButton) GetName() string {
	switch hb {
	case HardwareButtonUnassigned:
		return "Unassigned"
	case HardwareButtonBack:
		return "Back"
	case HardwareButtonHome:
		return "Home"
	default:
		return "Unknown"
	}
}

// Default input constants.
const (
	DefaultButtonDevice            = "/dev/input/event1"
	DefaultBackKeyCode      uint16 = 158 // KEY_BACK
	DefaultHomeKeyCode      uint16 = 172 // KEY_HOMEPAGE
	DefaultButtonDebounce          = 150 * time.Millisecond
)
