// Package smartspeak wires the SmartSpeak navigation core together: it loads
// configuration, sets up logging and localized screen titles, provides the
// default screen catalog, and opens navigation sessions and hardware button
// listeners.
package smartspeak

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"github.com/jhncrl04/smartspeak-sub001/pkg/smartspeak/config"
	"github.com/jhncrl04/smartspeak-sub001/pkg/smartspeak/constants"
	"github.com/jhncrl04/smartspeak-sub001/pkg/smartspeak/internal"
	"github.com/jhncrl04/smartspeak-sub001/pkg/smartspeak/locale"
	"github.com/jhncrl04/smartspeak-sub001/pkg/smartspeak/navhistory"
	"github.com/jhncrl04/smartspeak-sub001/pkg/smartspeak/router"
)

// Options configures initialization. Non-empty fields override the
// corresponding config file values.
type Options struct {
	ConfigPath string // Explicit config file; overrides $SMARTSPEAK_CONFIG
	LogPath    string // Full path for log file including filename (creates parent directories)
	LogLevel   string // "debug", "info", "warn", "error"
	Locale     string // Language tag for screen titles
}

var (
	stateMu sync.RWMutex
	current *config.Config
	catalog *locale.Catalog
)

// Init loads configuration, sets up logging and loads the screen title
// catalog. Must be called before Catalog and Config.
//
// Log level precedence: Options.LogLevel, $SMARTSPEAK_LOG_LEVEL,
// ENVIRONMENT=DEV (debug), then log.level from the config file.
func Init(options Options) (*config.Config, error) {
	cfg, err := config.Load(options.ConfigPath)
	if err != nil {
		return nil, NewInfrastructureError("load_config", err)
	}

	if options.Locale != "" {
		cfg.Locale = options.Locale
	}
	if options.LogPath != "" {
		cfg.Log.Path = options.LogPath
	}
	if cfg.Log.Path == "" {
		if path, err := config.DefaultLogPath(); err == nil {
			cfg.Log.Path = path
		}
	}
	internal.SetLogPath(cfg.Log.Path)

	switch {
	case options.LogLevel != "":
		cfg.Log.Level = options.LogLevel
	case os.Getenv(constants.LogLevelEnvVar) != "":
		cfg.Log.Level = os.Getenv(constants.LogLevelEnvVar)
	case constants.IsDevMode():
		cfg.Log.Level = "debug"
	}
	internal.SetRawLogLevel(cfg.Log.Level)

	cat, err := locale.NewCatalog(cfg.Locale)
	if err != nil {
		return nil, NewInfrastructureError("load_locale", err)
	}

	stateMu.Lock()
	current = cfg
	catalog = cat
	stateMu.Unlock()

	GetLogger().Debug("smartspeak initialized",
		"locale", cfg.Locale,
		"role", cfg.Session.Role,
		"log_path", cfg.Log.Path,
	)
	return cfg, nil
}

// Close flushes and closes the log file.
func Close() {
	internal.CloseLogger()
}

// Config returns the configuration loaded by Init.
func Config() (*config.Config, error) {
	stateMu.RLock()
	defer stateMu.RUnlock()
	if current == nil {
		return nil, ErrNotInitialized
	}
	return current, nil
}

// Catalog returns the screen title catalog loaded by Init.
func Catalog() (*locale.Catalog, error) {
	stateMu.RLock()
	defer stateMu.RUnlock()
	if catalog == nil {
		return nil, ErrNotInitialized
	}
	return catalog, nil
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init or GetLogger to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// NewSession opens a navigation session on r that logs through the
// application logger. Close it when the navigation scope ends.
func NewSession(r *router.Router) *navhistory.Session {
	return navhistory.NewSession(r, navhistory.WithLogger(GetLogger()))
}

// StartButtons starts a listener for the hardware back and home buttons
// described by input. Stop it, or cancel ctx, when done.
func StartButtons(ctx context.Context, input config.InputConfig) (*internal.ButtonListener, error) {
	keys := make(map[uint16]constants.HardwareButton)
	if input.BackKey != 0 {
		keys[input.BackKey] = constants.HardwareButtonBack
	}
	if input.HomeKey != 0 {
		keys[input.HomeKey] = constants.HardwareButtonHome
	}

	listener := internal.NewButtonListener(internal.ButtonConfig{
		DevicePath: input.Device,
		Keys:       keys,
		Debounce:   input.Debounce(),
	}, GetLogger())

	if err := listener.Start(ctx); err != nil {
		return nil, NewInfrastructureError("open_input", err)
	}
	return listener, nil
}
