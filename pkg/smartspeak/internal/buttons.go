package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"

	"github.com/jhncrl04/smartspeak-sub001/pkg/smartspeak/constants"
)

// ErrListenerRunning is returned when Start is called on a running listener.
var ErrListenerRunning = errors.New("button listener already running")

// ButtonConfig describes the input device and key codes of the hardware
// navigation buttons.
type ButtonConfig struct {
	DevicePath string
	Keys       map[uint16]constants.HardwareButton
	Debounce   time.Duration
}

// ButtonPress is a single debounced key-down of a hardware button.
type ButtonPress struct {
	Button constants.HardwareButton
	At     time.Time
}

type keyEventSource interface {
	ReadOne() (*evdev.InputEvent, error)
	Close() error
}

func openEvdev(path string) (keyEventSource, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, err
	}
	return dev, nil
}

// ButtonListener reads hardware button events from an evdev device on its own
// goroutine and delivers presses on a channel. Presses are meant to be handled
// on the UI goroutine, which keeps the router single-threaded.
type ButtonListener struct {
	config ButtonConfig
	open   func(path string) (keyEventSource, error)
	now    func() time.Time
	logger *slog.Logger

	presses   chan ButtonPress
	done      chan struct{}
	source    keyEventSource
	running   atomic.Bool
	count     atomic.Int64
	wg        sync.WaitGroup
	stopOnce  sync.Once
	closeOnce sync.Once
}

// NewButtonListener creates a listener for the configured device.
func NewButtonListener(config ButtonConfig, logger *slog.Logger) *ButtonListener {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ButtonListener{
		config:  config,
		open:    openEvdev,
		now:     time.Now,
		logger:  logger,
		presses: make(chan ButtonPress, 4),
		done:    make(chan struct{}),
	}
}

// Presses returns the channel presses are delivered on.
// It is closed when the listener stops.
func (l *ButtonListener) Presses() <-chan ButtonPress {
	return l.presses
}

// Count returns the number of presses delivered so far.
func (l *ButtonListener) Count() int64 {
	return l.count.Load()
}

// Running returns true while the read goroutine is active.
func (l *ButtonListener) Running() bool {
	return l.running.Load()
}

// Start opens the device and begins reading. The listener stops when ctx is
// cancelled or Stop is called.
func (l *ButtonListener) Start(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrListenerRunning
	}

	source, err := l.open(l.config.DevicePath)
	if err != nil {
		l.running.Store(false)
		return fmt.Errorf("open button device %s: %w", l.config.DevicePath, err)
	}
	l.source = source

	l.logger.Debug("button listener started", "device", l.config.DevicePath, "keys", len(l.config.Keys))

	l.wg.Add(2)
	go l.read(ctx)
	go func() {
		defer l.wg.Done()
		select {
		case <-ctx.Done():
			l.closeSource()
		case <-l.done:
		}
	}()
	return nil
}

// Stop closes the device and waits for the read goroutine to exit.
func (l *ButtonListener) Stop() {
	l.stopOnce.Do(func() {
		close(l.done)
		l.closeSource()
	})
	l.wg.Wait()
}

func (l *ButtonListener) closeSource() {
	l.closeOnce.Do(func() {
		if l.source != nil {
			_ = l.source.Close()
		}
	})
}

func (l *ButtonListener) read(ctx context.Context) {
	defer l.wg.Done()
	defer close(l.presses)
	defer l.running.Store(false)

	last := make(map[constants.HardwareButton]time.Time)
	for {
		ev, err := l.source.ReadOne()
		if err != nil {
			select {
			case <-l.done:
			case <-ctx.Done():
			default:
				l.logger.Error("button device read failed", "device", l.config.DevicePath, "error", err)
			}
			return
		}

		if ev.Type != evdev.EV_KEY || ev.Value != 1 {
			continue
		}
		button, ok := l.config.Keys[uint16(ev.Code)]
		if !ok {
			continue
		}

		now := l.now()
		if prev, seen := last[button]; seen && now.Sub(prev) < l.config.Debounce {
			continue
		}
		last[button] = now

		l.count.Inc()
		l.logger.Debug("button pressed", "button", button.GetName())

		select {
		case l.presses <- ButtonPress{Button: button, At: now}:
		case <-l.done:
			return
		case <-ctx.Done():
			return
		}
	}
}
