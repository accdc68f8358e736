package platform

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Alia5/keybd/internal/log"
	"github.com/Alia5/keybd/keyboard"
)

// EventFlags mirrors CGEventFlags.
type EventFlags uint64

// CGEventFlags masks
const (
	FlagNull      EventFlags = 0
	FlagAlphaLock EventFlags = 0x00010000
	FlagShift     EventFlags = 0x00020000
	FlagControl   EventFlags = 0x00040000
	FlagAlternate EventFlags = 0x00080000
	FlagCommand   EventFlags = 0x00100000
	FlagNumPad    EventFlags = 0x00200000
	FlagFn        EventFlags = 0x00800000
)

// EventSource is a one-shot CGEventSource.
type EventSource interface {
	Release()
}

// KeyEvent is a synthesized CGEvent of keyboard type.
type KeyEvent interface {
	SetFlags(flags EventFlags)
	Post()
	Release()
}

// Quartz creates event sources and keyboard events.
type Quartz interface {
	NewEventSource() (EventSource, error)
	NewKeyboardEvent(src EventSource, keycode uint16, down bool) (KeyEvent, error)
}

// DarwinBackend posts a down and an up event per key, one key at a time. Left and right
// modifiers collapse to a single flag bit each.
type DarwinBackend struct {
	q            Quartz
	specialFlags EventFlags
	keyDelay     time.Duration
	sleep        func(time.Duration)
	logger       *slog.Logger
}

// NewDarwin wraps a Quartz event factory.
func NewDarwin(q Quartz, o *Options) *DarwinBackend {
	opts := o.withDefaults()
	return &DarwinBackend{
		q:        q,
		keyDelay: max(*opts.KeyDelay, 0),
		sleep:    opts.Sleep,
		logger:   opts.Logger,
	}
}

// SetSpecialFlags sets extra flags OR-ed into every event, e.g. FlagCommand.
func (d *DarwinBackend) SetSpecialFlags(f EventFlags) {
	d.specialFlags = f
}

// RunAction posts each key in turn with the request's modifier flags. Keys without a
// keycode are skipped.
func (d *DarwinBackend) RunAction(st keyboard.State) {
	for _, k := range st.Keys {
		if err := d.keyPress(k, st); err != nil {
			if errors.Is(err, ErrUnsupportedKey) {
				d.logger.Debug("skipping key", "key", k, "error", err)
				continue
			}
			d.logger.Warn("key event not delivered", "key", k, "error", err)
		}
	}
}

func (d *DarwinBackend) flags(st keyboard.State) EventFlags {
	flags := FlagNull
	if st.Shift {
		flags |= FlagShift
	}
	if st.AltGr || st.Alt {
		flags |= FlagAlternate
	}
	if st.RCtrl || st.Ctrl {
		flags |= FlagControl
	}
	if d.specialFlags != FlagNull {
		flags |= d.specialFlags
	}
	return flags
}

func (d *DarwinBackend) keyPress(k keyboard.Key, st keyboard.State) error {
	srcDown, err := d.q.NewEventSource()
	if err != nil {
		return fmt.Errorf("create event source: %w", err)
	}
	defer srcDown.Release()
	srcUp, err := d.q.NewEventSource()
	if err != nil {
		return fmt.Errorf("create event source: %w", err)
	}
	defer srcUp.Release()

	code, ok := DarwinKeycode(k)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedKey, k)
	}

	down, err := d.q.NewKeyboardEvent(srcDown, code, true)
	if err != nil {
		return fmt.Errorf("create key down event: %w", err)
	}
	defer down.Release()
	up, err := d.q.NewKeyboardEvent(srcUp, code, false)
	if err != nil {
		return fmt.Errorf("create key up event: %w", err)
	}
	defer up.Release()

	flags := d.flags(st)
	down.SetFlags(flags)
	up.SetFlags(flags)

	log.Trace(d.logger, "quartz key", "key", k, "keycode", code, "flags", uint64(flags))
	down.Post()
	d.sleep(d.keyDelay)
	up.Post()
	return nil
}

// DarwinKeycode translates a canonical key to its kVK_* virtual keycode.
func DarwinKeycode(k keyboard.Key) (uint16, bool) {
	code, ok := darwinKeycodes[k]
	return code, ok
}

// Keys absent from the table (NumLock, ScrollLock, Reserved, KpJPComma, KpPlusMinus, KpComma)
// have no macOS counterpart.
var darwinKeycodes = map[keyboard.Key]uint16{
	keyboard.KeySP1:  0x0A,
	keyboard.KeySP2:  0x1B,
	keyboard.KeySP3:  0x18,
	keyboard.KeySP4:  0x21,
	keyboard.KeySP5:  0x1E,
	keyboard.KeySP6:  0x29,
	keyboard.KeySP7:  0x27,
	keyboard.KeySP8:  0x2A,
	keyboard.KeySP9:  0x2B,
	keyboard.KeySP10: 0x2F,
	keyboard.KeySP11: 0x2C,
	keyboard.KeySP12: 0x32,

	keyboard.KeyUp:    0x7E,
	keyboard.KeyDown:  0x7D,
	keyboard.KeyLeft:  0x7B,
	keyboard.KeyRight: 0x7C,
	keyboard.KeyEsc:   0x35,

	keyboard.Key1: 0x12,
	keyboard.Key2: 0x13,
	keyboard.Key3: 0x14,
	keyboard.Key4: 0x15,
	keyboard.Key5: 0x17,
	keyboard.Key6: 0x16,
	keyboard.Key7: 0x1A,
	keyboard.Key8: 0x1C,
	keyboard.Key9: 0x19,
	keyboard.Key0: 0x1D,

	keyboard.KeyQ: 0x0C,
	keyboard.KeyW: 0x0D,
	keyboard.KeyE: 0x0E,
	keyboard.KeyR: 0x0F,
	keyboard.KeyT: 0x11,
	keyboard.KeyY: 0x10,
	keyboard.KeyU: 0x20,
	keyboard.KeyI: 0x22,
	keyboard.KeyO: 0x1F,
	keyboard.KeyP: 0x23,
	keyboard.KeyA: 0x00,
	keyboard.KeyS: 0x01,
	keyboard.KeyD: 0x02,
	keyboard.KeyF: 0x03,
	keyboard.KeyG: 0x05,
	keyboard.KeyH: 0x04,
	keyboard.KeyJ: 0x26,
	keyboard.KeyK: 0x28,
	keyboard.KeyL: 0x25,
	keyboard.KeyZ: 0x06,
	keyboard.KeyX: 0x07,
	keyboard.KeyC: 0x08,
	keyboard.KeyV: 0x09,
	keyboard.KeyB: 0x0B,
	keyboard.KeyN: 0x2D,
	keyboard.KeyM: 0x2E,

	keyboard.KeyF1:  0x7A,
	keyboard.KeyF2:  0x78,
	keyboard.KeyF3:  0x63,
	keyboard.KeyF4:  0x76,
	keyboard.KeyF5:  0x60,
	keyboard.KeyF6:  0x61,
	keyboard.KeyF7:  0x62,
	keyboard.KeyF8:  0x64,
	keyboard.KeyF9:  0x65,
	keyboard.KeyF10: 0x6D,
	keyboard.KeyF11: 0x67,
	keyboard.KeyF12: 0x6F,

	keyboard.KeyBackspace: 0x33,
	keyboard.KeyTab:       0x30,
	keyboard.KeyEnter:     0x24,
	keyboard.KeySpace:     0x31,
	keyboard.KeyCapsLock:  0x39,

	keyboard.KeyKp0:        0x52,
	keyboard.KeyKp1:        0x53,
	keyboard.KeyKp2:        0x54,
	keyboard.KeyKp3:        0x55,
	keyboard.KeyKp4:        0x56,
	keyboard.KeyKp5:        0x57,
	keyboard.KeyKp6:        0x58,
	keyboard.KeyKp7:        0x59,
	keyboard.KeyKp8:        0x5B,
	keyboard.KeyKp9:        0x5C,
	keyboard.KeyKpMinus:    0x4E,
	keyboard.KeyKpPlus:     0x45,
	keyboard.KeyKpDot:      0x41,
	keyboard.KeyKpEnter:    0x4C,
	keyboard.KeyKpSlash:    0x4B,
	keyboard.KeyKpAsterisk: 0x43,
	keyboard.KeyKpEqual:    0x51,
}
