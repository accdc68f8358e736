package platform

import (
	"log/slog"

	"github.com/Alia5/keybd/internal/log"
	"github.com/Alia5/keybd/keyboard"
)

// evdev codes of the modifier keys
const (
	linuxKeyCtrl       = 29
	linuxKeyShift      = 42
	linuxKeyAlt        = 56
	linuxKeyRightShift = 54
	linuxKeyRightCtrl  = 97
	linuxKeyRightAlt   = 100
)

// evdev key values
const (
	keyReleased int32 = 0
	keyPressed  int32 = 1
)

// UinputDevice is a created uinput virtual keyboard.
type UinputDevice interface {
	WriteKey(code uint16, value int32) error
	Sync() error
	Close() error
}

// LinuxBackend presses all keys before releasing any, so multi-key requests arrive as a chord.
type LinuxBackend struct {
	dev    UinputDevice
	logger *slog.Logger
}

// NewLinux wraps an already created uinput device.
func NewLinux(dev UinputDevice, o *Options) *LinuxBackend {
	opts := o.withDefaults()
	return &LinuxBackend{dev: dev, logger: opts.Logger}
}

func linuxModifiers(st keyboard.State) []uint16 {
	var mods []uint16
	if st.Alt {
		mods = append(mods, linuxKeyAlt)
	}
	if st.AltGr {
		mods = append(mods, linuxKeyRightAlt)
	}
	if st.Shift {
		mods = append(mods, linuxKeyShift)
	}
	if st.Ctrl {
		mods = append(mods, linuxKeyCtrl)
	}
	if st.RShift {
		mods = append(mods, linuxKeyRightShift)
	}
	if st.RCtrl {
		mods = append(mods, linuxKeyRightCtrl)
	}
	return mods
}

// RunAction presses modifiers, then every key, then releases every key, then the modifiers in
// the order they were pressed, and finally flushes the device once.
func (l *LinuxBackend) RunAction(st keyboard.State) {
	mods := linuxModifiers(st)
	for _, m := range mods {
		l.downKey(m)
	}
	for _, k := range st.Keys {
		l.downKey(uint16(k))
	}
	for _, k := range st.Keys {
		l.upKey(uint16(k))
	}
	for _, m := range mods {
		l.upKey(m)
	}
	if err := l.dev.Sync(); err != nil {
		l.logger.Warn("failed to synchronize uinput device", "error", err)
	}
}

// Close destroys the virtual device.
func (l *LinuxBackend) Close() error {
	return l.dev.Close()
}

func (l *LinuxBackend) downKey(code uint16) bool {
	return l.write(code, keyPressed)
}

func (l *LinuxBackend) upKey(code uint16) bool {
	return l.write(code, keyReleased)
}

func (l *LinuxBackend) write(code uint16, value int32) bool {
	log.Trace(l.logger, "uinput key", "code", code, "value", value)
	if err := l.dev.WriteKey(code, value); err != nil {
		l.logger.Warn("key event not delivered", "code", code, "value", value, "error", err)
		return false
	}
	return true
}
