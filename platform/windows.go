package platform

import (
	"log/slog"

	"github.com/Alia5/keybd/internal/log"
	"github.com/Alia5/keybd/keyboard"
)

// keybd_event dwFlags
const (
	KeyEventFKeyUp    uint32 = 0x0002
	KeyEventFScanCode uint32 = 0x0008
)

// VirtualKeyOffset is added to a virtual-key code to tell it apart from a scan code. Values
// below the offset are sent as scan codes.
const VirtualKeyOffset = 0xFFF

// secondary byte passed alongside every code
const scanHint = 0x80

// Virtual-key codes of the modifiers, already offset.
const (
	winKeyShift    = 0x10 + VirtualKeyOffset
	winKeyCtrl     = 0x11 + VirtualKeyOffset
	winKeyAlt      = 0x12 + VirtualKeyOffset
	winKeyRShift   = 0xA1 + VirtualKeyOffset
	winKeyRControl = 0xA3 + VirtualKeyOffset
)

// User32 is the keybd_event entry point.
type User32 interface {
	KeybdEvent(vk, scan byte, flags uint32, extraInfo uintptr)
}

// WindowsBackend presses and releases each key in turn while the modifiers are held. The
// native call reports nothing, so failures cannot be detected.
type WindowsBackend struct {
	u      User32
	logger *slog.Logger
}

// NewWindows wraps a keybd_event implementation.
func NewWindows(u User32, o *Options) *WindowsBackend {
	opts := o.withDefaults()
	return &WindowsBackend{u: u, logger: opts.Logger}
}

// VirtualKey encodes a virtual-key code for the Windows backend.
func VirtualKey(vk uint16) uint16 {
	return vk + VirtualKeyOffset
}

// DecodeWindowsKey splits an encoded key into the arguments of keybd_event. Scan codes get
// KEYEVENTF_SCANCODE; virtual keys have the offset removed.
func DecodeWindowsKey(key uint16) (vk byte, scan byte, flags uint32) {
	if key < VirtualKeyOffset {
		flags |= KeyEventFScanCode
	} else {
		key -= VirtualKeyOffset
	}
	return byte(key), byte(key + scanHint), flags
}

func windowsModifiers(st keyboard.State) []uint16 {
	var mods []uint16
	if st.Alt {
		mods = append(mods, winKeyAlt)
	}
	if st.AltGr {
		mods = append(mods, winKeyAlt, winKeyCtrl)
	}
	if st.Shift {
		mods = append(mods, winKeyShift)
	}
	if st.Ctrl {
		mods = append(mods, winKeyCtrl)
	}
	if st.RShift {
		mods = append(mods, winKeyRShift)
	}
	if st.RCtrl {
		mods = append(mods, winKeyRControl)
	}
	return mods
}

// RunAction holds the modifiers, taps each key, then releases the modifiers in press order.
func (w *WindowsBackend) RunAction(st keyboard.State) {
	mods := windowsModifiers(st)
	for _, m := range mods {
		w.downKey(m)
	}
	for _, k := range st.Keys {
		w.downKey(uint16(k))
		w.upKey(uint16(k))
	}
	for _, m := range mods {
		w.upKey(m)
	}
}

func (w *WindowsBackend) downKey(key uint16) {
	w.send(key, 0)
}

func (w *WindowsBackend) upKey(key uint16) {
	w.send(key, KeyEventFKeyUp)
}

func (w *WindowsBackend) send(key uint16, extra uint32) {
	vk, scan, flags := DecodeWindowsKey(key)
	flags |= extra
	log.Trace(w.logger, "keybd_event", "vk", vk, "scan", scan, "flags", flags)
	w.u.KeybdEvent(vk, scan, flags, 0)
}
