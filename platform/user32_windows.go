//go:build windows

package platform

import (
	"golang.org/x/sys/windows"
)

var (
	user32         = windows.NewLazySystemDLL("user32.dll")
	procKeybdEvent = user32.NewProc("keybd_event")
)

type user32Proc struct{}

func newUser32() (User32, error) {
	if err := procKeybdEvent.Find(); err != nil {
		return nil, &DeviceError{Op: "load user32!keybd_event", Err: err}
	}
	return user32Proc{}, nil
}

func (user32Proc) KeybdEvent(vk, scan byte, flags uint32, extraInfo uintptr) {
	_, _, _ = procKeybdEvent.Call(uintptr(vk), uintptr(scan), uintptr(flags), extraInfo)
}
