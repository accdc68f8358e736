//go:build darwin && cgo

package platform

/*
#cgo darwin LDFLAGS: -framework CoreGraphics -framework CoreFoundation
#include <CoreGraphics/CoreGraphics.h>
#include <CoreFoundation/CoreFoundation.h>
#include <stdbool.h>
#include <stdint.h>

static uintptr_t keybdNewSource(void) {
        return (uintptr_t)CGEventSourceCreate(kCGEventSourceStateCombinedSessionState);
}

static uintptr_t keybdNewKeyEvent(uintptr_t src, uint16_t keycode, bool down) {
        return (uintptr_t)CGEventCreateKeyboardEvent((CGEventSourceRef)src, (CGKeyCode)keycode, down);
}

static void keybdSetFlags(uintptr_t event, uint64_t flags) {
        CGEventSetFlags((CGEventRef)event, (CGEventFlags)flags);
}

static void keybdPost(uintptr_t event) {
        CGEventPost(kCGAnnotatedSessionEventTap, (CGEventRef)event);
}

static void keybdRelease(uintptr_t ref) {
        if (ref != 0) {
                CFRelease((CFTypeRef)ref);
        }
}
*/
import "C"

import "errors"

var errQuartzCreate = errors.New("not success creating keyboard event")

type quartz struct{}

type quartzRef struct {
	ref C.uintptr_t
}

func (r *quartzRef) Release() {
	C.keybdRelease(r.ref)
	r.ref = 0
}

func (r *quartzRef) SetFlags(flags EventFlags) {
	C.keybdSetFlags(r.ref, C.uint64_t(flags))
}

func (r *quartzRef) Post() {
	C.keybdPost(r.ref)
}

func newQuartz() (Quartz, error) {
	return quartz{}, nil
}

func (quartz) NewEventSource() (EventSource, error) {
	ref := C.keybdNewSource()
	if ref == 0 {
		return nil, errQuartzCreate
	}
	return &quartzRef{ref: ref}, nil
}

func (quartz) NewKeyboardEvent(src EventSource, keycode uint16, down bool) (KeyEvent, error) {
	s, ok := src.(*quartzRef)
	if !ok {
		return nil, errors.New("event source not created by quartz")
	}
	ref := C.keybdNewKeyEvent(s.ref, C.uint16_t(keycode), C.bool(down))
	if ref == 0 {
		return nil, errQuartzCreate
	}
	return &quartzRef{ref: ref}, nil
}
