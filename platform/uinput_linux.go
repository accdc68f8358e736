//go:build linux

package platform

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"sync"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/Alia5/keybd/internal/log"
)

const uinputSupported = true

// linux/input-event-codes.h
const (
	evSyn      = 0x00
	evKey      = 0x01
	synReport  = 0
	busVirtual = 0x06
	// KEY_MAX
	maxKeyCode = 0x2ff
)

// linux/uinput.h ioctls (asm-generic encoding)
const (
	uiDevCreate  = 0x5501     // _IO('U', 1)
	uiDevDestroy = 0x5502     // _IO('U', 2)
	uiDevSetup   = 0x405c5503 // _IOW('U', 3, struct uinput_setup)
	uiSetEvBit   = 0x40045564 // _IOW('U', 100, int)
	uiSetKeyBit  = 0x40045565 // _IOW('U', 101, int)
)

const uinputMaxNameSize = 80

type inputID struct {
	Bustype uint16
	Vendor  uint16
	Product uint16
	Version uint16
}

// struct uinput_setup
type uinputSetup struct {
	ID           inputID
	Name         [uinputMaxNameSize]byte
	FFEffectsMax uint32
}

// struct uinput_user_dev, for kernels older than 4.5 without UI_DEV_SETUP.
type uinputUserDev struct {
	Name         [uinputMaxNameSize]byte
	ID           inputID
	FFEffectsMax uint32
	Absmax       [64]int32
	Absmin       [64]int32
	Absfuzz      [64]int32
	Absflat      [64]int32
}

// struct input_event
type inputEvent struct {
	Time  unix.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

type uinputDevice struct {
	f    *os.File
	path string
	raw  log.RawLogger

	mu  sync.Mutex
	buf bytes.Buffer
}

func ioctl(fd, req, arg uintptr) error {
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, req, arg); errno != 0 {
		return errno
	}
	return nil
}

func createUinput(f *os.File, path string, o *Options) (UinputDevice, error) {
	fail := func(op string, err error) (UinputDevice, error) {
		_ = f.Close()
		return nil, &DeviceError{Op: op, Err: err}
	}

	fd := f.Fd()
	if err := ioctl(fd, uiSetEvBit, evKey); err != nil {
		return fail("UI_SET_EVBIT EV_KEY", err)
	}
	if err := ioctl(fd, uiSetEvBit, evSyn); err != nil {
		return fail("UI_SET_EVBIT EV_SYN", err)
	}
	for code := uintptr(1); code <= maxKeyCode; code++ {
		if err := ioctl(fd, uiSetKeyBit, code); err != nil {
			return fail("UI_SET_KEYBIT", err)
		}
	}

	id := inputID{Bustype: busVirtual, Vendor: 0x1, Product: 0x1, Version: 1}
	setup := uinputSetup{ID: id}
	copy(setup.Name[:uinputMaxNameSize-1], o.DeviceName)
	if err := ioctl(fd, uiDevSetup, uintptr(unsafe.Pointer(&setup))); err != nil {
		if !errors.Is(err, unix.EINVAL) && !errors.Is(err, unix.ENOTTY) {
			return fail("UI_DEV_SETUP", err)
		}
		legacy := uinputUserDev{ID: id}
		legacy.Name = setup.Name
		if err := binary.Write(f, binary.NativeEndian, &legacy); err != nil {
			return fail("write uinput_user_dev", err)
		}
	}

	if err := ioctl(fd, uiDevCreate, 0); err != nil {
		return fail("UI_DEV_CREATE", err)
	}
	return &uinputDevice{f: f, path: path, raw: o.RawLogger}, nil
}

func (d *uinputDevice) WriteKey(code uint16, value int32) error {
	return d.emit(evKey, code, value)
}

func (d *uinputDevice) Sync() error {
	return d.emit(evSyn, synReport, 0)
}

func (d *uinputDevice) emit(typ, code uint16, value int32) error {
	ev := inputEvent{
		Time:  unix.NsecToTimeval(time.Now().UnixNano()),
		Type:  typ,
		Code:  code,
		Value: value,
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.buf.Reset()
	if err := binary.Write(&d.buf, binary.NativeEndian, &ev); err != nil {
		return err
	}
	d.raw.Log(d.path, d.buf.Bytes())
	_, err := d.f.Write(d.buf.Bytes())
	return err
}

func (d *uinputDevice) Close() error {
	destroyErr := ioctl(d.f.Fd(), uiDevDestroy, 0)
	closeErr := d.f.Close()
	return errors.Join(destroyErr, closeErr)
}
