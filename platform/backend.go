package platform

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Alia5/keybd/internal/log"
	"github.com/Alia5/keybd/keyboard"
)

// Backend executes one keyboard request against the operating system. Implementations do not
// modify st and do not report per-event failures; those are logged.
//
// A Backend is not safe for concurrent use.
type Backend interface {
	RunAction(st keyboard.State)
}

const (
	DefaultDeviceName = "keybd_event"
	DefaultKeyDelay   = 10 * time.Millisecond
)

// DefaultUinputPaths are probed in order by the Linux backend.
var DefaultUinputPaths = []string{"/dev/uinput", "/dev/input/uinput"}

// Options configures backend construction. The zero value is valid.
type Options struct {
	Logger *slog.Logger
	// RawLogger receives every frame written to the uinput device.
	RawLogger log.RawLogger
	// DeviceName is the name of the virtual uinput device.
	DeviceName string
	// UinputPaths overrides DefaultUinputPaths.
	UinputPaths []string
	// KeyDelay is the pause between posting a key's down and up events on macOS. Nil
	// selects DefaultKeyDelay; zero posts the up event immediately.
	KeyDelay *time.Duration
	// Sleep defaults to time.Sleep.
	Sleep func(time.Duration)
}

func (o *Options) withDefaults() Options {
	var out Options
	if o != nil {
		out = *o
	}
	out.Logger = log.OrDiscard(out.Logger)
	if out.RawLogger == nil {
		out.RawLogger = log.NewRaw(nil)
	}
	if out.DeviceName == "" {
		out.DeviceName = DefaultDeviceName
	}
	if len(out.UinputPaths) == 0 {
		out.UinputPaths = DefaultUinputPaths
	}
	if out.KeyDelay == nil {
		d := DefaultKeyDelay
		out.KeyDelay = &d
	}
	if out.Sleep == nil {
		out.Sleep = time.Sleep
	}
	return out
}

// New builds the backend for p and acquires its native handle. Only the facility compiled
// for the running OS is available; any other token yields ErrPlatformUnsupported.
func New(p Platform, o *Options) (Backend, error) {
	opts := o.withDefaults()
	switch p {
	case Linux:
		dev, err := OpenUinput(&opts)
		if err != nil {
			return nil, err
		}
		return NewLinux(dev, &opts), nil
	case Darwin:
		q, err := newQuartz()
		if err != nil {
			return nil, err
		}
		return NewDarwin(q, &opts), nil
	case Windows:
		u, err := newUser32()
		if err != nil {
			return nil, err
		}
		return NewWindows(u, &opts), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrPlatformUnsupported, p)
	}
}
