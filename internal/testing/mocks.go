// Package testing provides recording fakes for the native input sinks and for
// platform.Backend.
package testing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Alia5/keybd/keyboard"
	"github.com/Alia5/keybd/platform"
)

// ErrInjected is returned by recorders configured to fail.
var ErrInjected = errors.New("injected failure")

// UinputCall is one recorded call on a UinputRecorder. Op is "key" or "sync".
type UinputCall struct {
	Op    string
	Code  uint16
	Value int32
}

// Down is the call expected for a key press.
func Down(code uint16) UinputCall { return UinputCall{Op: "key", Code: code, Value: 1} }

// Up is the call expected for a key release.
func Up(code uint16) UinputCall { return UinputCall{Op: "key", Code: code, Value: 0} }

// Sync is the call expected for a device flush.
func Sync() UinputCall { return UinputCall{Op: "sync"} }

// UinputRecorder implements platform.UinputDevice.
type UinputRecorder struct {
	Calls []UinputCall
	// FailCodes makes WriteKey fail for these codes; the call is still recorded.
	FailCodes map[uint16]bool
	FailSync  bool
	Closed    bool
}

func (r *UinputRecorder) WriteKey(code uint16, value int32) error {
	r.Calls = append(r.Calls, UinputCall{Op: "key", Code: code, Value: value})
	if r.FailCodes[code] {
		return ErrInjected
	}
	return nil
}

func (r *UinputRecorder) Sync() error {
	r.Calls = append(r.Calls, Sync())
	if r.FailSync {
		return ErrInjected
	}
	return nil
}

func (r *UinputRecorder) Close() error {
	r.Closed = true
	return nil
}

// PostedEvent is a keyboard event posted through a QuartzRecorder.
type PostedEvent struct {
	Keycode uint16
	Down    bool
	Flags   platform.EventFlags
}

// QuartzRecorder implements platform.Quartz. Ops holds an ordered trace such as
// "source", "post down 0x00", "sleep 10ms", "post up 0x00".
type QuartzRecorder struct {
	Posted          []PostedEvent
	Ops             []string
	SourcesCreated  int
	SourcesReleased int
	EventsCreated   int
	EventsReleased  int
	// FailSourceAt makes the n-th (1-based) NewEventSource call fail.
	FailSourceAt int
}

type quartzSource struct {
	r *QuartzRecorder
}

func (s *quartzSource) Release() { s.r.SourcesReleased++ }

type quartzEvent struct {
	r       *QuartzRecorder
	keycode uint16
	down    bool
	flags   platform.EventFlags
}

func (e *quartzEvent) SetFlags(flags platform.EventFlags) { e.flags = flags }

func (e *quartzEvent) Post() {
	dir := "up"
	if e.down {
		dir = "down"
	}
	e.r.Ops = append(e.r.Ops, fmt.Sprintf("post %s 0x%02x", dir, e.keycode))
	e.r.Posted = append(e.r.Posted, PostedEvent{Keycode: e.keycode, Down: e.down, Flags: e.flags})
}

func (e *quartzEvent) Release() { e.r.EventsReleased++ }

func (r *QuartzRecorder) NewEventSource() (platform.EventSource, error) {
	if r.FailSourceAt > 0 && r.SourcesCreated+1 == r.FailSourceAt {
		r.SourcesCreated++
		return nil, ErrInjected
	}
	r.SourcesCreated++
	r.Ops = append(r.Ops, "source")
	return &quartzSource{r: r}, nil
}

func (r *QuartzRecorder) NewKeyboardEvent(src platform.EventSource, keycode uint16, down bool) (platform.KeyEvent, error) {
	if _, ok := src.(*quartzSource); !ok {
		return nil, errors.New("foreign event source")
	}
	r.EventsCreated++
	return &quartzEvent{r: r, keycode: keycode, down: down}, nil
}

// Sleep can be passed as platform.Options.Sleep to trace the inter-event delay.
func (r *QuartzRecorder) Sleep(d time.Duration) {
	r.Ops = append(r.Ops, "sleep "+d.String())
}

// KeybdCall is one recorded keybd_event invocation.
type KeybdCall struct {
	VK        byte
	Scan      byte
	Flags     uint32
	ExtraInfo uintptr
}

// User32Recorder implements platform.User32.
type User32Recorder struct {
	Calls []KeybdCall
}

func (r *User32Recorder) KeybdEvent(vk, scan byte, flags uint32, extraInfo uintptr) {
	r.Calls = append(r.Calls, KeybdCall{VK: vk, Scan: scan, Flags: flags, ExtraInfo: extraInfo})
}

// BackendRecorder implements platform.Backend and io.Closer.
type BackendRecorder struct {
	States []keyboard.State
	// OnRun runs inside RunAction after the state has been recorded.
	OnRun  func(st keyboard.State)
	Closed bool
}

func (b *BackendRecorder) RunAction(st keyboard.State) {
	b.States = append(b.States, st)
	if b.OnRun != nil {
		b.OnRun(st)
	}
}

func (b *BackendRecorder) Close() error {
	b.Closed = true
	return nil
}

// LogRecord is one record captured by a LogRecorder, with its attributes flattened by key.
type LogRecord struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

// LogRecorder is a slog.Handler that keeps every record at any level.
type LogRecorder struct {
	mu      sync.Mutex
	records []LogRecord
}

// Logger returns a logger writing to r.
func (r *LogRecorder) Logger() *slog.Logger { return slog.New(r) }

func (r *LogRecorder) Enabled(context.Context, slog.Level) bool { return true }

func (r *LogRecorder) Handle(_ context.Context, rec slog.Record) error {
	lr := LogRecord{Level: rec.Level, Message: rec.Message, Attrs: map[string]any{}}
	rec.Attrs(func(a slog.Attr) bool {
		lr.Attrs[a.Key] = a.Value.Any()
		return true
	})
	r.mu.Lock()
	r.records = append(r.records, lr)
	r.mu.Unlock()
	return nil
}

func (r *LogRecorder) WithAttrs([]slog.Attr) slog.Handler { return r }
func (r *LogRecorder) WithGroup(string) slog.Handler      { return r }

// Records returns the records whose message equals msg.
func (r *LogRecorder) Records(msg string) []LogRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []LogRecord
	for _, rec := range r.records {
		if rec.Message == msg {
			out = append(out, rec)
		}
	}
	return out
}
