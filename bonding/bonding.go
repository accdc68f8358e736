// Package bonding is the entry point for simulating key presses: build an Instance, describe
// the keys and modifiers, then Launch.
//
//	kb, err := bonding.New(platform.Current(), nil)
//	if err != nil {
//		return err
//	}
//	defer kb.Close()
//	kb.HasShift(true)
//	kb.AddKeys(keyboard.KeyA, keyboard.KeyZ)
//	kb.Launch()
//
// On Linux the compositor needs a moment to pick up a freshly created uinput device, so wait
// roughly two seconds between New and the first Launch.
package bonding

import (
	"io"

	"github.com/Alia5/keybd/keyboard"
	"github.com/Alia5/keybd/platform"
)

// Instance owns one platform.Backend and the request state it launches. An Instance is not
// safe for concurrent use; separate Instances are independent.
type Instance struct {
	state   keyboard.State
	backend platform.Backend
}

// New creates an Instance backed by the native facility for p. Construction errors are final
// for this Instance; retry by calling New again.
func New(p platform.Platform, o *platform.Options) (*Instance, error) {
	b, err := platform.New(p, o)
	if err != nil {
		return nil, err
	}
	return NewWithBackend(b), nil
}

// NewWithBackend creates an Instance around a caller-supplied backend.
func NewWithBackend(b platform.Backend) *Instance {
	return &Instance{backend: b}
}

func (i *Instance) Clear()                       { i.state.Clear() }
func (i *Instance) SetKeys(keys ...keyboard.Key) { i.state.SetKeys(keys...) }
func (i *Instance) AddKeys(keys ...keyboard.Key) { i.state.AddKeys(keys...) }
func (i *Instance) AddKey(k keyboard.Key)        { i.state.AddKey(k) }
func (i *Instance) HasCtrl(b bool)               { i.state.HasCtrl(b) }
func (i *Instance) HasAlt(b bool)                { i.state.HasAlt(b) }
func (i *Instance) HasShift(b bool)              { i.state.HasShift(b) }
func (i *Instance) HasRCtrl(b bool)              { i.state.HasRCtrl(b) }
func (i *Instance) HasRShift(b bool)             { i.state.HasRShift(b) }
func (i *Instance) HasAltGr(b bool)              { i.state.HasAltGr(b) }

// State returns a copy of the current request.
func (i *Instance) State() keyboard.State {
	return i.state.Clone()
}

// Backend returns the backend this Instance drives.
func (i *Instance) Backend() platform.Backend {
	return i.backend
}

// Launch hands a snapshot of the current request to the backend and returns once every
// native event has been issued. Later changes to the Instance do not affect the snapshot.
func (i *Instance) Launch() {
	i.backend.RunAction(i.state.Clone())
}

// Close releases the backend's native handle, if it holds one.
func (i *Instance) Close() error {
	if c, ok := i.backend.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
