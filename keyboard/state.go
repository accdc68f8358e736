// Package keyboard provides the canonical key set and the request state that every platform
// backend consumes.
package keyboard

// State is one keyboard request: modifiers held for the duration of the request plus the keys
// to press, in press order. Left and right modifiers are distinct flags.
// Duplicates in Keys are allowed and order is preserved by every backend.
type State struct {
	Ctrl   bool
	Alt    bool
	Shift  bool
	RCtrl  bool
	RShift bool
	AltGr  bool
	Keys   []Key
}

// Clear resets the state to no modifiers and no keys.
func (st *State) Clear() {
	*st = State{}
}

// SetKeys replaces the key sequence.
func (st *State) SetKeys(keys ...Key) {
	st.Keys = append([]Key(nil), keys...)
}

// AddKeys appends keys to the sequence.
func (st *State) AddKeys(keys ...Key) {
	st.Keys = append(st.Keys, keys...)
}

// AddKey appends a single key to the sequence.
func (st *State) AddKey(k Key) {
	st.Keys = append(st.Keys, k)
}

func (st *State) HasCtrl(b bool)   { st.Ctrl = b }
func (st *State) HasAlt(b bool)    { st.Alt = b }
func (st *State) HasShift(b bool)  { st.Shift = b }
func (st *State) HasRCtrl(b bool)  { st.RCtrl = b }
func (st *State) HasRShift(b bool) { st.RShift = b }
func (st *State) HasAltGr(b bool)  { st.AltGr = b }

// Clone returns a deep copy; mutating the copy's keys never affects st.
func (st State) Clone() State {
	c := st
	if st.Keys != nil {
		c.Keys = append(make([]Key, 0, len(st.Keys)), st.Keys...)
	}
	return c
}

// HasModifiers reports whether any modifier flag is set.
func (st State) HasModifiers() bool {
	return st.Ctrl || st.Alt || st.Shift || st.RCtrl || st.RShift || st.AltGr
}
