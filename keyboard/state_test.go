package keyboard_test

import (
	"testing"

	"github.com/Alia5/keybd/keyboard"
	"github.com/stretchr/testify/assert"
)

func TestClear(t *testing.T) {
	st := keyboard.State{
		Ctrl: true, Alt: true, Shift: true, RCtrl: true, RShift: true, AltGr: true,
		Keys: []keyboard.Key{keyboard.KeyA, keyboard.KeyB},
	}
	st.Clear()

	assert.False(t, st.Ctrl)
	assert.False(t, st.Alt)
	assert.False(t, st.Shift)
	assert.False(t, st.RCtrl)
	assert.False(t, st.RShift)
	assert.False(t, st.AltGr)
	assert.Empty(t, st.Keys)
	assert.False(t, st.HasModifiers())
}

func TestKeySequence(t *testing.T) {
	type testCase struct {
		name     string
		apply    func(st *keyboard.State)
		expected []keyboard.Key
	}

	cases := []testCase{
		{
			name: "add keys appends in order",
			apply: func(st *keyboard.State) {
				st.AddKeys(keyboard.KeyC)
				st.AddKeys(keyboard.KeyA, keyboard.KeyB)
			},
			expected: []keyboard.Key{keyboard.KeyC, keyboard.KeyA, keyboard.KeyB},
		},
		{
			name: "set keys replaces prior state",
			apply: func(st *keyboard.State) {
				st.AddKeys(keyboard.KeyC, keyboard.KeyD)
				st.SetKeys(keyboard.KeyX)
			},
			expected: []keyboard.Key{keyboard.KeyX},
		},
		{
			name: "duplicates are kept",
			apply: func(st *keyboard.State) {
				st.AddKey(keyboard.KeyA)
				st.AddKey(keyboard.KeyA)
				st.AddKeys(keyboard.KeyZ, keyboard.KeyA)
			},
			expected: []keyboard.Key{keyboard.KeyA, keyboard.KeyA, keyboard.KeyZ, keyboard.KeyA},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var st keyboard.State
			tc.apply(&st)
			assert.Equal(t, tc.expected, st.Keys)
		})
	}
}

func TestSetKeysDoesNotAliasCaller(t *testing.T) {
	keys := []keyboard.Key{keyboard.KeyA, keyboard.KeyB}
	var st keyboard.State
	st.SetKeys(keys...)
	keys[0] = keyboard.KeyZ

	assert.Equal(t, []keyboard.Key{keyboard.KeyA, keyboard.KeyB}, st.Keys)
}

func TestModifierSetters(t *testing.T) {
	var st keyboard.State
	st.HasShift(true)
	st.HasRCtrl(true)

	assert.True(t, st.Shift)
	assert.True(t, st.RCtrl)
	assert.False(t, st.Ctrl)
	assert.False(t, st.RShift)
	assert.True(t, st.HasModifiers())

	st.HasShift(false)
	st.HasRCtrl(false)
	st.HasAltGr(true)
	st.HasAlt(true)
	st.HasCtrl(true)
	st.HasRShift(true)
	assert.Equal(t, keyboard.State{Alt: true, AltGr: true, Ctrl: true, RShift: true}, st)
}

func TestClone(t *testing.T) {
	st := keyboard.State{Shift: true}
	st.AddKeys(keyboard.KeyA, keyboard.KeyZ)

	c := st.Clone()
	st.AddKey(keyboard.KeyQ)
	st.Keys[0] = keyboard.KeyW
	st.HasShift(false)

	assert.True(t, c.Shift)
	assert.Equal(t, []keyboard.Key{keyboard.KeyA, keyboard.KeyZ}, c.Keys)
}
