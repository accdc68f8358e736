package platform_test

import (
	"testing"

	keybdTesting "github.com/Alia5/keybd/internal/testing"
	"github.com/Alia5/keybd/keyboard"
	"github.com/Alia5/keybd/platform"
	"github.com/stretchr/testify/assert"
)

func TestLinuxSequence(t *testing.T) {
	type testCase struct {
		name     string
		state    keyboard.State
		expected []keybdTesting.UinputCall
	}

	down, up, sync := keybdTesting.Down, keybdTesting.Up, keybdTesting.Sync

	cases := []testCase{
		{
			name:  "shift chord",
			state: keyboard.State{Shift: true, Keys: []keyboard.Key{keyboard.KeyA, keyboard.KeyZ}},
			expected: []keybdTesting.UinputCall{
				down(42), down(30), down(44), up(30), up(44), up(42), sync(),
			},
		},
		{
			name:     "no keys still flushes",
			state:    keyboard.State{},
			expected: []keybdTesting.UinputCall{sync()},
		},
		{
			name: "all modifiers keep press order on release",
			state: keyboard.State{
				Ctrl: true, Alt: true, Shift: true, RCtrl: true, RShift: true, AltGr: true,
				Keys: []keyboard.Key{keyboard.KeyF4},
			},
			expected: []keybdTesting.UinputCall{
				down(56), down(100), down(42), down(29), down(54), down(97),
				down(62), up(62),
				up(56), up(100), up(42), up(29), up(54), up(97),
				sync(),
			},
		},
		{
			name:  "duplicates and order preserved",
			state: keyboard.State{Keys: []keyboard.Key{keyboard.KeyB, keyboard.KeyA, keyboard.KeyB}},
			expected: []keybdTesting.UinputCall{
				down(48), down(30), down(48), up(48), up(30), up(48), sync(),
			},
		},
		{
			name:  "altgr is right alt",
			state: keyboard.State{AltGr: true, Keys: []keyboard.Key{keyboard.KeyE}},
			expected: []keybdTesting.UinputCall{
				down(100), down(18), up(18), up(100), sync(),
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dev := &keybdTesting.UinputRecorder{}
			b := platform.NewLinux(dev, nil)
			b.RunAction(tc.state)
			assert.Equal(t, tc.expected, dev.Calls)
		})
	}
}

func TestLinuxContinuesAfterFailedWrite(t *testing.T) {
	dev := &keybdTesting.UinputRecorder{
		FailCodes: map[uint16]bool{uint16(keyboard.KeyA): true},
		FailSync:  true,
	}
	b := platform.NewLinux(dev, nil)

	st := keyboard.State{Ctrl: true, Keys: []keyboard.Key{keyboard.KeyA, keyboard.KeyS}}
	assert.NotPanics(t, func() { b.RunAction(st) })

	down, up := keybdTesting.Down, keybdTesting.Up
	assert.Equal(t, []keybdTesting.UinputCall{
		down(29), down(30), down(31), up(30), up(31), up(29), keybdTesting.Sync(),
	}, dev.Calls)
}

func TestLinuxDoesNotMutateState(t *testing.T) {
	dev := &keybdTesting.UinputRecorder{}
	b := platform.NewLinux(dev, nil)

	st := keyboard.State{Shift: true, Keys: []keyboard.Key{keyboard.KeyA, keyboard.KeyZ}}
	snapshot := st.Clone()
	b.RunAction(st)
	assert.Equal(t, snapshot, st)
}

func TestLinuxClose(t *testing.T) {
	dev := &keybdTesting.UinputRecorder{}
	b := platform.NewLinux(dev, nil)
	assert.NoError(t, b.Close())
	assert.True(t, dev.Closed)
}
