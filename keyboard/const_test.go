package keyboard_test

import (
	"testing"

	"github.com/Alia5/keybd/keyboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWireValues(t *testing.T) {
	assert.EqualValues(t, 0, keyboard.KeyReserved)
	assert.EqualValues(t, 30, keyboard.KeyA)
	assert.EqualValues(t, 44, keyboard.KeyZ)
	assert.EqualValues(t, 69, keyboard.KeyNumLock)
	assert.EqualValues(t, 86, keyboard.KeySP12)
	assert.EqualValues(t, 121, keyboard.KeyKpComma)
}

func TestAllKeys(t *testing.T) {
	keys := keyboard.AllKeys()
	require.Len(t, keys, len(keyboard.KeyName))
	assert.Equal(t, keyboard.KeyReserved, keys[0])
	assert.Equal(t, keyboard.KeyKpComma, keys[len(keys)-1])
	for i := 1; i < len(keys); i++ {
		assert.Less(t, keys[i-1], keys[i])
	}
}

func TestParseKey(t *testing.T) {
	type testCase struct {
		in       string
		expected keyboard.Key
		wantErr  bool
	}

	cases := []testCase{
		{in: "a", expected: keyboard.KeyA},
		{in: "KeyA", expected: keyboard.KeyA},
		{in: " Z ", expected: keyboard.KeyZ},
		{in: "numlock", expected: keyboard.KeyNumLock},
		{in: "KeyKpEnter", expected: keyboard.KeyKpEnter},
		{in: "1", expected: keyboard.Key1},
		{in: "sp10", expected: keyboard.KeySP10},
		{in: "nope", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			k, err := keyboard.ParseKey(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, k)
		})
	}
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "A", keyboard.KeyA.String())
	assert.Equal(t, "KpPlusMinus", keyboard.KeyKpPlusMinus.String())
	assert.Equal(t, "Key(200)", keyboard.Key(200).String())
	assert.True(t, keyboard.KeyF12.Valid())
	assert.False(t, keyboard.Key(200).Valid())
}
