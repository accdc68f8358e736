//go:build linux

package platform

import (
	"testing"

	"github.com/Alia5/keybd/keyboard"
	"github.com/stretchr/testify/assert"
)

func TestUinputRegistersEveryKey(t *testing.T) {
	assert.Equal(t, 0x2ff, maxKeyCode)
	for _, k := range keyboard.AllKeys() {
		assert.LessOrEqual(t, int(k), maxKeyCode, "key %s outside registered range", k)
	}
	assert.LessOrEqual(t, linuxKeyRightCtrl, maxKeyCode)
}
