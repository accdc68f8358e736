package keyboard

import (
	"fmt"
	"sort"
	"strings"
)

// Key identifies a physical key position. Values follow the Linux evdev numbering and are the
// wire contract shared by every platform backend.
type Key uint16

// Canonical key identifiers
const (
	KeyReserved Key = 0
	KeyEsc      Key = 1

	// Numbers 1-0 (top row)
	Key1 Key = 2
	Key2 Key = 3
	Key3 Key = 4
	Key4 Key = 5
	Key5 Key = 6
	Key6 Key = 7
	Key7 Key = 8
	Key8 Key = 9
	Key9 Key = 10
	Key0 Key = 11

	// Layout dependent punctuation (named by position)
	KeySP1  Key = 41 // ` on US
	KeySP2  Key = 12 // -
	KeySP3  Key = 13 // =
	KeySP4  Key = 26 // [
	KeySP5  Key = 27 // ]
	KeySP6  Key = 39 // ;
	KeySP7  Key = 40 // '
	KeySP8  Key = 43 // \
	KeySP9  Key = 51 // ,
	KeySP10 Key = 52 // .
	KeySP11 Key = 53 // /
	KeySP12 Key = 86 // 102nd key (ISO)

	// Letters
	KeyQ Key = 16
	KeyW Key = 17
	KeyE Key = 18
	KeyR Key = 19
	KeyT Key = 20
	KeyY Key = 21
	KeyU Key = 22
	KeyI Key = 23
	KeyO Key = 24
	KeyP Key = 25
	KeyA Key = 30
	KeyS Key = 31
	KeyD Key = 32
	KeyF Key = 33
	KeyG Key = 34
	KeyH Key = 35
	KeyJ Key = 36
	KeyK Key = 37
	KeyL Key = 38
	KeyZ Key = 44
	KeyX Key = 45
	KeyC Key = 46
	KeyV Key = 47
	KeyB Key = 48
	KeyN Key = 49
	KeyM Key = 50

	// Special keys
	KeyBackspace  Key = 14
	KeyTab        Key = 15
	KeyEnter      Key = 28
	KeySpace      Key = 57
	KeyCapsLock   Key = 58
	KeyNumLock    Key = 69
	KeyScrollLock Key = 70

	// Function keys
	KeyF1  Key = 59
	KeyF2  Key = 60
	KeyF3  Key = 61
	KeyF4  Key = 62
	KeyF5  Key = 63
	KeyF6  Key = 64
	KeyF7  Key = 65
	KeyF8  Key = 66
	KeyF9  Key = 67
	KeyF10 Key = 68
	KeyF11 Key = 87
	KeyF12 Key = 88

	// Arrow keys
	KeyUp    Key = 103
	KeyLeft  Key = 105
	KeyRight Key = 106
	KeyDown  Key = 108

	// Numpad
	KeyKp7         Key = 71
	KeyKp8         Key = 72
	KeyKp9         Key = 73
	KeyKpMinus     Key = 74
	KeyKp4         Key = 75
	KeyKp5         Key = 76
	KeyKp6         Key = 77
	KeyKpPlus      Key = 78
	KeyKp1         Key = 79
	KeyKp2         Key = 80
	KeyKp3         Key = 81
	KeyKp0         Key = 82
	KeyKpDot       Key = 83
	KeyKpAsterisk  Key = 55
	KeyKpJPComma   Key = 95
	KeyKpEnter     Key = 96
	KeyKpSlash     Key = 98
	KeyKpEqual     Key = 117
	KeyKpPlusMinus Key = 118
	KeyKpComma     Key = 121
)

// KeyName maps canonical keys to human-readable names.
var KeyName = map[Key]string{
	KeyReserved: "Reserved",
	KeyEsc:      "Esc",

	Key1: "1", Key2: "2", Key3: "3", Key4: "4", Key5: "5",
	Key6: "6", Key7: "7", Key8: "8", Key9: "9", Key0: "0",

	KeySP1: "SP1", KeySP2: "SP2", KeySP3: "SP3", KeySP4: "SP4", KeySP5: "SP5", KeySP6: "SP6",
	KeySP7: "SP7", KeySP8: "SP8", KeySP9: "SP9", KeySP10: "SP10", KeySP11: "SP11", KeySP12: "SP12",

	KeyA: "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E", KeyF: "F", KeyG: "G",
	KeyH: "H", KeyI: "I", KeyJ: "J", KeyK: "K", KeyL: "L", KeyM: "M", KeyN: "N",
	KeyO: "O", KeyP: "P", KeyQ: "Q", KeyR: "R", KeyS: "S", KeyT: "T", KeyU: "U",
	KeyV: "V", KeyW: "W", KeyX: "X", KeyY: "Y", KeyZ: "Z",

	KeyBackspace:  "Backspace",
	KeyTab:        "Tab",
	KeyEnter:      "Enter",
	KeySpace:      "Space",
	KeyCapsLock:   "CapsLock",
	KeyNumLock:    "NumLock",
	KeyScrollLock: "ScrollLock",

	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5", KeyF6: "F6",
	KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10", KeyF11: "F11", KeyF12: "F12",

	KeyUp:    "Up",
	KeyDown:  "Down",
	KeyLeft:  "Left",
	KeyRight: "Right",

	KeyKp0: "Kp0", KeyKp1: "Kp1", KeyKp2: "Kp2", KeyKp3: "Kp3", KeyKp4: "Kp4",
	KeyKp5: "Kp5", KeyKp6: "Kp6", KeyKp7: "Kp7", KeyKp8: "Kp8", KeyKp9: "Kp9",
	KeyKpMinus:     "KpMinus",
	KeyKpPlus:      "KpPlus",
	KeyKpDot:       "KpDot",
	KeyKpAsterisk:  "KpAsterisk",
	KeyKpJPComma:   "KpJPComma",
	KeyKpEnter:     "KpEnter",
	KeyKpSlash:     "KpSlash",
	KeyKpEqual:     "KpEqual",
	KeyKpPlusMinus: "KpPlusMinus",
	KeyKpComma:     "KpComma",
}

var keyByName = func() map[string]Key {
	m := make(map[string]Key, len(KeyName))
	for k, name := range KeyName {
		m[strings.ToLower(name)] = k
	}
	return m
}()

func (k Key) String() string {
	if name, ok := KeyName[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", uint16(k))
}

// Valid reports whether k is part of the canonical key set.
func (k Key) Valid() bool {
	_, ok := KeyName[k]
	return ok
}

// ParseKey resolves a key name as printed by Key.String. Matching ignores case and an
// optional "Key" prefix, so "a", "KeyA" and "A" all yield KeyA.
func ParseKey(s string) (Key, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if k, ok := keyByName[name]; ok {
		return k, nil
	}
	if trimmed, ok := strings.CutPrefix(name, "key"); ok {
		if k, ok := keyByName[trimmed]; ok {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown key %q", s)
}

// AllKeys returns every canonical key in ascending wire order.
func AllKeys() []Key {
	keys := make([]Key, 0, len(KeyName))
	for k := range KeyName {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
