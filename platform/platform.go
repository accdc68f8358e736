// Package platform turns a keyboard.State into native key events. One Backend exists per
// operating system; each hides its injection facility behind a small interface so the
// sequencing can be exercised on any host.
package platform

import (
	"fmt"
	"runtime"
	"strings"
)

// Platform names a backend family.
type Platform string

const (
	Linux   Platform = "linux"
	Darwin  Platform = "darwin"
	Windows Platform = "windows"
)

// Current returns the token for the operating system this binary runs on.
func Current() Platform {
	return Platform(runtime.GOOS)
}

// ParsePlatform accepts a platform name; "auto" and "" resolve to Current.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Current(), nil
	case "linux":
		return Linux, nil
	case "darwin", "macos", "mac":
		return Darwin, nil
	case "windows", "win":
		return Windows, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrPlatformUnsupported, s)
	}
}

func (p Platform) String() string {
	return string(p)
}
