package platform

import (
	"errors"
	"fmt"
)

var (
	// ErrPlatformUnsupported is returned when no backend is available for the requested platform
	// in this build.
	ErrPlatformUnsupported = errors.New("platform not supported")

	// ErrDeviceNotFound is returned when none of the uinput device nodes exist.
	ErrDeviceNotFound = errors.New("uinput device node not found, try 'sudo modprobe uinput'")

	// ErrUnsupportedKey marks a key without a native mapping. It never aborts a sequence.
	ErrUnsupportedKey = errors.New("key not supported on this platform")
)

// PermissionError reports a uinput node the current user cannot open for writing.
type PermissionError struct {
	Path string
	Err  error
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission error for %s try cmd : %s", e.Path, e.Remediation())
}

// Remediation returns a shell command that grants write access to the node.
func (e *PermissionError) Remediation() string {
	return "sudo chmod +0666 " + e.Path
}

func (e *PermissionError) Unwrap() error { return e.Err }

// DeviceError reports a failure to acquire or create a native input device.
type DeviceError struct {
	Op  string
	Err error
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("device: %s: %v", e.Op, e.Err)
}

func (e *DeviceError) Unwrap() error { return e.Err }
