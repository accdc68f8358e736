//go:build !windows

package platform

func newUser32() (User32, error) {
	return nil, ErrPlatformUnsupported
}
