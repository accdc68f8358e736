//go:build !linux

package platform

import "os"

const uinputSupported = false

func createUinput(f *os.File, _ string, _ *Options) (UinputDevice, error) {
	_ = f.Close()
	return nil, ErrPlatformUnsupported
}
