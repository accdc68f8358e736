package platform

import (
	"errors"
	"io/fs"
	"os"
)

// OpenUinput finds the uinput node, opens it and creates a virtual keyboard on it.
func OpenUinput(o *Options) (UinputDevice, error) {
	opts := o.withDefaults()
	if !uinputSupported {
		return nil, ErrPlatformUnsupported
	}

	path, err := findUinput(opts.UinputPaths, fileExists)
	if err != nil {
		return nil, err
	}
	f, err := openUinputFile(path, openWriteOnly)
	if err != nil {
		return nil, err
	}
	dev, err := createUinput(f, path, &opts)
	if err != nil {
		return nil, err
	}
	opts.Logger.Info("uinput device created", "path", path, "name", opts.DeviceName)
	return dev, nil
}

func findUinput(paths []string, exists func(string) bool) (string, error) {
	for _, p := range paths {
		if exists(p) {
			return p, nil
		}
	}
	return "", ErrDeviceNotFound
}

func openUinputFile(path string, open func(string) (*os.File, error)) (*os.File, error) {
	f, err := open(path)
	if err == nil {
		return f, nil
	}
	if errors.Is(err, fs.ErrPermission) {
		return nil, &PermissionError{Path: path, Err: err}
	}
	return nil, &DeviceError{Op: "open " + path, Err: err}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func openWriteOnly(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_WRONLY, 0)
}
