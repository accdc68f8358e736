package platform

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindUinput(t *testing.T) {
	type testCase struct {
		name     string
		existing map[string]bool
		expected string
		err      error
	}

	cases := []testCase{
		{
			name:     "primary node",
			existing: map[string]bool{"/dev/uinput": true, "/dev/input/uinput": true},
			expected: "/dev/uinput",
		},
		{
			name:     "fallback node",
			existing: map[string]bool{"/dev/input/uinput": true},
			expected: "/dev/input/uinput",
		},
		{
			name:     "missing",
			existing: map[string]bool{},
			err:      ErrDeviceNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path, err := findUinput(DefaultUinputPaths, func(p string) bool { return tc.existing[p] })
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, path)
		})
	}
}

func TestFindUinputOnDisk(t *testing.T) {
	dir := t.TempDir()
	second := filepath.Join(dir, "uinput")
	require.NoError(t, os.WriteFile(second, nil, 0o600))

	path, err := findUinput([]string{filepath.Join(dir, "missing"), second}, fileExists)
	assert.NoError(t, err)
	assert.Equal(t, second, path)
}

func TestOpenUinputFilePermissionDenied(t *testing.T) {
	open := func(p string) (*os.File, error) {
		return nil, &fs.PathError{Op: "open", Path: p, Err: syscall.EACCES}
	}

	_, err := openUinputFile("/dev/uinput", open)
	require.Error(t, err)

	var perr *PermissionError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "/dev/uinput", perr.Path)
	assert.Equal(t, "sudo chmod +0666 /dev/uinput", perr.Remediation())
	assert.Contains(t, err.Error(), "sudo chmod +0666 /dev/uinput")
	assert.ErrorIs(t, err, fs.ErrPermission)
}

func TestOpenUinputFileOtherError(t *testing.T) {
	open := func(p string) (*os.File, error) {
		return nil, &fs.PathError{Op: "open", Path: p, Err: syscall.ENODEV}
	}

	_, err := openUinputFile("/dev/input/uinput", open)
	var derr *DeviceError
	require.True(t, errors.As(err, &derr))
	assert.ErrorIs(t, err, syscall.ENODEV)

	var perr *PermissionError
	assert.False(t, errors.As(err, &perr))
}

func TestOpenUinputMissingNode(t *testing.T) {
	if !uinputSupported {
		t.Skip("uinput is linux only")
	}
	dir := t.TempDir()
	_, err := OpenUinput(&Options{UinputPaths: []string{filepath.Join(dir, "a"), filepath.Join(dir, "b")}})
	assert.ErrorIs(t, err, ErrDeviceNotFound)
}

func TestOptionsDefaults(t *testing.T) {
	opts := (*Options)(nil).withDefaults()
	assert.Equal(t, DefaultDeviceName, opts.DeviceName)
	assert.Equal(t, DefaultUinputPaths, opts.UinputPaths)
	require.NotNil(t, opts.KeyDelay)
	assert.Equal(t, DefaultKeyDelay, *opts.KeyDelay)
	assert.NotNil(t, opts.Logger)
	assert.NotNil(t, opts.RawLogger)
	assert.NotNil(t, opts.Sleep)
}
