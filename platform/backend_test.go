package platform_test

import (
	"runtime"
	"testing"

	"github.com/Alia5/keybd/platform"
	"github.com/stretchr/testify/assert"
)

func TestParsePlatform(t *testing.T) {
	type testCase struct {
		in       string
		expected platform.Platform
		wantErr  bool
	}

	cases := []testCase{
		{in: "", expected: platform.Current()},
		{in: "auto", expected: platform.Current()},
		{in: "linux", expected: platform.Linux},
		{in: "macOS", expected: platform.Darwin},
		{in: "darwin", expected: platform.Darwin},
		{in: "Windows", expected: platform.Windows},
		{in: "plan9", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			p, err := platform.ParsePlatform(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, platform.ErrPlatformUnsupported)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, p)
		})
	}
}

func TestCurrent(t *testing.T) {
	assert.Equal(t, runtime.GOOS, platform.Current().String())
}

func TestNewUnknownPlatform(t *testing.T) {
	b, err := platform.New(platform.Platform("plan9"), nil)
	assert.Nil(t, b)
	assert.ErrorIs(t, err, platform.ErrPlatformUnsupported)
}

func TestNewForeignPlatform(t *testing.T) {
	for _, p := range []platform.Platform{platform.Darwin, platform.Windows} {
		if p == platform.Current() {
			continue
		}
		b, err := platform.New(p, nil)
		assert.Nil(t, b, "platform %s", p)
		assert.ErrorIs(t, err, platform.ErrPlatformUnsupported, "platform %s", p)
	}
	if platform.Current() != platform.Linux {
		_, err := platform.New(platform.Linux, nil)
		assert.ErrorIs(t, err, platform.ErrPlatformUnsupported)
	}
}
