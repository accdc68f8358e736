package configpaths_test

import (
	"path/filepath"
	"testing"

	"github.com/Alia5/keybd/internal/configpaths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCandidatePathsRoutesUserPath(t *testing.T) {
	type testCase struct {
		name   string
		user   string
		pickFn func(j, y, t []string) []string
	}

	cases := []testCase{
		{name: "json", user: "my.json", pickFn: func(j, _, _ []string) []string { return j }},
		{name: "yaml", user: "my.yaml", pickFn: func(_, y, _ []string) []string { return y }},
		{name: "yml", user: "my.yml", pickFn: func(_, y, _ []string) []string { return y }},
		{name: "toml", user: "my.toml", pickFn: func(_, _, t []string) []string { return t }},
		{name: "unknown extension defaults to json", user: "my.conf", pickFn: func(j, _, _ []string) []string { return j }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			j, y, tm := configpaths.ConfigCandidatePaths(tc.user)
			paths := tc.pickFn(j, y, tm)
			require.NotEmpty(t, paths)
			assert.Equal(t, tc.user, paths[0])
		})
	}
}

func TestConfigCandidatePathsUsesConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("AppData", dir)

	cfgDir, err := configpaths.DefaultConfigDir()
	require.NoError(t, err)

	jsonPaths, _, _ := configpaths.ConfigCandidatePaths("")
	assert.Contains(t, jsonPaths, filepath.Join(cfgDir, "press.json"))
}

func TestEnsureDir(t *testing.T) {
	target := filepath.Join(t.TempDir(), "a", "b", "press.yaml")
	require.NoError(t, configpaths.EnsureDir(target))
	assert.DirExists(t, filepath.Dir(target))
}
