package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-ricrob/keypadsolver/internal/keypad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keypadsolver.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
depth: 25
workers: 3
fewest_turns: true
warm: true
keypads:
  numeric: ["789", "456", "123", " 0A"]
  directional:
    - " ^A"
    - "<v>"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Depth)
	assert.Equal(t, 3, cfg.Workers)
	assert.True(t, cfg.FewestTurns)
	assert.True(t, cfg.Warm)
	assert.Equal(t, keypad.Numeric().Fingerprint(), cfg.Numeric.Fingerprint())
	assert.Equal(t, keypad.Directional().Fingerprint(), cfg.Directional.Fingerprint())

	sc := cfg.Solver(nil)
	assert.Equal(t, 25, sc.Depth)
	assert.Same(t, cfg.Numeric, sc.Numeric)
}

func TestDefaults(t *testing.T) {
	for _, content := range []string{"", "workers: 2\n"} {
		cfg, err := Parse([]byte(content))
		require.NoError(t, err)
		assert.Equal(t, 2, cfg.Depth)
		assert.Same(t, keypad.Numeric(), cfg.Numeric)
		assert.Same(t, keypad.Directional(), cfg.Directional)
	}

	cfg, err := Parse([]byte("depth: 0\n"))
	require.NoError(t, err)
	assert.Zero(t, cfg.Depth, "an explicit zero depth is kept")
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"negativeDepth", "depth: -1\n", "depth must not be negative"},
		{"negativeWorkers", "workers: -2\n", "workers must not be negative"},
		{"unknownField", "robots: 3\n", "failed to parse config file"},
		{"badYAML", "depth: [\n", "failed to parse config file"},
		{"badNumeric", "keypads:\n  numeric: [\"12\", \"3\"]\n", "same length"},
		{"badDirectional", "keypads:\n  directional: [\"1^A\", \"<v>\"]\n", "unexpected"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse([]byte(test.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.want)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	_, err := Load(path)
	require.Error(t, err)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T: %v", err, err)
	assert.Equal(t, path, zErr.Metadata()["path"])
}

func TestPartDepth(t *testing.T) {
	d, err := PartDepth(1)
	require.NoError(t, err)
	assert.Equal(t, 2, d)
	d, err = PartDepth(2)
	require.NoError(t, err)
	assert.Equal(t, 25, d)
	_, err = PartDepth(3)
	require.Error(t, err)
}
