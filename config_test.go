package arithmode_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arithmode/arithmode"
)

func TestLoadConfigDefaults(t *testing.T) {
	// run from a directory without a config file
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	config, err := arithmode.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, arithmode.DefaultConfig(), config)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `mode: saturating
qualifier: sm
saturating-shifts: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	config, err := arithmode.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "saturating", config.Mode)
	assert.Equal(t, "sm", config.Qualifier)
	assert.True(t, config.SaturatingShifts)
	// unset fields keep their defaults
	assert.Equal(t, "arith", config.Marker)
}

func TestLoadConfigInvalidMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: clamping\n"), 0o644))

	_, err := arithmode.LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clamping")
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := arithmode.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
