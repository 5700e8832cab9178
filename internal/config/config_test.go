package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetViper resets viper to a clean state for each test
func resetViper() {
	viper.Reset()
}

// chdirTemp moves into a fresh temp dir so no rc files are found
func chdirTemp(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() {
		_ = os.Chdir(oldWd)
	})
	return tmpDir
}

func TestLoadConfigDefaults(t *testing.T) {
	resetViper()
	chdirTemp(t)

	config, err := LoadConfig("")
	require.NoError(t, err)
	require.NotNil(t, config)

	assert.Equal(t, ".", config.Start)
	assert.Equal(t, "console", config.Format)
	assert.Equal(t, "warn", config.LogLevel)
	assert.False(t, config.Rel)
	assert.False(t, config.Quiet)
	assert.False(t, config.Verbose)
	assert.False(t, config.Weights.NoDefaults)
	assert.Empty(t, config.Weights.File)
	assert.Empty(t, config.Weights.Overrides)
	assert.Equal(t, 30, config.Scan.MinScore)
	assert.Equal(t, 0, config.Scan.MaxDepth)
	assert.Equal(t, DefaultScanExcludes, config.Scan.Exclude)
}

func TestLoadConfigStartOverride(t *testing.T) {
	resetViper()
	chdirTemp(t)

	config, err := LoadConfig("/some/start")
	require.NoError(t, err)
	assert.Equal(t, "/some/start", config.Start)
}

func TestLoadConfigFromRCFile(t *testing.T) {
	resetViper()
	tmpDir := chdirTemp(t)

	rc := `{"format": "json", "logLevel": "debug", "weights": {"noDefaults": true}, "scan": {"minScore": 50}}`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".projrootrc.json"), []byte(rc), 0644))

	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "json", config.Format)
	assert.Equal(t, "debug", config.LogLevel)
	assert.True(t, config.Weights.NoDefaults)
	assert.Equal(t, 50, config.Scan.MinScore)
}

func TestLoadConfigInvalidFormat(t *testing.T) {
	resetViper()
	chdirTemp(t)

	viper.Set("format", "xml")
	_, err := LoadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestLoadConfigNegativeMaxDepth(t *testing.T) {
	resetViper()
	chdirTemp(t)

	viper.Set("scan.maxDepth", -1)
	_, err := LoadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max-depth")
}

func TestLoadConfigEnvironment(t *testing.T) {
	resetViper()
	chdirTemp(t)

	t.Setenv("PROJROOT_FORMAT", "markdown")

	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "markdown", config.Format)
}
