package config

import (
	"os"
	"path/filepath"
	"testing"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvAPIURL, "")

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, defaultWindowDays, cfg.WindowDays)
	assert.Contains(t, cfg.SecretsDir, filepath.Join(configDirName, "secrets"))
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvAPIURL, "")

	dir := filepath.Join(home, configDirName)
	require.NoError(t, os.MkdirAll(dir, 0o700))
	contents := "[api]\nbase_url = \"http://localhost:3000\"\n\n[activity]\nwindow_days = 7\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(contents), 0o644))

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000", cfg.BaseURL)
	assert.Equal(t, 7, cfg.WindowDays)
}

func TestEnvOverrideBeatsConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvAPIURL, "http://192.168.1.50:3000")

	dir := filepath.Join(home, configDirName)
	require.NoError(t, os.MkdirAll(dir, 0o700))
	contents := "[api]\nbase_url = \"http://localhost:3000\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(contents), 0o644))

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "http://192.168.1.50:3000", cfg.BaseURL)
}

func TestLoadRejectsNonPositiveWindow(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvAPIURL, "")

	dir := filepath.Join(home, configDirName)
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte("[activity]\nwindow_days = 0\n"), 0o644))

	_, err := Load(viper.New())
	assert.ErrorContains(t, err, "activity window")
}

func TestWriteDefaultCreatesParseableFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path, err := WriteDefault()
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var layout fileLayout
	require.NoError(t, toml.Unmarshal(data, &layout))
	assert.Equal(t, DefaultBaseURL, layout.API.BaseURL)
	assert.Equal(t, defaultWindowDays, layout.Activity.WindowDays)

	_, err = WriteDefault()
	assert.ErrorContains(t, err, "already exists")
}
