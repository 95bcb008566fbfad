package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// EnvAPIURL overrides every other base-URL source except an explicit
	// command-line flag.
	EnvAPIURL = "HUDDLE_API_URL"

	configDirName  = ".huddle"
	configFileName = "config.toml"

	baseURLKey    = "api.base_url"
	secretsDirKey = "secrets.dir"
	windowDaysKey = "activity.window_days"

	// DefaultBaseURL is the production endpoint; development setups point
	// HUDDLE_API_URL at a local server instead.
	DefaultBaseURL = "https://api.huddle.example.com"

	defaultWindowDays = 14

	configFileMode  = 0o644
	configDirMode   = 0o700
	tempFilePattern = ".config-*.toml.tmp"
)

type Config struct {
	BaseURL    string
	SecretsDir string
	WindowDays int
}

// Load resolves configuration. Base-URL priority: HUDDLE_API_URL, then the
// config file, then the compiled-in production default.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(filepath.Join(homeDir, configDirName))
	v.SetDefault(baseURLKey, DefaultBaseURL)
	v.SetDefault(secretsDirKey, filepath.Join(homeDir, configDirName, "secrets"))
	v.SetDefault(windowDaysKey, defaultWindowDays)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		BaseURL:    v.GetString(baseURLKey),
		SecretsDir: v.GetString(secretsDirKey),
		WindowDays: v.GetInt(windowDaysKey),
	}

	if override := os.Getenv(EnvAPIURL); override != "" {
		cfg.BaseURL = override
	}

	if cfg.BaseURL == "" {
		return Config{}, errors.New("api base url is empty")
	}
	if cfg.WindowDays <= 0 {
		return Config{}, fmt.Errorf("activity window must be positive, got %d", cfg.WindowDays)
	}

	return cfg, nil
}

type fileLayout struct {
	API struct {
		BaseURL string `toml:"base_url"`
	} `toml:"api"`
	Secrets struct {
		Dir string `toml:"dir"`
	} `toml:"secrets"`
	Activity struct {
		WindowDays int `toml:"window_days"`
	} `toml:"activity"`
}

// WriteDefault creates ~/.huddle/config.toml with the compiled-in
// defaults and returns its path. Refuses to clobber an existing file.
func WriteDefault() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	dir := filepath.Join(homeDir, configDirName)
	path := filepath.Join(dir, configFileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config file already exists at %s", path)
	}

	var layout fileLayout
	layout.API.BaseURL = DefaultBaseURL
	layout.Secrets.Dir = filepath.Join(dir, "secrets")
	layout.Activity.WindowDays = defaultWindowDays

	data, err := toml.Marshal(layout)
	if err != nil {
		return "", fmt.Errorf("encode default config: %w", err)
	}

	if err := os.MkdirAll(dir, configDirMode); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}
	if err := writeAtomic(dir, path, data); err != nil {
		return "", err
	}

	return path, nil
}

// writeAtomic stages the file next to its destination and renames it into
// place so a crash never leaves a half-written config.
func writeAtomic(dir, path string, data []byte) error {
	tmp, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write temp config file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp config file: %w", err)
	}
	if err := os.Chmod(tmpPath, configFileMode); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("chmod temp config file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("install config file: %w", err)
	}

	return nil
}
