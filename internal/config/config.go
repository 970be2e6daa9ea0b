package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

const (
	appName            = "ecomdash"
	defaultTheme       = "Catppuccin Mocha"
	defaultChartHeight = 12
	minChartHeight     = 6
)

type UIConfig struct {
	// ChartHeight is the number of terminal rows used by bar chart columns.
	ChartHeight int `json:"chart_height"`
}

type Config struct {
	Theme string   `json:"theme"`
	UI    UIConfig `json:"ui"`
}

func DefaultConfig() Config {
	return Config{
		Theme: defaultTheme,
		UI: UIConfig{
			ChartHeight: defaultChartHeight,
		},
	}
}

func ConfigDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("APPDATA"), appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName)
}

func ConfigPath() string {
	return filepath.Join(ConfigDir(), "settings.json")
}

// LoadFrom reads the config at path. A missing file yields defaults; a file
// that does not parse yields defaults together with the error.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config %s: %w", path, err)
	}

	return normalize(cfg), nil
}

func normalize(cfg Config) Config {
	if cfg.Theme == "" {
		cfg.Theme = defaultTheme
	}
	if cfg.UI.ChartHeight <= 0 {
		cfg.UI.ChartHeight = defaultChartHeight
	}
	if cfg.UI.ChartHeight < minChartHeight {
		cfg.UI.ChartHeight = minChartHeight
	}
	return cfg
}

// saveMu guards read-modify-write cycles on the config file.
var saveMu sync.Mutex

func SaveTo(path string, cfg Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// SaveThemeTo persists a theme name into the config file (read-modify-write).
func SaveThemeTo(path string, theme string) error {
	saveMu.Lock()
	defer saveMu.Unlock()

	cfg, err := LoadFrom(path)
	if err != nil {
		cfg = DefaultConfig()
	}
	cfg.Theme = theme
	return SaveTo(path, cfg)
}
