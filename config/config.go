// Package config loads the cellui application configuration from YAML.
//
// The file lives in the platform configuration directory:
//   - Linux: $XDG_CONFIG_HOME/cellui/config.yaml or $HOME/.config/cellui/config.yaml
//   - macOS: $HOME/.config/cellui/config.yaml
//   - Windows: %LOCALAPPDATA%\cellui\config.yaml
//
// A missing file is not an error; Load returns Default in that case.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/cellui/backend"
	"github.com/lixenwraith/cellui/graphics"
	"github.com/lixenwraith/cellui/logging"
	"github.com/lixenwraith/cellui/ui"
)

const (
	appName    = "cellui"
	configFile = "config.yaml"

	maxScreenSize = 1000
)

// Config is the on-disk application configuration
type Config struct {
	Backend   string      `yaml:"backend"`
	Width     int         `yaml:"width"`
	Height    int         `yaml:"height"`
	ColorMode string      `yaml:"color_mode"`
	LogLevel  string      `yaml:"log_level"`
	LogFile   string      `yaml:"log_file"`
	Bell      BellConfig  `yaml:"bell"`
	Theme     ThemeConfig `yaml:"theme"`
}

// BellConfig controls the audible bell
type BellConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// ThemeConfig overrides default theme colors by name or #RRGGBB; empty keeps the default
type ThemeConfig struct {
	DesktopFore string `yaml:"desktop_fore"`
	DesktopBack string `yaml:"desktop_back"`
	WindowFore  string `yaml:"window_fore"`
	WindowBack  string `yaml:"window_back"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Backend:   "default",
		ColorMode: "auto",
		Bell:      BellConfig{Enabled: true, Volume: 0.4},
	}
}

// Dir returns the OS-appropriate configuration directory
func Dir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			return filepath.Join(local, appName), nil
		}
		profile := os.Getenv("USERPROFILE")
		if profile == "" {
			return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
		}
		return filepath.Join(profile, "AppData", "Local", appName), nil
	case "darwin":
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}

// DefaultPath returns the full path of the configuration file
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// Load reads path, or DefaultPath when path is empty
// Keys missing from the file keep their Default values
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logging.Named("config").Debug("no config file, using defaults")
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration with user-only permissions
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks every field; the error names the first bad one
func (c *Config) Validate() error {
	if _, err := backend.ParseType(c.Backend); err != nil {
		return fmt.Errorf("backend: %w", err)
	}
	if c.Width < 0 || c.Width > maxScreenSize {
		return fmt.Errorf("width: %d is outside 0..%d", c.Width, maxScreenSize)
	}
	if c.Height < 0 || c.Height > maxScreenSize {
		return fmt.Errorf("height: %d is outside 0..%d", c.Height, maxScreenSize)
	}
	switch c.ColorMode {
	case "", "auto", "256", "truecolor":
	default:
		return fmt.Errorf("color_mode: unknown mode %q", c.ColorMode)
	}
	if c.LogLevel != "" {
		if _, err := logging.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("log_level: %w", err)
		}
	}
	if c.Bell.Volume < 0 || c.Bell.Volume > 1 {
		return fmt.Errorf("bell.volume: %g is outside 0..1", c.Bell.Volume)
	}
	if _, err := c.Theme.Apply(ui.DefaultTheme()); err != nil {
		return err
	}
	return nil
}

// BackendOptions converts the configuration for backend.New
func (c *Config) BackendOptions() (backend.Options, error) {
	t, err := backend.ParseType(c.Backend)
	if err != nil {
		return backend.Options{}, err
	}
	return backend.Options{
		Type:      t,
		Size:      graphics.Size{Width: c.Width, Height: c.Height},
		Title:     appName,
		ColorMode: c.ColorMode,
	}, nil
}

// Apply returns th with the configured overrides
func (t ThemeConfig) Apply(th *ui.Theme) (*ui.Theme, error) {
	out := *th
	set := func(field, value string, dst *graphics.Color) error {
		if value == "" {
			return nil
		}
		col, err := graphics.ParseColor(value)
		if err != nil {
			return fmt.Errorf("theme.%s: %w", field, err)
		}
		*dst = col
		return nil
	}
	if err := set("desktop_fore", t.DesktopFore, &out.Desktop.Character.Fg); err != nil {
		return nil, err
	}
	if err := set("desktop_back", t.DesktopBack, &out.Desktop.Character.Bg); err != nil {
		return nil, err
	}
	if err := set("window_fore", t.WindowFore, &out.Window.Background.Fg); err != nil {
		return nil, err
	}
	if err := set("window_back", t.WindowBack, &out.Window.Background.Bg); err != nil {
		return nil, err
	}
	if t.WindowBack != "" {
		for _, a := range []*graphics.CharAttribute{
			&out.Window.BorderFocused, &out.Window.BorderInactive, &out.Window.BorderDragged,
			&out.Window.Title, &out.Window.TitleInactive,
		} {
			a.Bg = out.Window.Background.Bg
		}
	}
	return &out, nil
}
