// Package config provides configuration loading for monthpop.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	Window WindowConfig `yaml:"window"`
	UI     UIConfig     `yaml:"ui"`
	Tray   TrayConfig   `yaml:"tray"`
}

// WindowConfig configures the popup window.
type WindowConfig struct {
	Width       int  `yaml:"width"`
	Height      int  `yaml:"height"`
	X           int  `yaml:"x"` // Initial offset from the left screen edge (layer shell only)
	Y           int  `yaml:"y"` // Initial offset from the top screen edge (layer shell only)
	AlwaysOnTop bool `yaml:"always_on_top"`
}

// UIConfig configures the popup appearance.
type UIConfig struct {
	Theme         string `yaml:"theme"` // "system", "light", "dark"
	Font          string `yaml:"font"`
	GradientStart string `yaml:"gradient_start"` // Top-left background color
	GradientEnd   string `yaml:"gradient_end"`   // Bottom-right background color
	Radius        int    `yaml:"radius"`
}

// TrayConfig configures the optional StatusNotifierItem icon.
type TrayConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{
		Window: WindowConfig{AlwaysOnTop: true},
	}
	cfg.applyDefaults()
	return cfg
}

// DefaultPath returns ~/.config/monthpop/config.yaml (or the platform equivalent).
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get config dir: %w", err)
	}
	return filepath.Join(configDir, "monthpop", "config.yaml"), nil
}

// Load reads configuration from the default location.
// A missing file is not an error; defaults are returned instead.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}

	cfg, err := LoadFrom(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// LoadFrom reads configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	path = expandPath(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML configuration and applies defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Config{
		Window: WindowConfig{AlwaysOnTop: true},
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults sets default values for unspecified config options.
func (c *Config) applyDefaults() {
	if c.Window.Width == 0 {
		c.Window.Width = 380
	}
	if c.Window.Height == 0 {
		c.Window.Height = 400
	}
	if c.UI.Theme == "" {
		c.UI.Theme = "system"
	}
	if c.UI.Font == "" {
		c.UI.Font = "Segoe UI, Cantarell, sans-serif"
	}
	if c.UI.GradientStart == "" {
		c.UI.GradientStart = "#1e3264"
	}
	if c.UI.GradientEnd == "" {
		c.UI.GradientEnd = "#0a1432"
	}
	if c.UI.Radius == 0 {
		c.UI.Radius = 10
	}
}

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

func (c *Config) validate() error {
	switch c.UI.Theme {
	case "system", "light", "dark":
	default:
		return fmt.Errorf("invalid ui.theme %q: want system, light or dark", c.UI.Theme)
	}
	for name, v := range map[string]string{
		"ui.gradient_start": c.UI.GradientStart,
		"ui.gradient_end":   c.UI.GradientEnd,
	} {
		if !hexColor.MatchString(v) {
			return fmt.Errorf("invalid %s %q: want #rgb or #rrggbb", name, v)
		}
	}
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.UI.Radius < 0 {
		return fmt.Errorf("invalid ui.radius %d", c.UI.Radius)
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// UnmarshalYAML accepts colors with or without the leading '#'.
func (c *UIConfig) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Theme         string `yaml:"theme"`
		Font          string `yaml:"font"`
		GradientStart string `yaml:"gradient_start"`
		GradientEnd   string `yaml:"gradient_end"`
		Radius        int    `yaml:"radius"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	c.Theme = strings.ToLower(strings.TrimSpace(raw.Theme))
	c.Font = raw.Font
	c.GradientStart = normalizeColor(raw.GradientStart)
	c.GradientEnd = normalizeColor(raw.GradientEnd)
	c.Radius = raw.Radius
	return nil
}

func normalizeColor(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "#") {
		return s
	}
	return "#" + s
}
