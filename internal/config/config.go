// Package config loads application configuration from file and
// environment. Env overrides use the PEEL_ prefix; the config file lives
// at ~/.config/peel/config.toml unless PEEL_CONFIG points elsewhere.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root configuration structure.
type Config struct {
	Content ContentConfig
	Panels  PanelsConfig
	Gesture GestureConfig
	UI      UIConfig
}

// ContentConfig configures the document store.
type ContentConfig struct {
	Root       string   // document root directory
	Extensions []string // scanned file types; empty uses the built-in set
}

// PanelsConfig configures the two edge panels.
type PanelsConfig struct {
	LeftEnabled  bool `mapstructure:"left_enabled"`
	RightEnabled bool `mapstructure:"right_enabled"`
	LeftWidth    int  `mapstructure:"left_width"`
	RightWidth   int  `mapstructure:"right_width"`
}

// GestureConfig configures pan recognition.
type GestureConfig struct {
	Threshold int // cells of travel before a pan is recognized
}

// UIConfig configures appearance.
type UIConfig struct {
	Theme         string
	ShowStatusBar bool `mapstructure:"show_status_bar"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Content: ContentConfig{
			Root: ".",
		},
		Panels: PanelsConfig{
			LeftEnabled:  true,
			RightEnabled: true,
			LeftWidth:    32,
			RightWidth:   36,
		},
		Gesture: GestureConfig{
			Threshold: 3,
		},
		UI: UIConfig{
			Theme:         "default",
			ShowStatusBar: true,
		},
	}
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	d := Default()
	v.SetDefault("content.root", d.Content.Root)
	v.SetDefault("content.extensions", d.Content.Extensions)
	v.SetDefault("panels.left_enabled", d.Panels.LeftEnabled)
	v.SetDefault("panels.right_enabled", d.Panels.RightEnabled)
	v.SetDefault("panels.left_width", d.Panels.LeftWidth)
	v.SetDefault("panels.right_width", d.Panels.RightWidth)
	v.SetDefault("gesture.threshold", d.Gesture.Threshold)
	v.SetDefault("ui.theme", d.UI.Theme)
	v.SetDefault("ui.show_status_bar", d.UI.ShowStatusBar)

	v.SetConfigType("toml")

	if cfgPath := os.Getenv("PEEL_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "peel"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PEEL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// The config file is optional.
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Validate()
	return &c, nil
}

// Validate clamps out-of-range values back to their defaults.
func (c *Config) Validate() {
	d := Default()
	if c.Panels.LeftWidth < 16 {
		c.Panels.LeftWidth = d.Panels.LeftWidth
	}
	if c.Panels.RightWidth < 16 {
		c.Panels.RightWidth = d.Panels.RightWidth
	}
	if c.Gesture.Threshold < 1 {
		c.Gesture.Threshold = d.Gesture.Threshold
	}
	if c.UI.Theme == "" {
		c.UI.Theme = d.UI.Theme
	}
}

// Save writes the config to disk, creating the directory if needed. Used
// to persist preferences changed in the UI, such as the theme.
func Save(c *Config) error {
	path := os.Getenv("PEEL_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "peel", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("content.root", c.Content.Root)
	v.Set("content.extensions", c.Content.Extensions)
	v.Set("panels.left_enabled", c.Panels.LeftEnabled)
	v.Set("panels.right_enabled", c.Panels.RightEnabled)
	v.Set("panels.left_width", c.Panels.LeftWidth)
	v.Set("panels.right_width", c.Panels.RightWidth)
	v.Set("gesture.threshold", c.Gesture.Threshold)
	v.Set("ui.theme", c.UI.Theme)
	v.Set("ui.show_status_bar", c.UI.ShowStatusBar)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
