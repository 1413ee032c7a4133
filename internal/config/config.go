package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Start   string
	Journal JournalConfig
	UI      UIConfig
}

// JournalConfig holds visit-journal settings.
type JournalConfig struct {
	Enabled bool
	Path    string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Suggestions bool
	Theme       string
}

// Load reads configuration from file and env. Env var overrides use prefix HASHNAV_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("start", "#/home")
	v.SetDefault("journal.enabled", false)
	v.SetDefault("journal.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "hashnav", "visits.db"))
	v.SetDefault("ui.suggestions", true)
	v.SetDefault("ui.theme", "dark")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("HASHNAV_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "hashnav"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("HASHNAV")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
