package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds demo application configuration.
type Config struct {
	Database DatabaseConfig
	Sheet    SheetConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings for the demo item store.
type DatabaseConfig struct {
	Path string
}

// SheetConfig holds sheet presentation defaults.
type SheetConfig struct {
	SnapPoints []float64
	DurationMS int
}

// UIConfig holds frame pacing settings.
type UIConfig struct {
	FPS int
}

// Load reads configuration from file and env. Env var overrides use prefix SHEETSTACK_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", ":memory:")
	v.SetDefault("sheet.snappoints", []float64{0.4, 0.85})
	v.SetDefault("sheet.durationms", 220)
	v.SetDefault("ui.fps", 60)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SHEETSTACK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "sheetstack"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SHEETSTACK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.FPS <= 0 {
		c.UI.FPS = 60
	}
	if len(c.Sheet.SnapPoints) == 0 {
		c.Sheet.SnapPoints = []float64{0.4, 0.85}
	}
	return c, nil
}
