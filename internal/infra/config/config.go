package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	BackendViewer = "viewer"
	BackendNone   = "none"
)

// Config - runtime settings of the chart demo
type Config struct {
	Display DisplayConfig `mapstructure:"display"`
	Render  RenderConfig  `mapstructure:"render"`
	Log     LogConfig     `mapstructure:"log"`
}

// DisplayConfig - where rendered figures go
type DisplayConfig struct {
	Backend     string   `mapstructure:"backend"`      // viewer or none
	Viewer      string   `mapstructure:"viewer"`       // empty = OS default
	ViewerArgs  []string `mapstructure:"viewer_args"`  // inserted before the image path
	WaitTimeout int      `mapstructure:"wait_timeout"` // seconds to wait for the temp PNG
	ViewTimeout int      `mapstructure:"view_timeout"` // seconds the viewer may run, 0 = unlimited
	KeepFiles   bool     `mapstructure:"keep_files"`   // leave temp PNGs for viewers that detach
	TempDir     string   `mapstructure:"temp_dir"`
}

type RenderConfig struct {
	FontPaths []string `mapstructure:"font_paths"`
	FontSize  float64  `mapstructure:"font_size"`
}

type LogConfig struct {
	File    string `mapstructure:"file"`
	Level   string `mapstructure:"level"`
	Verbose bool   `mapstructure:"verbose"`
}

// flagKeys maps command-line flag names onto config keys.
var flagKeys = map[string]string{
	"display":  "display.backend",
	"viewer":   "display.viewer",
	"log-file": "log.file",
	"verbose":  "log.verbose",
}

// LoadConfig resolves the configuration, lowest priority first:
// 1. defaults
// 2. config.yaml (or configFile)
// 3. .env file and environment
// 4. flags that were set explicitly
func LoadConfig(flags *pflag.FlagSet, configFile string) (*Config, error) {
	godotenv.Load(".env")

	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.ReadInConfig() // optional
	}

	setupEnvAliases(v)

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	// lists coming from env are comma-separated strings
	config.Display.ViewerArgs = stringList(v.Get("display.viewer_args"))
	config.Render.FontPaths = stringList(v.Get("render.font_paths"))

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func setupEnvAliases(v *viper.Viper) {
	v.BindEnv("display.backend", "CHARTDEMO_DISPLAY")
	v.BindEnv("display.viewer", "CHARTDEMO_VIEWER")
	v.BindEnv("display.viewer_args", "CHARTDEMO_VIEWER_ARGS")
	v.BindEnv("display.wait_timeout", "CHARTDEMO_WAIT_TIMEOUT")
	v.BindEnv("display.view_timeout", "CHARTDEMO_VIEW_TIMEOUT")
	v.BindEnv("display.keep_files", "CHARTDEMO_KEEP_FILES")
	v.BindEnv("display.temp_dir", "CHARTDEMO_TEMP_DIR")

	v.BindEnv("render.font_paths", "CHARTDEMO_FONT_PATHS")
	v.BindEnv("render.font_size", "CHARTDEMO_FONT_SIZE")

	v.BindEnv("log.file", "CHARTDEMO_LOG_FILE")
	v.BindEnv("log.level", "CHARTDEMO_LOG_LEVEL")
	v.BindEnv("log.verbose", "CHARTDEMO_VERBOSE")
}

func setDefaults(v *viper.Viper) {
	// Display
	v.SetDefault("display.backend", BackendViewer)
	v.SetDefault("display.viewer", "")
	v.SetDefault("display.viewer_args", []string{})
	v.SetDefault("display.wait_timeout", 5)
	v.SetDefault("display.view_timeout", 0)
	v.SetDefault("display.keep_files", true)
	v.SetDefault("display.temp_dir", "")

	// Render
	v.SetDefault("render.font_paths", []string{})
	v.SetDefault("render.font_size", 16.0)

	// Log
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.verbose", false)
}

func stringList(raw interface{}) []string {
	switch v := raw.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return []string{}
		}
		parts := strings.Split(v, ",")
		for i, part := range parts {
			parts[i] = strings.TrimSpace(part)
		}
		return parts
	case []string:
		return v
	case []interface{}:
		result := make([]string, 0, len(v))
		for _, item := range v {
			if str, ok := item.(string); ok {
				result = append(result, strings.TrimSpace(str))
			}
		}
		return result
	}
	return []string{}
}

func validateConfig(cfg *Config) error {
	switch cfg.Display.Backend {
	case BackendViewer, BackendNone:
	default:
		return fmt.Errorf("unknown display backend %q: expected %s or %s", cfg.Display.Backend, BackendViewer, BackendNone)
	}
	if cfg.Display.WaitTimeout < 0 {
		return fmt.Errorf("display.wait_timeout must not be negative, got %d", cfg.Display.WaitTimeout)
	}
	if cfg.Display.ViewTimeout < 0 {
		return fmt.Errorf("display.view_timeout must not be negative, got %d", cfg.Display.ViewTimeout)
	}
	if cfg.Render.FontSize <= 0 {
		return fmt.Errorf("render.font_size must be positive, got %v", cfg.Render.FontSize)
	}
	return nil
}
