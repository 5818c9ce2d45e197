package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/iulianpascalau/oled-monitoring/services/display/common"
	"github.com/pelletier/go-toml/v2"
)

const (
	defaultWidth                   = 128
	defaultHeight                  = 32
	defaultI2CBus                  = ""
	defaultRefreshIntervalInSecs   = 2
	defaultRotationIntervalInSecs  = 5
	defaultSplashDurationInSeconds = 5
	defaultSplashText              = "SKYNET"
	defaultTickIntervalInMillis    = 100
	defaultProbeTimeoutInSeconds   = 5
	defaultMeterBoxes              = 10
)

// PanelConfig describes the physical display
type PanelConfig struct {
	Width  int    `toml:"Width"`
	Height int    `toml:"Height"`
	I2CBus string `toml:"I2CBus"`
}

// MetricConfig defines a single metric probe of the catalog
type MetricConfig struct {
	Key        string   `toml:"Key"`
	Source     string   `toml:"Source"`
	Command    string   `toml:"Command"`
	JSONFields []string `toml:"JSONFields"`
	Format     string   `toml:"Format"`
	Chartable  bool     `toml:"Chartable"`
}

// PageConfig describes one page of the rotation. Type-specific fields are ignored by the other page kinds.
type PageConfig struct {
	Name                string   `toml:"Name"`
	Type                string   `toml:"Type"`
	Metrics             []string `toml:"Metrics"`
	Chart               string   `toml:"Chart"`
	Low                 *float64 `toml:"Low"`
	High                *float64 `toml:"High"`
	HighFromTotalMemory bool     `toml:"HighFromTotalMemory"`
	Boxes               int      `toml:"Boxes"`
	Warning             float64  `toml:"Warning"`
}

// Config maps to the config.toml file for the display service
type Config struct {
	Panel                     PanelConfig    `toml:"Panel"`
	RefreshIntervalInSeconds  uint32         `toml:"RefreshIntervalInSeconds"`
	RotationIntervalInSeconds uint32         `toml:"RotationIntervalInSeconds"`
	SplashDurationInSeconds   uint32         `toml:"SplashDurationInSeconds"`
	SplashText                string         `toml:"SplashText"`
	TickIntervalInMillis      uint32         `toml:"TickIntervalInMillis"`
	ProbeTimeoutInSeconds     uint32         `toml:"ProbeTimeoutInSeconds"`
	Metrics                   []MetricConfig `toml:"Metrics"`
	Pages                     []PageConfig   `toml:"Pages"`
}

// LoadConfig parses a TOML file into the Config struct and fills in the missing defaults
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", filepath, err)
	}

	var cfg Config
	err = toml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	ApplyDefaults(&cfg)

	return &cfg, nil
}

// LoadConfigOrDefault parses the TOML file like LoadConfig. A missing file selects DefaultConfig,
// any other read or decode error is returned.
func LoadConfigOrDefault(filepath string) (*Config, error) {
	_, err := os.Stat(filepath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := DefaultConfig()
		return &cfg, nil
	}

	return LoadConfig(filepath)
}

// ApplyDefaults replaces the zero values of the optional settings with their defaults.
// A zero SplashDurationInSeconds is kept and disables the splash banner.
func ApplyDefaults(cfg *Config) {
	if cfg.Panel.Width == 0 {
		cfg.Panel.Width = defaultWidth
	}
	if cfg.Panel.Height == 0 {
		cfg.Panel.Height = defaultHeight
	}
	if cfg.RefreshIntervalInSeconds == 0 {
		cfg.RefreshIntervalInSeconds = defaultRefreshIntervalInSecs
	}
	if cfg.RotationIntervalInSeconds == 0 {
		cfg.RotationIntervalInSeconds = defaultRotationIntervalInSecs
	}
	if cfg.SplashText == "" {
		cfg.SplashText = defaultSplashText
	}
	if cfg.TickIntervalInMillis == 0 {
		cfg.TickIntervalInMillis = defaultTickIntervalInMillis
	}
	if cfg.ProbeTimeoutInSeconds == 0 {
		cfg.ProbeTimeoutInSeconds = defaultProbeTimeoutInSeconds
	}

	for i := range cfg.Metrics {
		if cfg.Metrics[i].Source == "" {
			cfg.Metrics[i].Source = common.SourceShell
		}
	}
	for i := range cfg.Pages {
		if common.PageKind(cfg.Pages[i].Type) == common.PageMeter && cfg.Pages[i].Boxes == 0 {
			cfg.Pages[i].Boxes = defaultMeterBoxes
		}
	}
}
