package config

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/gogpu/gg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/Kryxzael/AnalogTimer/internal/clockface"
)

// EnvPath overrides the location of the config file.
const EnvPath = "ANALOG_TIMER_CONFIG"

type Config struct {
	App       AppConfig       `yaml:"app"`
	Countdown CountdownConfig `yaml:"countdown"`
	Theme     ThemeConfig     `yaml:"theme"`
	Clock     ClockConfig     `yaml:"clock"`
	Database  DatabaseConfig  `yaml:"database"`
	Sound     SoundConfig     `yaml:"sound"`
	Log       LogConfig       `yaml:"log"`
}

type AppConfig struct {
	Name         string `yaml:"name"`
	Version      string `yaml:"version"`
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
}

type CountdownConfig struct {
	// Target is the instant counted down to. Zero means the next midnight.
	Target       time.Time     `yaml:"target"`
	Overtime     bool          `yaml:"overtime"`
	TickInterval time.Duration `yaml:"tick_interval"`
}

type ThemeConfig struct {
	Foreground string `yaml:"foreground"`
	Grayed     string `yaml:"grayed"`
	Background string `yaml:"background"`
	TargetDay  string `yaml:"target_day"`
	FontSize   int    `yaml:"font_size"`
}

type ClockConfig struct {
	Scheme           string  `yaml:"scheme"`
	Seed             int64   `yaml:"seed"` // 0 seeds from the current time
	PaletteSize      int     `yaml:"palette_size"`
	ClickPaletteSize int     `yaml:"click_palette_size"`
	DiscScale        float64 `yaml:"disc_scale"`
	DiscIncrement    float64 `yaml:"disc_increment"`
	HourFloor        float64 `yaml:"hour_floor"`
	HourWindow       float64 `yaml:"hour_window"`
	MinuteFloor      float64 `yaml:"minute_floor"`
	MinuteWindow     float64 `yaml:"minute_window"`
	NumeralSize      float64 `yaml:"numeral_size"`
	Font             string  `yaml:"font"` // empty uses the built-in Go font
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type SoundConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Frequency float64 `yaml:"frequency"`
	Volume    float64 `yaml:"volume"`
	File      string  `yaml:"file"` // optional WAV played instead of the beeps
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the settings written on first run.
func DefaultConfig() *Config {
	face := clockface.DefaultOptions()
	dir, _ := getConfigDir()
	return &Config{
		App: AppConfig{
			Name:         "Analog Timer",
			Version:      "1.0.0",
			WindowWidth:  520,
			WindowHeight: 640,
		},
		Countdown: CountdownConfig{
			Overtime:     false,
			TickInterval: time.Second / 60,
		},
		Theme: ThemeConfig{
			Foreground: "#eeeeee",
			Grayed:     "#555555",
			Background: "#222222",
			TargetDay:  "#2a2233",
			FontSize:   32,
		},
		Clock: ClockConfig{
			Scheme:           "vivid",
			PaletteSize:      face.PaletteSize,
			ClickPaletteSize: face.ClickPaletteSize,
			DiscScale:        face.Disc.Scale,
			DiscIncrement:    face.Disc.Increment,
			HourFloor:        face.Fader.HourFloor,
			HourWindow:       face.Fader.HourWindow,
			MinuteFloor:      face.Fader.MinuteFloor,
			MinuteWindow:     face.Fader.MinuteWindow,
			NumeralSize:      face.NumeralSize,
		},
		Database: DatabaseConfig{
			Path: filepath.Join(dir, "sessions.db"),
		},
		Sound: SoundConfig{
			Enabled:   true,
			Frequency: 880,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

var hexColor = regexp.MustCompile(`^#?([0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// Validate checks the values the rest of the program relies on.
func (c *Config) Validate() error {
	var errs []error
	for name, v := range map[string]string{
		"theme.foreground": c.Theme.Foreground,
		"theme.grayed":     c.Theme.Grayed,
		"theme.background": c.Theme.Background,
		"theme.target_day": c.Theme.TargetDay,
	} {
		if !hexColor.MatchString(v) {
			errs = append(errs, fmt.Errorf("%s: invalid color %q", name, v))
		}
	}
	if _, err := clockface.ParseScheme(c.Clock.Scheme); err != nil {
		errs = append(errs, fmt.Errorf("clock.scheme: %w", err))
	}
	if c.Clock.PaletteSize <= 0 || c.Clock.ClickPaletteSize <= 0 {
		errs = append(errs, errors.New("clock: palette sizes must be positive"))
	}
	if c.Clock.DiscScale <= 0 || c.Clock.DiscScale > 1 {
		errs = append(errs, fmt.Errorf("clock.disc_scale: %v out of (0, 1]", c.Clock.DiscScale))
	}
	if c.Clock.DiscIncrement < 0 {
		errs = append(errs, fmt.Errorf("clock.disc_increment: %v is negative", c.Clock.DiscIncrement))
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	return errors.Join(errs...)
}

// TargetAt returns the configured target, or the midnight following now when
// none is set.
func (c *Config) TargetAt(now time.Time) time.Time {
	if !c.Countdown.Target.IsZero() {
		return c.Countdown.Target
	}
	y, m, d := now.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
}

// FaceOptions converts the clock and theme sections into face options.
func (c *Config) FaceOptions() clockface.Options {
	opts := clockface.DefaultOptions()
	opts.Theme.Background = Color(c.Theme.Background)
	opts.Theme.TargetDay = Color(c.Theme.TargetDay)
	opts.Theme.Numeral = Color(c.Theme.Foreground)
	opts.PaletteSize = c.Clock.PaletteSize
	opts.ClickPaletteSize = c.Clock.ClickPaletteSize
	opts.NumeralSize = c.Clock.NumeralSize
	opts.Disc = clockface.DiscConfig{
		Scale:     c.Clock.DiscScale,
		Increment: c.Clock.DiscIncrement,
	}
	opts.Fader = clockface.Fader{
		HourFloor:    c.Clock.HourFloor,
		HourWindow:   c.Clock.HourWindow,
		MinuteFloor:  c.Clock.MinuteFloor,
		MinuteWindow: c.Clock.MinuteWindow,
	}
	return opts
}

// Rand returns the random source shared by everything that draws palettes.
func (c *Config) Rand() *rand.Rand {
	seed := c.Clock.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Color parses a validated hex color ("#rgb", "#rgba", "#rrggbb" or
// "#rrggbbaa"). Anything else is opaque black.
func Color(hex string) color.NRGBA {
	return color.NRGBAModel.Convert(gg.Hex(hex).Color()).(color.NRGBA)
}

type Manager struct {
	config     *Config
	configPath string
}

// NewManager loads the config from $ANALOG_TIMER_CONFIG or the user's home
// directory, creating it with defaults on first run.
func NewManager() (*Manager, error) {
	configPath := os.Getenv(EnvPath)
	if configPath == "" {
		configDir, err := getConfigDir()
		if err != nil {
			return nil, err
		}
		configPath = filepath.Join(configDir, "config.yaml")
	}
	return NewManagerAt(configPath)
}

// NewManagerAt loads the config at configPath, creating it with defaults when
// the file does not exist.
func NewManagerAt(configPath string) (*Manager, error) {
	manager := &Manager{
		configPath: configPath,
	}

	err := manager.loadConfig()
	switch {
	case errors.Is(err, os.ErrNotExist):
		manager.config = DefaultConfig()
		if err := manager.SaveConfig(); err != nil {
			return nil, err
		}
		log.Info().Str("path", configPath).Msg("created default config")
	case err != nil:
		return nil, err
	}

	if err := manager.config.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", configPath, err)
	}
	return manager, nil
}

func (m *Manager) loadConfig() error {
	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return err
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("parse %s: %w", m.configPath, err)
	}

	m.config = config
	return nil
}

func (m *Manager) SaveConfig() error {
	data, err := yaml.Marshal(m.config)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	return os.WriteFile(m.configPath, data, 0644)
}

func (m *Manager) GetConfig() *Config {
	return m.config
}

func (m *Manager) Path() string {
	return m.configPath
}

func getConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".analog-timer"), nil
}
