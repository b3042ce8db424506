package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Config holds every tunable of the experience: window, intro text, countdown
// target, particle pool size, the reason list and the optional music track.
type Config struct {
	Title  string `koanf:"title" yaml:"title"`
	Width  int    `koanf:"width" yaml:"width"`
	Height int    `koanf:"height" yaml:"height"`

	Intro         string `koanf:"intro" yaml:"intro"`
	TypingDelayMs int    `koanf:"typing_delay_ms" yaml:"typing_delay_ms"`

	// TargetDate is the countdown target, RFC3339.
	TargetDate string `koanf:"target_date" yaml:"target_date"`

	Particles int `koanf:"particles" yaml:"particles"`

	Reasons      []string `koanf:"reasons" yaml:"reasons"`
	FinalMessage string   `koanf:"final_message" yaml:"final_message"`

	PrefsPath string `koanf:"prefs_path" yaml:"prefs_path"`
	MusicPath string `koanf:"music_path" yaml:"music_path"`
}

// DefaultConfig returns the built-in experience.
func DefaultConfig() *Config {
	return &Config{
		Title:         "Heartfall",
		Width:         960,
		Height:        600,
		Intro:         "Hey you. I made you something.\nWatch the hearts drift for a moment, then press Begin.",
		TypingDelayMs: 40,
		TargetDate:    "2027-02-14T00:00:00Z",
		Particles:     80,
		Reasons: []string{
			"Your laugh is my favorite sound in any room.",
			"You make ordinary Tuesdays feel like small holidays.",
			"You always know when I need quiet and when I need noise.",
			"You are braver than you give yourself credit for.",
			"The way you talk about the things you love.",
			"You remember the little things everyone else forgets.",
			"Your puns. Especially the terrible ones.",
			"You make the best of wrong turns, literal and otherwise.",
			"The face you make when you concentrate.",
			"You believed in me before I did.",
			"Home is wherever you happen to be standing.",
			"You dance in the kitchen like nobody is watching.",
			"Your kindness to strangers, waiters and stray cats.",
			"Every plan is better the moment you are in it.",
			"Because after all this time, you still give me butterflies.",
		},
		FinalMessage: "...and a thousand more I haven't found the words for yet. I love you.",
		PrefsPath:    "heartfall_prefs.json",
		MusicPath:    "",
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (HEARTFALL_*). A missing file is not an
// error; the defaults carry the whole experience.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// HEARTFALL_TITLE -> title, etc.
	if err := k.Load(env.Provider("HEARTFALL_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "HEARTFALL_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration can actually drive the experience.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	if c.TypingDelayMs <= 0 {
		return fmt.Errorf("typing_delay_ms must be positive, got %d", c.TypingDelayMs)
	}
	if c.Particles < 0 {
		return fmt.Errorf("particles must not be negative, got %d", c.Particles)
	}
	if len(c.Reasons) == 0 {
		return fmt.Errorf("reasons must not be empty")
	}
	if _, err := c.Target(); err != nil {
		return fmt.Errorf("invalid target_date %q: %w", c.TargetDate, err)
	}
	return nil
}

// Target parses the countdown target instant.
func (c *Config) Target() (time.Time, error) {
	return time.Parse(time.RFC3339, c.TargetDate)
}

// TypingDelay is the per-character reveal delay.
func (c *Config) TypingDelay() time.Duration {
	return time.Duration(c.TypingDelayMs) * time.Millisecond
}
