package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/afero"
)

// Config holds every user setting. It is persisted as a flat JSON object.
type Config struct {
	APIKey         string `json:"api_key"`
	Query          string `json:"query"`
	Categories     string `json:"categories"`
	Purity         string `json:"purity"`
	Resolutions    string `json:"resolutions"`
	Ratios         string `json:"ratios"`
	Sorting        string `json:"sorting"`
	Order          string `json:"order"`
	ChangeInterval int    `json:"change_interval"`
	DownloadDir    string `json:"download_dir"`
	TopRange       string `json:"topRange"`
	StartMinimized bool   `json:"start_minimized"`
	LaunchOnBoot   bool   `json:"launch_on_boot"`
}

// Default returns a configuration populated with default values.
func Default() *Config {
	return &Config{
		Categories:     DefaultCategories,
		Purity:         DefaultPurity,
		Resolutions:    DefaultResolutions,
		Ratios:         DefaultRatios,
		Sorting:        SortRandom,
		Order:          OrderDesc,
		ChangeInterval: DefaultChangeInterval,
		DownloadDir:    DefaultDownloadDir(),
		TopRange:       Range1Month,
	}
}

// DefaultDownloadDir returns ~/Pictures/Wallpapers, or a relative Wallpapers dir if the home
// directory cannot be resolved.
func DefaultDownloadDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "Wallpapers"
	}
	return filepath.Join(homeDir, "Pictures", "Wallpapers")
}

// Clone returns a copy safe to hand to another goroutine.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// Normalize forces the category and purity masks to exactly three characters, raises a change
// interval below one minute to the default and resets sorting, order and range values the
// settings window cannot offer.
func (c *Config) Normalize() {
	c.Categories = FixedFlags(c.Categories)
	c.Purity = FixedFlags(c.Purity)
	if c.ChangeInterval < 1 {
		c.ChangeInterval = DefaultChangeInterval
	}
	if !lo.Contains(SortModes, c.Sorting) {
		c.Sorting = SortRandom
	}
	if !lo.Contains(Orders, c.Order) {
		c.Order = OrderDesc
	}
	if !lo.Contains(TopRanges, c.TopRange) {
		c.TopRange = Range1Month
	}
}

// Interval returns the change interval as a duration. Non-positive values count as one minute.
func (c *Config) Interval() time.Duration {
	if c.ChangeInterval < 1 {
		return time.Minute
	}
	return time.Duration(c.ChangeInterval) * time.Minute
}

// FixedFlags right-pads s with "0" and truncates it to three characters. Any character other
// than "1" reads as "0".
func FixedFlags(s string) string {
	var b strings.Builder
	for _, r := range s {
		if b.Len() == flagWidth {
			break
		}
		if r == '1' {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	for b.Len() < flagWidth {
		b.WriteByte('0')
	}
	return b.String()
}

// FlagsString encodes a set of toggles as a "0"/"1" mask.
func FlagsString(flags ...bool) string {
	var b strings.Builder
	for _, f := range flags {
		if f {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// FlagSet reports whether position i of mask is "1".
func FlagSet(mask string, i int) bool {
	return i >= 0 && i < len(mask) && mask[i] == '1'
}

// Store reads and writes the configuration file.
type Store struct {
	fs   afero.Fs
	path string
}

// NewStore creates a store backed by the file at path on fs.
func NewStore(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path}
}

// DefaultPath returns the settings file path relative to the working directory.
func DefaultPath() string {
	return FileName
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns the persisted configuration merged onto defaults. A missing or unreadable file
// yields the defaults.
func (s *Store) Load() *Config {
	cfg := Default()
	data, err := afero.ReadFile(s.fs, s.path)
	switch {
	case os.IsNotExist(err):
		log.Printf("No config file at %s, using defaults", s.path)
	case err != nil:
		log.Printf("Error reading config file %s: %v", s.path, err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			log.Printf("Error parsing config file %s: %v", s.path, err)
			cfg = Default()
		}
	}
	cfg.Normalize()
	return cfg
}

// Save overwrites the settings file with cfg.
func (s *Store) Save(cfg *Config) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := afero.WriteFile(s.fs, s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
