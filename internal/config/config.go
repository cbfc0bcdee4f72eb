package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/coloredlogcat/internal/layout"
	"github.com/five82/coloredlogcat/internal/palette"
)

// ErrInvalid wraps validation failures.
var ErrInvalid = errors.New("invalid config")

// Unknown severity policies.
const (
	OnUnknownStop = "stop"
	OnUnknownSkip = "skip"
)

// Config captures everything the filter can be tuned with.
type Config struct {
	Columns              layout.Columns
	Native               bool
	HighlightAssignments bool
	OnUnknownSeverity    string
	ADBPath              string
	KnownTags            map[string]palette.Color
}

const (
	defaultConfigPath = "~/.config/coloredlogcat/config.toml"
	defaultADBPath    = "adb"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Columns:           layout.DefaultColumns(),
		OnUnknownSeverity: OnUnknownStop,
		ADBPath:           defaultADBPath,
	}
}

type rawColumns struct {
	Time     *int `toml:"time"`
	Process  *int `toml:"process"`
	Label    *int `toml:"label"`
	Severity *int `toml:"severity"`
}

type rawConfig struct {
	Native               bool              `toml:"native"`
	HighlightAssignments bool              `toml:"highlight_assignments"`
	OnUnknownSeverity    string            `toml:"on_unknown_severity"`
	ADB                  string            `toml:"adb"`
	Columns              rawColumns        `toml:"columns"`
	KnownTags            map[string]string `toml:"known_tags"`
}

// Load locates and parses the config file, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Native = raw.Native
	cfg.HighlightAssignments = raw.HighlightAssignments
	applyWidth(&cfg.Columns.Time, raw.Columns.Time)
	applyWidth(&cfg.Columns.Process, raw.Columns.Process)
	applyWidth(&cfg.Columns.Label, raw.Columns.Label)
	applyWidth(&cfg.Columns.Severity, raw.Columns.Severity)

	if policy := strings.ToLower(strings.TrimSpace(raw.OnUnknownSeverity)); policy != "" {
		cfg.OnUnknownSeverity = policy
	}
	if adb := strings.TrimSpace(raw.ADB); adb != "" {
		cfg.ADBPath = mustExpand(adb)
	}

	if len(raw.KnownTags) > 0 {
		cfg.KnownTags = make(map[string]palette.Color, len(raw.KnownTags))
		labels := make([]string, 0, len(raw.KnownTags))
		for label := range raw.KnownTags {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		for _, label := range labels {
			c, err := palette.ParseColor(raw.KnownTags[label])
			if err != nil {
				return Config{}, fmt.Errorf("%w: known_tags.%s: %v", ErrInvalid, label, err)
			}
			cfg.KnownTags[label] = c
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks column widths and the unknown severity policy.
func (c Config) Validate() error {
	if err := c.Columns.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	switch c.OnUnknownSeverity {
	case OnUnknownStop, OnUnknownSkip:
	default:
		return fmt.Errorf("%w: on_unknown_severity must be %q or %q, got %q",
			ErrInvalid, OnUnknownStop, OnUnknownSkip, c.OnUnknownSeverity)
	}
	return nil
}

// SkipUnknownSeverity reports whether lines with unknown priorities are dropped
// rather than ending the stream.
func (c Config) SkipUnknownSeverity() bool {
	return c.OnUnknownSeverity == OnUnknownSkip
}

func applyWidth(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

// DefaultPath returns the config path used when none is given.
func DefaultPath() string {
	return defaultConfigPath
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
