package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
)

// Config holds the application configuration.
type Config struct {
	Theme          Theme
	ThemePreset    ThemePreset
	HighContrast   bool
	StashUntracked bool
	ExportFormat   string
}

// ThemePreset describes a named theme configuration.
type ThemePreset string

const (
	PresetDefault  ThemePreset = "default"
	PresetSolarize ThemePreset = "solarized"
	PresetDracula  ThemePreset = "dracula"
)

// Theme defines the color scheme for the application.
type Theme struct {
	AddedFg     lipgloss.Color
	RemovedFg   lipgloss.Color
	HunkFg      lipgloss.Color
	ContextFg   lipgloss.Color
	HashFg      lipgloss.Color
	HeadFg      lipgloss.Color
	BranchFg    lipgloss.Color
	RemoteFg    lipgloss.Color
	TagFg       lipgloss.Color
	BorderFg    lipgloss.Color
	TitleFg     lipgloss.Color
	TitleBg     lipgloss.Color
	HelpFg      lipgloss.Color
	SelectionBg lipgloss.Color
	SuccessFg   lipgloss.Color
	SuccessBg   lipgloss.Color
	ErrorFg     lipgloss.Color
	ErrorBg     lipgloss.Color
	InfoFg      lipgloss.Color
	InfoBg      lipgloss.Color
}

// fileConfig is the on-disk shape of the optional config file.
type fileConfig struct {
	Theme          string `toml:"theme"`
	HighContrast   bool   `toml:"high_contrast"`
	StashUntracked bool   `toml:"stash_untracked"`
	ExportFormat   string `toml:"export_format"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		ThemePreset:  PresetDefault,
		Theme:        ThemeForPreset(PresetDefault, false),
		ExportFormat: "markdown",
	}
}

// Load reads the optional config file from the user config directory
// (glit/config.toml). A missing file yields the defaults; an
// unreadable or invalid file yields the defaults plus an error the
// caller may warn about before the UI starts.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	dir, err := os.UserConfigDir()
	if err != nil {
		return cfg, nil
	}

	path := filepath.Join(dir, "glit", "config.toml")
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	if err := cfg.decode(f); err != nil {
		return DefaultConfig(), fmt.Errorf("reading config from %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) decode(r io.Reader) error {
	var fc fileConfig
	if _, err := toml.NewDecoder(r).Decode(&fc); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}
	c.apply(fc)
	return nil
}

func (c *Config) apply(fc fileConfig) {
	if fc.Theme != "" {
		c.ThemePreset = ThemePreset(fc.Theme)
	}
	c.HighContrast = fc.HighContrast
	c.StashUntracked = fc.StashUntracked
	if fc.ExportFormat != "" {
		c.ExportFormat = fc.ExportFormat
	}
	c.Theme = ThemeForPreset(c.ThemePreset, c.HighContrast)
}

// DefaultTheme returns the default color theme.
func DefaultTheme() Theme {
	return Theme{
		AddedFg:     lipgloss.Color("#A8E6A3"),
		RemovedFg:   lipgloss.Color("#E6A3A3"),
		HunkFg:      lipgloss.Color("#56B6C2"),
		ContextFg:   lipgloss.Color("#B0B0B0"),
		HashFg:      lipgloss.Color("#E5C07B"),
		HeadFg:      lipgloss.Color("#56B6C2"),
		BranchFg:    lipgloss.Color("#98C379"),
		RemoteFg:    lipgloss.Color("#61AFEF"),
		TagFg:       lipgloss.Color("#E5C07B"),
		BorderFg:    lipgloss.Color("#3A3A3A"),
		TitleFg:     lipgloss.Color("#FFFFFF"),
		TitleBg:     lipgloss.Color("#5F5FAF"),
		HelpFg:      lipgloss.Color("#888888"),
		SelectionBg: lipgloss.Color("#3E4451"),
		SuccessFg:   lipgloss.Color("#000000"),
		SuccessBg:   lipgloss.Color("#98C379"),
		ErrorFg:     lipgloss.Color("#FFFFFF"),
		ErrorBg:     lipgloss.Color("#BE5046"),
		InfoFg:      lipgloss.Color("#000000"),
		InfoBg:      lipgloss.Color("#E5C07B"),
	}
}

// ThemeForPreset resolves a preset name to a concrete Theme, optionally
// applying a high-contrast variation. Unknown presets fall back to the
// default theme.
func ThemeForPreset(preset ThemePreset, highContrast bool) Theme {
	switch preset {
	case PresetSolarize:
		return applyContrast(Theme{
			AddedFg:     lipgloss.Color("#859900"),
			RemovedFg:   lipgloss.Color("#DC322F"),
			HunkFg:      lipgloss.Color("#2AA198"),
			ContextFg:   lipgloss.Color("#93A1A1"),
			HashFg:      lipgloss.Color("#B58900"),
			HeadFg:      lipgloss.Color("#2AA198"),
			BranchFg:    lipgloss.Color("#859900"),
			RemoteFg:    lipgloss.Color("#268BD2"),
			TagFg:       lipgloss.Color("#B58900"),
			BorderFg:    lipgloss.Color("#657B83"),
			TitleFg:     lipgloss.Color("#EEE8D5"),
			TitleBg:     lipgloss.Color("#586E75"),
			HelpFg:      lipgloss.Color("#93A1A1"),
			SelectionBg: lipgloss.Color("#073642"),
			SuccessFg:   lipgloss.Color("#002B36"),
			SuccessBg:   lipgloss.Color("#859900"),
			ErrorFg:     lipgloss.Color("#FDF6E3"),
			ErrorBg:     lipgloss.Color("#DC322F"),
			InfoFg:      lipgloss.Color("#002B36"),
			InfoBg:      lipgloss.Color("#B58900"),
		}, highContrast)
	case PresetDracula:
		return applyContrast(Theme{
			AddedFg:     lipgloss.Color("#50FA7B"),
			RemovedFg:   lipgloss.Color("#FF79C6"),
			HunkFg:      lipgloss.Color("#8BE9FD"),
			ContextFg:   lipgloss.Color("#F8F8F2"),
			HashFg:      lipgloss.Color("#F1FA8C"),
			HeadFg:      lipgloss.Color("#8BE9FD"),
			BranchFg:    lipgloss.Color("#50FA7B"),
			RemoteFg:    lipgloss.Color("#BD93F9"),
			TagFg:       lipgloss.Color("#F1FA8C"),
			BorderFg:    lipgloss.Color("#44475A"),
			TitleFg:     lipgloss.Color("#F8F8F2"),
			TitleBg:     lipgloss.Color("#6272A4"),
			HelpFg:      lipgloss.Color("#BD93F9"),
			SelectionBg: lipgloss.Color("#44475A"),
			SuccessFg:   lipgloss.Color("#282A36"),
			SuccessBg:   lipgloss.Color("#50FA7B"),
			ErrorFg:     lipgloss.Color("#F8F8F2"),
			ErrorBg:     lipgloss.Color("#FF5555"),
			InfoFg:      lipgloss.Color("#282A36"),
			InfoBg:      lipgloss.Color("#F1FA8C"),
		}, highContrast)
	default:
		return applyContrast(DefaultTheme(), highContrast)
	}
}

func applyContrast(theme Theme, highContrast bool) Theme {
	if !highContrast {
		return theme
	}

	boost := func(c lipgloss.Color, factor float64) lipgloss.Color {
		return lipgloss.Color(adjustBrightness(string(c), factor))
	}

	theme.AddedFg = boost(theme.AddedFg, 0.25)
	theme.RemovedFg = boost(theme.RemovedFg, 0.25)
	theme.HunkFg = boost(theme.HunkFg, 0.25)
	theme.ContextFg = boost(theme.ContextFg, 0.2)
	theme.HashFg = boost(theme.HashFg, 0.2)
	theme.HeadFg = boost(theme.HeadFg, 0.2)
	theme.BranchFg = boost(theme.BranchFg, 0.2)
	theme.RemoteFg = boost(theme.RemoteFg, 0.2)
	theme.TagFg = boost(theme.TagFg, 0.2)
	theme.BorderFg = boost(theme.BorderFg, 0.2)
	theme.TitleFg = boost(theme.TitleFg, 0.2)
	theme.HelpFg = boost(theme.HelpFg, 0.2)
	return theme
}

func adjustBrightness(hex string, factor float64) string {
	if len(hex) != 7 || hex[0] != '#' {
		return hex
	}

	var r, g, b int
	_, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b)
	if err != nil {
		return hex
	}

	boost := func(value int) int {
		adjusted := float64(value) * (1 + factor)
		if adjusted > 255 {
			adjusted = 255
		}
		return int(adjusted)
	}

	return fmt.Sprintf("#%02x%02x%02x", boost(r), boost(g), boost(b))
}
