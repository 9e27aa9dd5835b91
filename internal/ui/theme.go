package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/chris-regnier/gitdiary/internal/config"
)

// DefaultPreset is used when the configured preset is unknown.
const DefaultPreset = "default-dark"

// Theme is the resolved palette for prompts, the pager and rendered markdown.
type Theme struct {
	Primary       lipgloss.Color
	Accent        lipgloss.Color
	Muted         lipgloss.Color
	Danger        lipgloss.Color
	MarkdownStyle string
}

func palette(primary, accent, muted, danger, markdown string) Theme {
	return Theme{
		Primary:       lipgloss.Color(primary),
		Accent:        lipgloss.Color(accent),
		Muted:         lipgloss.Color(muted),
		Danger:        lipgloss.Color(danger),
		MarkdownStyle: markdown,
	}
}

var presets = map[string]Theme{
	DefaultPreset:   palette("15", "33", "241", "9", "dark"),
	"default-light": palette("0", "27", "245", "1", "light"),
	"dracula":       palette("#F8F8F2", "#BD93F9", "#6272A4", "#FF5555", "dracula"),
	"gruvbox-dark":  palette("#EBDBB2", "#FABD2F", "#928374", "#FB4934", "dark"),
	// Matches the exported HTML pages.
	"paper": palette("#2C3E50", "#C0392B", "#7F8C8D", "#C0392B", "light"),
}

// Presets lists the built-in theme names.
func Presets() []string {
	return []string{DefaultPreset, "default-light", "dracula", "gruvbox-dark", "paper"}
}

// ResolveTheme picks the configured preset and applies the markdown style
// override. Unknown presets fall back to DefaultPreset.
func ResolveTheme(cfg config.ThemeConfig) Theme {
	theme, ok := presets[cfg.Preset]
	if !ok {
		theme = presets[DefaultPreset]
	}
	if cfg.MarkdownStyle != "" {
		theme.MarkdownStyle = cfg.MarkdownStyle
	}
	return theme
}

// HelpStyle is for key hints and footers.
func (t Theme) HelpStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted)
}

// HeaderStyle is for form titles.
func (t Theme) HeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
}

// AccentStyle marks the focused question.
func (t Theme) AccentStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
}

// MutedStyle dims questions that are not focused.
func (t Theme) MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted)
}

// DangerStyle is for the confirmation choice of a destructive rewrite.
func (t Theme) DangerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Danger)
}
