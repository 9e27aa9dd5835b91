package ui

import (
	"testing"

	"github.com/chris-regnier/gitdiary/internal/config"
)

func TestResolveTheme(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.ThemeConfig
		markdown string
	}{
		{"default dark", config.ThemeConfig{Preset: "default-dark"}, "dark"},
		{"default light", config.ThemeConfig{Preset: "default-light"}, "light"},
		{"paper", config.ThemeConfig{Preset: "paper"}, "light"},
		{"markdown override", config.ThemeConfig{Preset: "dracula", MarkdownStyle: "notty"}, "notty"},
		{"unknown preset", config.ThemeConfig{Preset: "nonexistent"}, "dark"},
		{"empty preset", config.ThemeConfig{}, "dark"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme := ResolveTheme(tt.cfg)
			if theme.MarkdownStyle != tt.markdown {
				t.Errorf("markdown style = %q, want %q", theme.MarkdownStyle, tt.markdown)
			}
			if theme.Primary == "" {
				t.Error("primary color not set")
			}
		})
	}
}

func TestResolveThemeUnknownPresetFallsBack(t *testing.T) {
	if got := ResolveTheme(config.ThemeConfig{Preset: "nonexistent"}); got != presets[DefaultPreset] {
		t.Errorf("expected %s fallback, got %+v", DefaultPreset, got)
	}
}

func TestPresetsComplete(t *testing.T) {
	if len(Presets()) != len(presets) {
		t.Errorf("Presets() lists %d names, %d defined", len(Presets()), len(presets))
	}
	for _, name := range Presets() {
		p, ok := presets[name]
		if !ok {
			t.Errorf("preset %s listed but not defined", name)
			continue
		}
		if p.Primary == "" || p.Accent == "" || p.Muted == "" || p.Danger == "" || p.MarkdownStyle == "" {
			t.Errorf("preset %s has unset fields: %+v", name, p)
		}
	}
}
