package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/chris-regnier/gitdiary/internal/logging"
	"github.com/chris-regnier/gitdiary/internal/timestamp"
)

// ThemeConfig selects terminal colors and the glamour style.
type ThemeConfig struct {
	Preset        string `mapstructure:"preset" toml:"preset" json:"preset"`
	MarkdownStyle string `mapstructure:"markdown_style" toml:"markdown_style" json:"markdown_style"`
}

// ShellConfig holds shell prompt integration settings.
type ShellConfig struct {
	TodayIcon   string `mapstructure:"today_icon" toml:"today_icon" json:"today_icon"`
	NoTodayIcon string `mapstructure:"no_today_icon" toml:"no_today_icon" json:"no_today_icon"`
	StreakIcon  string `mapstructure:"streak_icon" toml:"streak_icon" json:"streak_icon"`
	PendingIcon string `mapstructure:"pending_icon" toml:"pending_icon" json:"pending_icon"`
}

// Config holds the application configuration.
type Config struct {
	DiaryFile       string      `mapstructure:"diary_file" toml:"diary_file" json:"diary_file"`
	ContentDir      string      `mapstructure:"content_dir" toml:"content_dir" json:"content_dir"`
	ExportDir       string      `mapstructure:"export_dir" toml:"export_dir" json:"export_dir"`
	TimestampLayout string      `mapstructure:"timestamp_layout" toml:"timestamp_layout" json:"timestamp_layout"`
	GitTimeout      string      `mapstructure:"git_timeout" toml:"git_timeout" json:"git_timeout"`
	LogLevel        string      `mapstructure:"log_level" toml:"log_level" json:"log_level"`
	Editor          string      `mapstructure:"editor" toml:"editor" json:"editor"`
	MaxWidth        int         `mapstructure:"max_width" toml:"max_width" json:"max_width"`
	Theme           ThemeConfig `mapstructure:"theme" toml:"theme" json:"theme"`
	Shell           ShellConfig `mapstructure:"shell" toml:"shell" json:"shell"`
}

// DefaultDataDir returns the per-user config directory (~/.gitdiary/).
func DefaultDataDir() string {
	home, err := homedir.Dir()
	if err != nil {
		return filepath.Join(".", ".gitdiary")
	}
	return filepath.Join(home, ".gitdiary")
}

// Load reads configuration from file, environment variables, and defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("diary_file", "git_diary.md")
	v.SetDefault("content_dir", "articles")
	v.SetDefault("export_dir", filepath.Join("articles", "html"))
	v.SetDefault("timestamp_layout", timestamp.LayoutTime)
	v.SetDefault("git_timeout", "3s")
	v.SetDefault("log_level", "warn")
	v.SetDefault("editor", "")
	v.SetDefault("max_width", 100)
	v.SetDefault("theme.preset", "default-dark")
	v.SetDefault("theme.markdown_style", "")
	v.SetDefault("shell.today_icon", "✓")
	v.SetDefault("shell.no_today_icon", "✗")
	v.SetDefault("shell.streak_icon", "🔥")
	v.SetDefault("shell.pending_icon", "📝")

	// Config file
	if configPath != "" {
		expanded, err := homedir.Expand(configPath)
		if err != nil {
			return nil, fmt.Errorf("expanding config path: %w", err)
		}
		v.SetConfigFile(expanded)
	} else {
		// XDG support
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "gitdiary"))
		}
		v.AddConfigPath(DefaultDataDir())
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	// Environment variables: GITDIARY_DIARY_FILE, GITDIARY_LOG_LEVEL, etc.
	v.SetEnvPrefix("GITDIARY")
	v.AutomaticEnv()

	// Read config file (ignore not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only return error if it's not a "file not found" error
			if configPath != "" {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	diaryFile, err := homedir.Expand(cfg.DiaryFile)
	if err != nil {
		return nil, fmt.Errorf("expanding diary_file: %w", err)
	}
	if diaryFile == "" {
		diaryFile = "git_diary.md"
	}
	cfg.DiaryFile = diaryFile

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks field values that viper cannot type-check.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.DiaryFile, validation.Required),
		validation.Field(&c.ContentDir, validation.Required),
		validation.Field(&c.ExportDir, validation.Required),
		validation.Field(&c.TimestampLayout, validation.Required,
			validation.In(timestamp.LayoutTime, timestamp.LayoutDateTime)),
		validation.Field(&c.GitTimeout, validation.Required, validation.By(isPositiveDuration)),
		validation.Field(&c.LogLevel, validation.Required, validation.By(isLogLevel)),
		validation.Field(&c.MaxWidth, validation.Min(20)),
	)
}

// Timeout returns the git timeout as a duration.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.GitTimeout)
	if err != nil || d <= 0 {
		return 3 * time.Second
	}
	return d
}

func isPositiveDuration(value any) error {
	s, _ := value.(string)
	d, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("must be a duration such as 3s")
	}
	if d <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}

func isLogLevel(value any) error {
	s, _ := value.(string)
	_, err := logging.ParseLevel(s)
	return err
}
