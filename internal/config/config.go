package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/jdedit/internal/config/loader"
	"github.com/dshills/jdedit/internal/renderer/highlight"
)

// Defaults.
const (
	DefaultTabStop        = 4
	DefaultQuitTimes      = 3
	DefaultMessageTimeout = 5 * time.Second
	DefaultLogLevel       = "info"
)

// Config is the complete editor configuration.
type Config struct {
	Editor EditorConfig `toml:"editor"`

	// SyntaxFile is a YAML file of extra syntax definitions.
	SyntaxFile string `toml:"syntax_file"`

	Log LogConfig `toml:"log"`

	// Theme overrides highlight colors by class name.
	Theme map[string]int `toml:"theme"`
}

// EditorConfig holds editing behaviour.
type EditorConfig struct {
	TabStop        int      `toml:"tab_stop"`
	LineNumbers    bool     `toml:"line_numbers"`
	QuitTimes      int      `toml:"quit_times"`
	MessageTimeout Duration `toml:"message_timeout"`
}

// LogConfig configures the log file.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Duration is a time.Duration written as a string such as "5s".
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			TabStop:        DefaultTabStop,
			LineNumbers:    true,
			QuitTimes:      DefaultQuitTimes,
			MessageTimeout: Duration{DefaultMessageTimeout},
		},
		Log: LogConfig{Level: DefaultLogLevel},
	}
}

// defaultMap returns the defaults as the bottom configuration layer.
func defaultMap() map[string]any {
	return map[string]any{
		"editor": map[string]any{
			"tab_stop":        int64(DefaultTabStop),
			"line_numbers":    true,
			"quit_times":      int64(DefaultQuitTimes),
			"message_timeout": DefaultMessageTimeout.String(),
		},
		"log": map[string]any{
			"level": DefaultLogLevel,
		},
	}
}

// Validate checks every setting.
func (c *Config) Validate() error {
	var errs []error
	if c.Editor.TabStop < 1 || c.Editor.TabStop > 32 {
		errs = append(errs, &ValidationError{Path: "editor.tab_stop", Value: c.Editor.TabStop, Message: "must be between 1 and 32"})
	}
	if c.Editor.QuitTimes < 0 {
		errs = append(errs, &ValidationError{Path: "editor.quit_times", Value: c.Editor.QuitTimes, Message: "must not be negative"})
	}
	if c.Editor.MessageTimeout.Duration <= 0 {
		errs = append(errs, &ValidationError{Path: "editor.message_timeout", Value: c.Editor.MessageTimeout.Duration, Message: "must be positive"})
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, &ValidationError{Path: "log.level", Value: c.Log.Level, Message: "must be debug, info, warn or error"})
	}
	if _, unknown := highlight.DefaultTheme().WithOverrides(c.Theme); len(unknown) > 0 {
		errs = append(errs, &ValidationError{Path: "theme", Value: strings.Join(unknown, ","), Message: "unknown highlight class"})
	}
	return errors.Join(errs...)
}

// HighlightTheme returns the default theme with the configured overrides.
func (c *Config) HighlightTheme() *highlight.Theme {
	t, _ := highlight.DefaultTheme().WithOverrides(c.Theme)
	return t
}

// DefaultPath returns the user configuration file path, or "" if the
// user configuration directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "jdedit", "config.toml")
}

// Loader builds a Config from its layers.
type Loader struct {
	file *loader.TOMLLoader
	env  loader.Loader
}

// Option configures a Loader.
type Option func(*Loader)

// WithFileSystem reads the configuration file through fsys.
func WithFileSystem(fsys loader.FileSystem) Option {
	return func(l *Loader) {
		l.file = loader.NewTOMLLoaderWithFS(fsys, l.file.Path())
	}
}

// WithEnv replaces the environment layer.
func WithEnv(env loader.Loader) Option {
	return func(l *Loader) {
		l.env = env
	}
}

// NewLoader creates a loader reading the TOML file at path. A missing
// file is not an error.
func NewLoader(path string, opts ...Option) *Loader {
	l := &Loader{
		file: loader.NewTOMLLoader(path),
		env:  loader.NewEnvLoader(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load merges defaults, the file and the environment, and validates the
// result.
func (l *Loader) Load() (*Config, error) {
	merged := defaultMap()
	for _, src := range []loader.Loader{l.file, l.env} {
		m, err := src.Load()
		if err != nil {
			return nil, err
		}
		merged = loader.DeepMerge(merged, m)
	}

	cfg, err := decode(merged)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads the configuration from path using the process environment.
func Load(path string) (*Config, error) {
	return NewLoader(path).Load()
}

// decode converts a merged map into a Config by re-encoding it as TOML,
// so the struct tags are the single description of the format.
func decode(m map[string]any) (*Config, error) {
	data, err := toml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encoding merged config: %w", err)
	}

	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var missing *toml.StrictMissingError
		if errors.As(err, &missing) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSetting, missing.String())
		}
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}
