package loader

import (
	"os"
	"strconv"
	"strings"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "JDEDIT_"

// EnvLoader loads configuration overrides from environment variables.
// Only mapped variables are read.
type EnvLoader struct {
	lookup  func(string) (string, bool)
	mapping map[string]string // env var -> dotted config path
}

// NewEnvLoader creates an environment loader with the default mapping.
func NewEnvLoader() *EnvLoader {
	return &EnvLoader{
		lookup:  os.LookupEnv,
		mapping: DefaultEnvMapping(),
	}
}

// NewEnvLoaderWithMapping creates a loader with a custom mapping and
// lookup function. A nil lookup uses os.LookupEnv.
func NewEnvLoaderWithMapping(mapping map[string]string, lookup func(string) (string, bool)) *EnvLoader {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &EnvLoader{lookup: lookup, mapping: mapping}
}

// DefaultEnvMapping returns the environment variables understood by the
// editor and the setting each one overrides.
func DefaultEnvMapping() map[string]string {
	return map[string]string{
		EnvPrefix + "TAB_STOP":        "editor.tab_stop",
		EnvPrefix + "LINE_NUMBERS":    "editor.line_numbers",
		EnvPrefix + "QUIT_TIMES":      "editor.quit_times",
		EnvPrefix + "MESSAGE_TIMEOUT": "editor.message_timeout",
		EnvPrefix + "SYNTAX_FILE":     "syntax_file",
		EnvPrefix + "LOG_LEVEL":       "log.level",
		EnvPrefix + "LOG_FILE":        "log.file",
	}
}

// Load returns a map holding every mapped variable that is set. Empty
// values count as set.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)
	for env, path := range l.mapping {
		if val, ok := l.lookup(env); ok {
			setByPath(config, path, parseValue(val))
		}
	}
	return config, nil
}

// AddMapping adds or replaces a mapping.
func (l *EnvLoader) AddMapping(envVar, configPath string) {
	if l.mapping == nil {
		l.mapping = make(map[string]string)
	}
	l.mapping[envVar] = configPath
}

// parseValue converts s to a bool or integer when it looks like one.
func parseValue(s string) any {
	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	return s
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}
