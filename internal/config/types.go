package config

import (
	"sort"

	"github.com/nibzard/tasklist-go/internal/datadir"
	"github.com/nibzard/tasklist-go/internal/logging"
)

// Source represents where a configuration value came from.
type Source string

const (
	SourceDefault  Source = "default"
	SourceUserFile Source = "user file"
	SourceProjFile Source = "project file"
	SourceEnv      Source = "environment"
	SourceFlag     Source = "flag"
)

// Default values.
const (
	DefaultDataDir        = "~/" + datadir.Dir
	DefaultTasksFile      = datadir.DefaultTasksFile
	DefaultAtomicWrites   = true
	DefaultValidateSchema = false
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultLogTimestamps  = true
)

// Config holds the full configuration for tasklist.
type Config struct {
	// Paths
	DataDir   string `toml:"data_dir"`
	TasksFile string `toml:"tasks_file"` // relative paths resolve against DataDir

	// Persistence
	AtomicWrites   bool `toml:"atomic_writes"`
	ValidateSchema bool `toml:"validate_schema"`

	// Logging configuration
	LogDir        string `toml:"log_dir"` // defaults to <data_dir>/logs
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// Files that were read, in load order (computed)
	Files []string `toml:"-"`

	// Sources maps each key to where its value came from (computed)
	Sources map[string]Source `toml:"-"`
}

// Fields returns the configurable keys in display order.
func Fields() []string {
	return []string{
		"data_dir",
		"tasks_file",
		"atomic_writes",
		"validate_schema",
		"log_dir",
		"log_level",
		"log_format",
		"log_timestamps",
		"log_caller",
	}
}

// Value returns the effective value of key for display.
func (c *Config) Value(key string) interface{} {
	switch key {
	case "data_dir":
		return c.DataDir
	case "tasks_file":
		return c.TasksFile
	case "atomic_writes":
		return c.AtomicWrites
	case "validate_schema":
		return c.ValidateSchema
	case "log_dir":
		return c.LogDir
	case "log_level":
		return c.LogLevel
	case "log_format":
		return c.LogFormat
	case "log_timestamps":
		return c.LogTimestamps
	case "log_caller":
		return c.LogCaller
	}
	return nil
}

// Source returns where key's value came from.
func (c *Config) Source(key string) Source {
	if s, ok := c.Sources[key]; ok {
		return s
	}
	return SourceDefault
}

// NonDefaultKeys returns the keys set by anything other than defaults, sorted.
func (c *Config) NonDefaultKeys() []string {
	var keys []string
	for k, s := range c.Sources {
		if s != SourceDefault {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// LoggingOptions converts the logging settings for the logging package.
func (c *Config) LoggingOptions() logging.Options {
	opts := logging.DefaultOptions()
	opts.Level = c.LogLevel
	opts.Format = c.LogFormat
	opts.ReportTimestamp = c.LogTimestamps
	opts.ReportCaller = c.LogCaller
	return opts
}

func setDefaults(cfg *Config) {
	cfg.DataDir = DefaultDataDir
	cfg.TasksFile = DefaultTasksFile
	cfg.AtomicWrites = DefaultAtomicWrites
	cfg.ValidateSchema = DefaultValidateSchema
	cfg.LogDir = ""
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = DefaultLogTimestamps
	cfg.LogCaller = false

	cfg.Sources = make(map[string]Source, len(Fields()))
	for _, field := range Fields() {
		cfg.Sources[field] = SourceDefault
	}
}
