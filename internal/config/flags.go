package config

import (
	"flag"
)

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"data-dir":        "data_dir",
	"tasks":           "tasks_file",
	"atomic-writes":   "atomic_writes",
	"validate-schema": "validate_schema",
	"log-dir":         "log_dir",
	"log-level":       "log_level",
	"log-format":      "log_format",
	"log-timestamps":  "log_timestamps",
	"log-caller":      "log_caller",
}

// parseFlags defines the global flags on fs and parses args.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	if fs == nil {
		fs = flag.NewFlagSet(appName, flag.ContinueOnError)
	}

	// Path flags
	fs.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "Data directory")
	fs.StringVar(&cfg.TasksFile, "tasks", cfg.TasksFile, "Path to the task list file (relative to data dir)")

	// Persistence
	fs.BoolVar(&cfg.AtomicWrites, "atomic-writes", cfg.AtomicWrites, "Write via temp file and rename")
	fs.BoolVar(&cfg.ValidateSchema, "validate-schema", cfg.ValidateSchema, "Validate the task file against its schema on load")

	// Logging
	fs.StringVar(&cfg.LogDir, "log-dir", cfg.LogDir, "Log directory (default <data-dir>/logs)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text|json|logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Include timestamps in logs")
	fs.BoolVar(&cfg.LogCaller, "log-caller", cfg.LogCaller, "Include caller location in logs")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			cfg.Sources[key] = SourceFlag
		}
	})
	return nil
}
