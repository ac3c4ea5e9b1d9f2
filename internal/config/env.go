package config

import (
	"os"

	"github.com/nibzard/tasklist-go/internal/utils"
)

// loadFromEnv overrides config from TASKLIST_* environment variables.
func loadFromEnv(cfg *Config) {
	setString := func(env, field string, target *string) {
		if v := os.Getenv(env); v != "" {
			*target = v
			cfg.Sources[field] = SourceEnv
		}
	}
	setBool := func(env, field string, target *bool) {
		if v := os.Getenv(env); v != "" {
			*target = utils.BoolFromString(v)
			cfg.Sources[field] = SourceEnv
		}
	}

	setString("TASKLIST_DATA_DIR", "data_dir", &cfg.DataDir)
	setString("TASKLIST_TASKS_FILE", "tasks_file", &cfg.TasksFile)
	setBool("TASKLIST_ATOMIC_WRITES", "atomic_writes", &cfg.AtomicWrites)
	setBool("TASKLIST_VALIDATE_SCHEMA", "validate_schema", &cfg.ValidateSchema)

	setString("TASKLIST_LOG_DIR", "log_dir", &cfg.LogDir)
	setString("TASKLIST_LOG_LEVEL", "log_level", &cfg.LogLevel)
	setString("TASKLIST_LOG_FORMAT", "log_format", &cfg.LogFormat)
	setBool("TASKLIST_LOG_TIMESTAMPS", "log_timestamps", &cfg.LogTimestamps)
	setBool("TASKLIST_LOG_CALLER", "log_caller", &cfg.LogCaller)
}
