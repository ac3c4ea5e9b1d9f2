// Package datadir provides constants and utilities for the tasklist data directory layout.
package datadir

import "path/filepath"

const (
	// Dir is the name of the data directory under the user's home.
	Dir = ".tasklist"

	// DefaultTasksFile is the default task list file name (inside the data dir).
	DefaultTasksFile = "tasks.json"

	// DefaultConfigFile is the config file name, both in the data dir and
	// in a project directory.
	DefaultConfigFile = "tasklist.toml"

	// LogsDir is the default log directory name (inside the data dir).
	LogsDir = "logs"
)

// HomePath returns the data directory for a home directory.
func HomePath(home string) string {
	return filepath.Join(home, Dir)
}

// TasksPath returns the task file path for a data dir. An absolute file
// is returned unchanged.
func TasksPath(dataDir, file string) string {
	return resolve(dataDir, file, DefaultTasksFile)
}

// LogsPath returns the log directory for a data dir. An absolute dir is
// returned unchanged.
func LogsPath(dataDir, dir string) string {
	return resolve(dataDir, dir, LogsDir)
}

// ConfigPath returns the config file path inside a data dir.
func ConfigPath(dataDir string) string {
	return filepath.Join(dataDir, DefaultConfigFile)
}

func resolve(dataDir, name, fallback string) string {
	if name == "" {
		name = fallback
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dataDir, name)
}
