package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# tasklist configuration file
# Values can be overridden by TASKLIST_* environment variables or CLI flags

# Data directory (supports ~ and $VAR expansion)
data_dir = "~/.tasklist"

# Task list file, relative to data_dir unless absolute
tasks_file = "tasks.json"

# Write to a temp file and rename it over tasks.json on every save
atomic_writes = true

# Validate tasks.json against the built-in JSON Schema on load
validate_schema = false

# Log directory for TUI sessions (default: <data_dir>/logs)
# log_dir = "~/.tasklist/logs"

# Logging: debug, info, warn, error
log_level = "info"
# text, json or logfmt
log_format = "text"
log_timestamps = true
log_caller = false
`
}
