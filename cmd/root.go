// Package cmd implements the CLI command structure for tasklist.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/tasklist-go/internal/app"
	"github.com/nibzard/tasklist-go/internal/config"
	"github.com/nibzard/tasklist-go/internal/logging"
	"github.com/nibzard/tasklist-go/internal/storage"
	"github.com/nibzard/tasklist-go/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// env is what every subcommand runs with.
type env struct {
	cfg    *config.Config
	stdout io.Writer
	stderr io.Writer
}

// Run executes the tasklist CLI.
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("tasklist", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		printUsage(fs, stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, stdout)
		return nil
	}
	e := &env{cfg: cfg, stdout: stdout, stderr: stderr}
	if *showVersion {
		return e.versionCommand()
	}

	// No subcommand means the TUI.
	subcommand := "tui"
	remaining := fs.Args()
	if len(remaining) > 0 && !strings.HasPrefix(remaining[0], "-") {
		subcommand = remaining[0]
		remaining = remaining[1:]
	}

	switch subcommand {
	case "tui":
		return e.tuiCommand(ctx, remaining)
	case "add":
		return e.addCommand(remaining)
	case "ls", "list":
		return e.lsCommand(remaining)
	case "rm", "delete":
		return e.rmCommand(remaining)
	case "doctor":
		return e.doctorCommand(remaining)
	case "logs", "tail":
		return e.logsCommand(ctx, remaining)
	case "config":
		return e.configCommand(remaining)
	case "version":
		return e.versionCommand()
	case "help":
		printUsage(fs, stdout)
		return nil
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// gateway returns the persistence gateway described by the config.
func (e *env) gateway(logger *log.Logger) *storage.Gateway {
	return storage.New(e.cfg.TasksFile,
		storage.WithLogger(logger),
		storage.WithAtomicWrites(e.cfg.AtomicWrites),
		storage.WithSchemaValidation(e.cfg.ValidateSchema),
	)
}

// consoleLogger logs to stderr. Unless a level was configured explicitly,
// headless commands only show warnings and errors.
func (e *env) consoleLogger() (*log.Logger, error) {
	opts := e.cfg.LoggingOptions()
	if e.cfg.Source("log_level") == config.SourceDefault {
		opts.Level = "warn"
	}
	return logging.New(e.stderr, opts)
}

// launch builds the application state with a console logger and loads the
// task list.
func (e *env) launch() (*app.State, error) {
	logger, err := e.consoleLogger()
	if err != nil {
		return nil, err
	}
	state := app.New(e.gateway(logger), app.WithLogger(logger))
	state.Launch()
	return state, nil
}

// tuiCommand launches the terminal UI. Logs go to a per-run file because
// the UI owns the terminal.
func (e *env) tuiCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("tasklist tui", flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	inline := fs.Bool("inline", false, "Render inline instead of the alternate screen")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if !ui.IsTTY(e.stdout) {
		return fmt.Errorf("tui requires a TTY (try 'tasklist ls')")
	}

	runLog, err := logging.NewRunLogger(e.cfg.LogDir)
	if err != nil {
		return fmt.Errorf("creating run log: %w", err)
	}
	defer runLog.Close()

	logger, err := logging.New(runLog.Writer(), e.cfg.LoggingOptions())
	if err != nil {
		return err
	}
	logger.Info("starting tui", "tasks_file", e.cfg.TasksFile, "version", Version)

	state := app.New(e.gateway(logger), app.WithLogger(logger))
	state.Launch()

	return ui.RunTUI(ctx, state, ui.WithIO(os.Stdin, e.stdout), ui.WithAltScreen(!*inline))
}

// versionCommand prints version information.
func (e *env) versionCommand() error {
	fmt.Fprintf(e.stdout, "tasklist version %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "tasklist - a single-screen task list")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  tasklist [options] [command] [command options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  tui              Launch the terminal UI (default command)")
	fmt.Fprintln(w, "  add              Add a task")
	fmt.Fprintln(w, "  ls               List tasks")
	fmt.Fprintln(w, "  rm <index>...    Delete tasks by their position in 'ls'")
	fmt.Fprintln(w, "  doctor           Check paths and validate the task file")
	fmt.Fprintln(w, "  logs             Show the latest TUI session log")
	fmt.Fprintln(w, "  config           Show the effective configuration")
	fmt.Fprintln(w, "  version          Show version information")
	fmt.Fprintln(w, "  help             Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Add Options:")
	fmt.Fprintln(w, "  -name string         Task name")
	fmt.Fprintln(w, "  -description string  Task description")
	fmt.Fprintln(w, "  -date string         Due date, YYYY-MM-DD (default today)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Ls Options:")
	fmt.Fprintln(w, "  -json    Print the task list as JSON")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Doctor Options:")
	fmt.Fprintln(w, "  -schema  Print the task file JSON Schema")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Logs Options:")
	fmt.Fprintln(w, "  -n int   Number of lines to show (0 = all)")
	fmt.Fprintln(w, "  -f       Follow the log")
}
