package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/nibzard/tasklist-go/internal/logging"
)

// logsCommand prints the latest TUI session log.
func (e *env) logsCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("tasklist logs", flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	lines := fs.Int("n", 50, "Number of lines to show (0 = all)")
	follow := fs.Bool("f", false, "Follow the log")
	fs.BoolVar(follow, "follow", false, "Follow the log")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path, err := logging.FindLatestLog(e.cfg.LogDir)
	if err != nil {
		return err
	}
	if path == "" {
		return fmt.Errorf("no logs found in %s", e.cfg.LogDir)
	}
	return logging.TailLog(ctx, e.stdout, path, *lines, *follow)
}
