package cmd

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/nibzard/tasklist-go/internal/app"
	"github.com/nibzard/tasklist-go/internal/utils"
)

// errLoadFailed keeps headless commands from overwriting a file they
// could not read.
var errLoadFailed = errors.New("task file could not be loaded; refusing to overwrite it (run 'tasklist doctor')")

// loadForWrite launches the state and fails if the load did not succeed.
func (e *env) loadForWrite() (*app.State, error) {
	state, err := e.launch()
	if err != nil {
		return nil, err
	}
	if state.LastError != nil {
		return nil, fmt.Errorf("%w: %v", errLoadFailed, state.LastError)
	}
	return state, nil
}

// addCommand adds one task and saves the list.
func (e *env) addCommand(args []string) error {
	fs := flag.NewFlagSet("tasklist add", flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	name := fs.String("name", "", "Task name")
	description := fs.String("description", "", "Task description")
	date := fs.String("date", "", "Due date (YYYY-MM-DD, default today)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	// Positional words form the name when -name is absent.
	if *name == "" && fs.NArg() > 0 {
		*name = strings.Join(fs.Args(), " ")
	} else if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	state, err := e.loadForWrite()
	if err != nil {
		return err
	}

	state.SetName(*name)
	state.SetDescription(*description)
	if *date != "" {
		due, err := utils.ParseDay(*date, time.Local)
		if err != nil {
			return fmt.Errorf("invalid -date: %w", err)
		}
		state.SetDate(due)
	}

	t := state.AddTask()
	if state.LastError != nil {
		return fmt.Errorf("saving tasks: %w", state.LastError)
	}
	fmt.Fprintf(e.stdout, "Added task %d: %s (due %s)\n", state.Len(), t.Name, utils.FormatDay(t.Date))
	return nil
}

// lsCommand lists the tasks in store order.
func (e *env) lsCommand(args []string) error {
	fs := flag.NewFlagSet("tasklist ls", flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	asJSON := fs.Bool("json", false, "Print the task list as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	state, err := e.launch()
	if err != nil {
		return err
	}
	if state.LastError != nil {
		return fmt.Errorf("loading tasks: %w", state.LastError)
	}

	tasks := state.Tasks()
	if *asJSON {
		enc := json.NewEncoder(e.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(tasks)
	}

	if len(tasks) == 0 {
		fmt.Fprintln(e.stdout, "No tasks.")
		return nil
	}

	tw := tabwriter.NewWriter(e.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tDUE\t\tNAME\tDESCRIPTION")
	for i, t := range tasks {
		mark := ""
		if state.IsOverdue(t) {
			mark = "overdue"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i+1, utils.FormatDay(t.Date), mark, t.Name, t.Description)
	}
	return tw.Flush()
}

// rmCommand deletes tasks by their 1-based position in ls output.
func (e *env) rmCommand(args []string) error {
	fs := flag.NewFlagSet("tasklist rm", flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("rm requires at least one task index")
	}

	offsets := make([]int, 0, fs.NArg())
	for _, arg := range fs.Args() {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 {
			return fmt.Errorf("invalid task index %q", arg)
		}
		offsets = append(offsets, n-1)
	}

	state, err := e.loadForWrite()
	if err != nil {
		return err
	}

	removed := state.DeleteAt(offsets...)
	if state.LastError != nil {
		return fmt.Errorf("saving tasks: %w", state.LastError)
	}
	fmt.Fprintf(e.stdout, "Removed %d task(s), %d left\n", removed, state.Len())
	return nil
}
