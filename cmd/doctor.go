package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nibzard/tasklist-go/internal/config"
	"github.com/nibzard/tasklist-go/internal/logging"
	"github.com/nibzard/tasklist-go/internal/storage"
)

// doctorCommand reports resolved paths and validates the task file.
func (e *env) doctorCommand(args []string) error {
	fs := flag.NewFlagSet("tasklist doctor", flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	printSchema := fs.Bool("schema", false, "Print the task file JSON Schema and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *printSchema {
		fmt.Fprint(e.stdout, storage.Schema())
		return nil
	}

	cfg := e.cfg
	fmt.Fprintln(e.stdout, "tasklist doctor")
	fmt.Fprintf(e.stdout, "  version:     %s\n", Version)
	fmt.Fprintf(e.stdout, "  data dir:    %s\n", cfg.DataDir)
	fmt.Fprintf(e.stdout, "  tasks file:  %s\n", cfg.TasksFile)
	fmt.Fprintf(e.stdout, "  log dir:     %s\n", cfg.LogDir)
	if len(cfg.Files) > 0 {
		fmt.Fprintf(e.stdout, "  config:      %s\n", strings.Join(cfg.Files, ", "))
	} else {
		fmt.Fprintln(e.stdout, "  config:      (none)")
	}
	if keys := cfg.NonDefaultKeys(); len(keys) > 0 {
		fmt.Fprintf(e.stdout, "  overrides:   %s\n", strings.Join(keys, ", "))
	}
	fmt.Fprintln(e.stdout)

	problems := 0

	if info, err := os.Stat(cfg.DataDir); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(e.stdout, "[ok]   data dir does not exist yet (created on first save)")
		} else {
			fmt.Fprintf(e.stdout, "[fail] data dir: %v\n", err)
			problems++
		}
	} else if !info.IsDir() {
		fmt.Fprintln(e.stdout, "[fail] data dir is not a directory")
		problems++
	} else if err := checkWritable(cfg.DataDir); err != nil {
		fmt.Fprintf(e.stdout, "[fail] data dir not writable: %v\n", err)
		problems++
	} else {
		fmt.Fprintln(e.stdout, "[ok]   data dir writable")
	}

	logger, err := e.consoleLogger()
	if err != nil {
		return err
	}
	result, err := e.gateway(logger).Validate()
	if err != nil {
		fmt.Fprintf(e.stdout, "[fail] %v\n", err)
		problems++
	} else {
		for _, w := range result.Warnings {
			fmt.Fprintf(e.stdout, "[warn] %s\n", w)
		}
		if result.Valid {
			fmt.Fprintln(e.stdout, "[ok]   tasks file matches schema")
		} else {
			for _, verr := range result.Errors {
				fmt.Fprintf(e.stdout, "[fail] %v\n", verr)
			}
			problems += len(result.Errors)
		}
	}

	if latest, err := logging.FindLatestLog(cfg.LogDir); err == nil && latest != "" {
		fmt.Fprintf(e.stdout, "[ok]   latest log: %s\n", latest)
	}

	if problems > 0 {
		return fmt.Errorf("doctor found %d problem(s)", problems)
	}
	return nil
}

func checkWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		return err
	}
	name := f.Name()
	f.Close()
	return os.Remove(filepath.Clean(name))
}

// configCommand prints the effective configuration.
func (e *env) configCommand(args []string) error {
	fs := flag.NewFlagSet("tasklist config", flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	example := fs.Bool("example", false, "Print an example config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *example {
		fmt.Fprint(e.stdout, config.ExampleConfig())
		return nil
	}
	for _, key := range config.Fields() {
		fmt.Fprintf(e.stdout, "%-16s = %-40v (%s)\n", key, e.cfg.Value(key), e.cfg.Source(key))
	}
	return nil
}
