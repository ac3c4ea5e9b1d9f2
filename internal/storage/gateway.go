package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/nibzard/tasklist-go/internal/task"
)

// DefaultFileName is the name of the task list file inside the data directory.
const DefaultFileName = "tasks.json"

// Option configures a Gateway.
type Option func(*Gateway)

// WithLogger sets the logger used for save/load diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(g *Gateway) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithAtomicWrites toggles write-to-temp-then-rename on Save.
func WithAtomicWrites(enabled bool) Option {
	return func(g *Gateway) {
		g.atomic = enabled
	}
}

// WithSchemaValidation makes Load validate the file against the JSON Schema
// before decoding it.
func WithSchemaValidation(enabled bool) Option {
	return func(g *Gateway) {
		g.validate = enabled
	}
}

// Gateway persists the task list to a single JSON file.
type Gateway struct {
	path     string
	atomic   bool
	validate bool
	logger   *log.Logger
}

// New returns a gateway for the file at path.
func New(path string, opts ...Option) *Gateway {
	g := &Gateway{
		path:   path,
		atomic: true,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Path returns the file the gateway reads and writes.
func (g *Gateway) Path() string {
	return g.path
}

// Save writes tasks as a JSON array with 2-space indentation, replacing the
// file contents.
func (g *Gateway) Save(tasks []task.Task) error {
	if tasks == nil {
		tasks = []task.Task{}
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return newError("save", g.path, ErrEncode, err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(g.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return newError("save", g.path, ErrWrite, fmt.Errorf("create data dir: %w", err))
		}
	}

	if g.atomic {
		err = writeAtomic(g.path, data)
	} else {
		err = os.WriteFile(g.path, data, 0644)
	}
	if err != nil {
		return newError("save", g.path, ErrWrite, err)
	}

	g.logger.Debug("saved tasks", "path", g.path, "count", len(tasks), "atomic", g.atomic)
	return nil
}

// Load reads the task list. A missing file yields an empty list and no error.
func (g *Gateway) Load() ([]task.Task, error) {
	data, err := os.ReadFile(g.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			g.logger.Debug("no task file yet", "path", g.path)
			return []task.Task{}, nil
		}
		return nil, newError("load", g.path, ErrRead, err)
	}

	if g.validate {
		result, err := validateData(data)
		if err != nil {
			return nil, newError("load", g.path, ErrDecode, err)
		}
		if !result.Valid {
			return nil, newError("load", g.path, ErrDecode, result.Err())
		}
	}

	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, newError("load", g.path, ErrDecode, err)
	}
	if tasks == nil {
		tasks = []task.Task{}
	}

	g.logger.Debug("loaded tasks", "path", g.path, "count", len(tasks))
	return tasks, nil
}

// writeAtomic writes data to a temp file next to path and renames it into place.
func writeAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
