package generator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
)

// Operation represents a filesystem operation that can be validated and executed.
//
// Validate checks if the operation would succeed without changing anything.
// Execute performs the operation. Description returns a human-readable
// summary for output (e.g., "Create src/app/user.actions.ts (412 B)").
type Operation interface {
	Validate(ctx context.Context) error
	Execute(ctx context.Context) error
	Description() string
}

// MkdirOp creates a single directory level.
//
// The parent must already exist. An existing directory at Path is not an
// error, including one created concurrently between the existence check
// and the Mkdir call. A regular file at Path is an error.
type MkdirOp struct {
	Fs   afero.Fs
	Path string
	Mode fs.FileMode // Directory permissions (e.g., 0755)
}

func (op *MkdirOp) Validate(ctx context.Context) error {
	info, err := op.Fs.Stat(op.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("cannot stat %s: %w", op.Path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s exists and is not a directory", op.Path)
	}
	return nil
}

func (op *MkdirOp) Execute(ctx context.Context) error {
	if err := op.Validate(ctx); err != nil {
		return err
	}
	if exists, _ := afero.DirExists(op.Fs, op.Path); exists {
		return nil
	}

	if err := op.Fs.Mkdir(op.Path, op.mode()); err != nil {
		// Lost a race with another writer; fine as long as it is a directory.
		if errors.Is(err, fs.ErrExist) {
			return op.Validate(ctx)
		}
		return err
	}
	return nil
}

func (op *MkdirOp) Description() string {
	return fmt.Sprintf("Ensure directory %s", op.Path)
}

func (op *MkdirOp) mode() fs.FileMode {
	if op.Mode == 0 {
		return 0755
	}
	return op.Mode
}

// WriteFileOp writes a file, replacing any existing content.
//
// Validation rejects nil content (empty is OK). There is no conflict
// check: the last write wins.
type WriteFileOp struct {
	Fs      afero.Fs
	Path    string      // File path to write
	Content []byte      // File content (can be empty, must not be nil)
	Mode    fs.FileMode // File permissions (e.g., 0644)
}

func (op *WriteFileOp) Validate(ctx context.Context) error {
	if op.Content == nil {
		return fmt.Errorf("content is nil for file: %s", op.Path)
	}
	return nil
}

func (op *WriteFileOp) Execute(ctx context.Context) error {
	if err := op.Validate(ctx); err != nil {
		return err
	}
	mode := op.Mode
	if mode == 0 {
		mode = 0644
	}
	return afero.WriteFile(op.Fs, op.Path, op.Content, mode)
}

func (op *WriteFileOp) Description() string {
	return fmt.Sprintf("Create %s (%s)", op.Path, humanize.Bytes(uint64(len(op.Content))))
}
