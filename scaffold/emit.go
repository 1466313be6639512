package scaffold

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/Dunsteer/ngrx-essentials-generator/generator"
	"github.com/Dunsteer/ngrx-essentials-generator/naming"
	"github.com/Dunsteer/ngrx-essentials-generator/output"
)

// EmitOptions configures Emit and Operations.
type EmitOptions struct {
	Kinds      []TemplateKind // Subset to emit (default: AllKinds)
	DirMode    fs.FileMode    // Mode for created directories (default: 0755)
	FileMode   fs.FileMode    // Mode for written files (default: 0644)
	Concurrent bool           // Issue the file writes in parallel
}

func (o EmitOptions) dirMode() fs.FileMode {
	if o.DirMode == 0 {
		return 0755
	}
	return o.DirMode
}

func (o EmitOptions) fileMode() fs.FileMode {
	if o.FileMode == 0 {
		return 0644
	}
	return o.FileMode
}

// Result is the outcome of writing one file.
type Result struct {
	Kind TemplateKind
	Path string
	Err  error
}

// Name returns the file's base name.
func (r Result) Name() string {
	return filepath.Base(r.Path)
}

// Message is the notification shown for this result.
func (r Result) Message() string {
	if r.Err != nil {
		return r.Err.Error()
	}
	return fmt.Sprintf("File %s created.", r.Name())
}

// Failed counts the results that carry an error.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

// directoryOps returns the target directory and one MkdirOp per suffix
// segment, outermost first. An empty suffix yields no operations.
func directoryOps(fsys afero.Fs, baseDir, suffix string, mode fs.FileMode) (string, []generator.Operation) {
	dir := baseDir
	var ops []generator.Operation
	for _, seg := range segments(suffix) {
		dir = filepath.Join(dir, seg)
		ops = append(ops, &generator.MkdirOp{Fs: fsys, Path: dir, Mode: mode})
	}
	return dir, ops
}

// Materialize ensures every segment of suffix exists under baseDir,
// creating missing ones one level at a time, and returns the target
// directory. baseDir itself is never created. Re-running on an existing
// tree creates nothing.
func Materialize(ctx context.Context, fsys afero.Fs, baseDir, suffix string, mode fs.FileMode) (string, error) {
	if mode == 0 {
		mode = 0755
	}
	target, ops := directoryOps(fsys, baseDir, suffix, mode)
	if len(ops) == 0 {
		return target, nil
	}

	output.Verbose(fmt.Sprintf("Ensuring %d directory segment(s) under %s", len(ops), baseDir))
	if err := generator.Execute(ctx, ops, generator.ExecuteOptions{Writer: io.Discard}); err != nil {
		return "", &Error{
			Kind:    DirectoryCreateFailed,
			Message: "cannot create " + target,
			File:    target,
			Err:     err,
		}
	}
	return target, nil
}

// Operations returns the directory and file operations Emit would run,
// in order. It is used for previews (dry runs).
func Operations(fsys afero.Fs, baseDir, suffix string, b naming.Bundle, opts EmitOptions) ([]generator.Operation, error) {
	files, err := Plan(baseDir, suffix, b, opts.Kinds)
	if err != nil {
		return nil, err
	}

	_, ops := directoryOps(fsys, baseDir, suffix, opts.dirMode())
	for _, f := range files {
		ops = append(ops, &generator.WriteFileOp{Fs: fsys, Path: f.Path, Content: f.Content, Mode: opts.fileMode()})
	}
	return ops, nil
}

// Emit renders the files for b, materializes the target directory and
// writes every file, overwriting existing ones.
//
// The returned error is non-nil only when nothing was written: an invalid
// slug, a render failure, or a directory that could not be created.
// Per-file write failures are reported in the results, which follow the
// order of opts.Kinds.
func Emit(ctx context.Context, fsys afero.Fs, baseDir, suffix string, b naming.Bundle, opts EmitOptions) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files, err := Plan(baseDir, suffix, b, opts.Kinds)
	if err != nil {
		return nil, err
	}
	output.Verbose(fmt.Sprintf("Planned %d file(s) for %s", len(files), b.Slug))

	if _, err := Materialize(ctx, fsys, baseDir, suffix, opts.dirMode()); err != nil {
		return nil, err
	}

	results := make([]Result, len(files))
	write := func(i int) {
		f := files[i]
		op := &generator.WriteFileOp{Fs: fsys, Path: f.Path, Content: f.Content, Mode: opts.fileMode()}

		results[i] = Result{Kind: f.Kind, Path: f.Path}
		if err := op.Execute(ctx); err != nil {
			results[i].Err = &Error{
				Kind:    FileWriteFailed,
				Message: "cannot write " + filepath.Base(f.Path),
				File:    f.Path,
				Err:     err,
			}
			return
		}
		output.Verbose(op.Description())
	}

	if opts.Concurrent {
		// Goroutines never return an error so one failure cannot cancel the rest.
		var g errgroup.Group
		for i := range files {
			i := i
			g.Go(func() error {
				write(i)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i := range files {
			write(i)
		}
	}

	return results, nil
}
