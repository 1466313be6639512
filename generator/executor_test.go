package generator_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dunsteer/ngrx-essentials-generator/generator"
)

func TestExecute_DryRun(t *testing.T) {
	ctx := context.Background()
	fsys := afero.NewMemMapFs()

	ops := []generator.Operation{
		&generator.MkdirOp{Fs: fsys, Path: "/out"},
		&generator.WriteFileOp{Fs: fsys, Path: "/out/test.ts", Content: []byte("hello"), Mode: 0644},
	}

	var buf bytes.Buffer
	err := generator.Execute(ctx, ops, generator.ExecuteOptions{DryRun: true, Writer: &buf})
	require.NoError(t, err)

	exists, _ := afero.Exists(fsys, "/out")
	assert.False(t, exists, "dry run touched the filesystem")
	assert.Equal(t, 2, strings.Count(buf.String(), "[DRY RUN]"))
}

func TestExecute_RealRun(t *testing.T) {
	ctx := context.Background()
	fsys := afero.NewMemMapFs()

	ops := []generator.Operation{
		&generator.MkdirOp{Fs: fsys, Path: "/out"},
		&generator.MkdirOp{Fs: fsys, Path: "/out/features"},
		&generator.WriteFileOp{Fs: fsys, Path: "/out/features/test.ts", Content: []byte("hello"), Mode: 0644},
	}

	var buf bytes.Buffer
	require.NoError(t, generator.Execute(ctx, ops, generator.ExecuteOptions{Writer: &buf}))

	content, err := afero.ReadFile(fsys, "/out/features/test.ts")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))
	assert.Equal(t, 3, strings.Count(buf.String(), "✓"))
}

func TestExecute_ValidationBeforeExecution(t *testing.T) {
	ctx := context.Background()
	fsys := afero.NewMemMapFs()

	ops := []generator.Operation{
		&generator.WriteFileOp{Fs: fsys, Path: "/valid.ts", Content: []byte("valid")},
		&generator.WriteFileOp{Fs: fsys, Path: "/invalid.ts"},
	}

	err := generator.Execute(ctx, ops, generator.ExecuteOptions{Writer: &bytes.Buffer{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	exists, _ := afero.Exists(fsys, "/valid.ts")
	assert.False(t, exists, "valid.ts was written despite a failed validation")
}

func TestExecute_StopsAtFirstFailure(t *testing.T) {
	ctx := context.Background()
	fsys := afero.NewReadOnlyFs(afero.NewMemMapFs())

	ops := []generator.Operation{
		&generator.MkdirOp{Fs: fsys, Path: "/out"},
		&generator.WriteFileOp{Fs: fsys, Path: "/out/a.ts", Content: []byte("a")},
	}

	var buf bytes.Buffer
	err := generator.Execute(ctx, ops, generator.ExecuteOptions{Writer: &buf})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "execution failed")
	assert.Empty(t, buf.String())
}
