package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Dunsteer/ngrx-essentials-generator/generator"
	"github.com/Dunsteer/ngrx-essentials-generator/naming"
	"github.com/Dunsteer/ngrx-essentials-generator/output"
	"github.com/Dunsteer/ngrx-essentials-generator/scaffold"
)

type generateOptions struct {
	input       string
	contextPath string
	only        []string
	dryRun      bool
	sequential  bool
}

func newGenerateCmd(e *env) *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate [path/to/name]",
		Short: "Generate the NgRx files for one feature",
		Long: `Generate actions, reducer, effects, service, module and component files.

Everything before the last "/" is a directory path created under the base
directory, one level at a time. The last segment is the file-name slug.
Existing files are overwritten.

The base directory is --context-path when given, otherwise the configured
workspace, otherwise the current directory.

Examples:
  ngrxgen generate user-profile
  ngrxgen generate features/user-profile --context-path src/app
  ngrxgen generate features/order --only action,reducer,effect
  ngrxgen generate features/order --dry-run`,
		Aliases: []string{"g"},
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.input = args[0]
			}
			return runGenerate(cmd.Context(), e, opts)
		},
	}

	cmd.Flags().StringVar(&opts.contextPath, "context-path", "", "Base directory to generate into")
	cmd.Flags().StringSliceVar(&opts.only, "only", nil, "Comma-separated kinds to generate (see 'ngrxgen kinds')")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Show what would be created without writing anything")
	cmd.Flags().BoolVar(&opts.sequential, "sequential", false, "Write files one at a time")

	return cmd
}

func runGenerate(ctx context.Context, e *env, opts generateOptions) error {
	value := opts.input
	if value == "" {
		v, err := e.prompt("Enter the feature path", "features/user-profile")
		if err != nil {
			return err
		}
		value = v
	}
	if value == "" {
		output.Verbose("No name given, nothing to generate")
		return nil
	}

	suffix, slug, err := scaffold.ParseInput(value)
	if err != nil {
		return err
	}
	bundle, err := naming.Derive(slug)
	if err != nil {
		return fmt.Errorf("failed to derive names: %w", err)
	}

	baseDir, err := resolveBaseDir(e, opts.contextPath)
	if err != nil {
		return err
	}

	names := opts.only
	if len(names) == 0 {
		names = e.cfg.Kinds
	}
	kinds, err := scaffold.ParseKinds(names)
	if err != nil {
		return err
	}

	emitOpts := scaffold.EmitOptions{
		Kinds:      kinds,
		DirMode:    e.cfg.DirMode,
		FileMode:   e.cfg.FileMode,
		Concurrent: !opts.sequential && !e.cfg.Sequential,
	}
	output.Verbose(fmt.Sprintf("Generating %s (%s) in %s", bundle.Slug, bundle.ClassName, scaffold.TargetDir(baseDir, suffix)))

	if opts.dryRun {
		ops, err := scaffold.Operations(e.fs, baseDir, suffix, bundle, emitOpts)
		if err != nil {
			return err
		}
		return generator.Execute(ctx, ops, generator.ExecuteOptions{
			DryRun: true,
			Writer: output.Default().Writer(),
		})
	}

	results, err := scaffold.Emit(ctx, e.fs, baseDir, suffix, bundle, emitOpts)
	if err != nil {
		return err
	}

	for _, r := range results {
		if r.Err != nil {
			output.Error(r.Message())
			continue
		}
		output.Success(r.Message())
	}

	if n := scaffold.Failed(results); n > 0 {
		return fmt.Errorf("%d of %d file(s) could not be written", n, len(results))
	}
	return nil
}

// resolveBaseDir picks the directory generation is relative to and checks
// that it exists. It is never created.
func resolveBaseDir(e *env, contextPath string) (string, error) {
	dir := contextPath
	if dir == "" {
		dir = e.cfg.Workspace
	}
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = filepath.Join(cwd, dir)
	}

	ok, err := afero.DirExists(e.fs, dir)
	if err != nil {
		return "", fmt.Errorf("cannot access %s: %w", dir, err)
	}
	if !ok {
		return "", fmt.Errorf("base directory %s does not exist", dir)
	}
	return dir, nil
}
