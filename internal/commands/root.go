package commands

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	ngrxgen "github.com/Dunsteer/ngrx-essentials-generator"
	"github.com/Dunsteer/ngrx-essentials-generator/input"
	"github.com/Dunsteer/ngrx-essentials-generator/internal/config"
	"github.com/Dunsteer/ngrx-essentials-generator/output"
)

// env carries what the commands share: the filesystem, the loaded config
// and the interactive hooks tests replace.
type env struct {
	fs          afero.Fs
	cfg         *config.Config
	configPath  string
	verbose     bool
	prompt      func(message, placeholder string) (string, error)
	interactive func() bool
}

func newEnv(fsys afero.Fs) *env {
	return &env{
		fs:          fsys,
		prompt:      input.Prompt,
		interactive: input.IsInteractive,
	}
}

// RootCmd creates the root command with every subcommand registered,
// backed by the OS filesystem.
func RootCmd() *cobra.Command {
	return newRootCmd(newEnv(afero.NewOsFs()))
}

// Execute runs the CLI.
func Execute() error {
	return RootCmd().Execute()
}

func newRootCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ngrxgen",
		Short: "Scaffold NgRx feature boilerplate for Angular projects",
		Long: `ngrxgen writes the NgRx boilerplate for one feature in a single step.

Given a name like "features/user-profile" it creates the missing
directories and emits eight files:
• actions, reducer, effects and service
• an NgModule
• a component script, stylesheet and template`,
		Version:       ngrxgen.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			output.SetVerbose(e.verbose)

			cfg, err := config.Load(config.LoadOptions{Fs: e.fs, File: e.configPath})
			if err != nil {
				return err
			}
			e.cfg = cfg
			output.Verbose(fmt.Sprintf("Workspace: %s", cfg.Workspace))
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&e.verbose, "verbose", "v", false, "Enable verbose output for debugging")
	cmd.PersistentFlags().StringVar(&e.configPath, "config", "", "Path to config file (default: ./"+config.FileName+")")

	cmd.AddCommand(newGenerateCmd(e))
	cmd.AddCommand(newKindsCmd())
	cmd.AddCommand(newInitCmd(e))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ngrxgen v%s\n", ngrxgen.Version)
		},
	})

	return cmd
}
