package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Dunsteer/ngrx-essentials-generator/input"
	"github.com/Dunsteer/ngrx-essentials-generator/internal/config"
	"github.com/Dunsteer/ngrx-essentials-generator/output"
)

func newInitCmd(e *env) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default " + config.FileName + " in the current directory",
		Args:  cobra.NoArgs,
		// The config may not exist yet, so skip loading it.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			output.SetVerbose(e.verbose)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.FileName
			if e.configPath != "" {
				path = e.configPath
			}

			err := config.WriteDefault(e.fs, path, force)
			if errors.Is(err, config.ErrConfigExists) && e.interactive() {
				if !input.Confirm(cmd.InOrStdin(), fmt.Sprintf("%s already exists. Overwrite?", path), false) {
					output.Info("Keeping existing " + path)
					return nil
				}
				err = config.WriteDefault(e.fs, path, true)
			}
			if err != nil {
				if errors.Is(err, config.ErrConfigExists) {
					return fmt.Errorf("%w (use --force to overwrite)", err)
				}
				return fmt.Errorf("failed to write config: %w", err)
			}

			output.Success("Created " + path)
			output.Step("Set workspace to the directory generate should write into")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")

	return cmd
}
