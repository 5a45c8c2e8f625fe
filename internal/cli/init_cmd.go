package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/WillyV3/todoflow/internal/config"
)

// ErrConfigExists is returned by init when the target file is present and
// --force was not given.
var ErrConfigExists = errors.New("config file already exists")

func newInitCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a sample config with example groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := app.configPath
			if path == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				path = p
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, path)
			}

			cfg := config.Sample()
			if err := cfg.Save(path); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ Created config file: %s\n", path)
			fmt.Fprintf(out, "  Groups: %d\n", len(cfg.Seed))
			fmt.Fprintln(out, "\nRun 'todoflow' to view your tasks!")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}
