package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/WillyV3/todoflow/internal/duration"
	"github.com/WillyV3/todoflow/internal/task"
)

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the configured groups and tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := app.loadConfig()
			if err != nil {
				return err
			}
			store, err := seededStore(cfg, discardLogger())
			if err != nil {
				return err
			}
			return printTree(cmd.OutOrStdout(), store.Snapshot())
		},
	}
}

// printTree renders groups and their tasks in insertion order.
func printTree(w io.Writer, snap task.Snapshot) error {
	if snap.Len() == 0 {
		_, err := fmt.Fprintln(w, "No groups.")
		return err
	}

	var b strings.Builder
	for _, p := range snap.Parents {
		fmt.Fprintf(&b, "%s (%d tasks, %s)\n", p.Name, len(p.Children), duration.Decompose(p.TotalSeconds()))
		for i, c := range p.Children {
			branch := "├─"
			if i == len(p.Children)-1 {
				branch = "└─"
			}
			fmt.Fprintf(&b, "%s %-24s %8s  %s\n",
				branch, c.Code, duration.FormatSeconds(c.DurationSeconds), duration.Decompose(c.DurationSeconds))
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
