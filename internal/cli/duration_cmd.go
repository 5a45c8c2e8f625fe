package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/WillyV3/todoflow/internal/duration"
)

func newDurationCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "duration",
		Short: "Convert between h/m/s and total seconds",
	}
	cmd.AddCommand(newDurationEncodeCmd(), newDurationDecodeCmd(app))
	return cmd
}

func newDurationEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode (HOURS MINUTES SECONDS | DURATION)",
		Short: "Print the total seconds of a duration",
		Example: "  todoflow duration encode 1 2 3\n" +
			"  todoflow duration encode 1h2m3s",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 && len(args) != 3 {
				return fmt.Errorf("expected 1 or 3 arguments, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var total int
			if len(args) == 1 {
				secs, err := duration.Parse(args[0])
				if err != nil {
					return err
				}
				total = secs
			} else {
				parts := make([]int, 3)
				for i, a := range args {
					v, err := strconv.Atoi(a)
					if err != nil {
						return fmt.Errorf("argument %d: %q is not an integer", i+1, a)
					}
					parts[i] = v
				}
				total = duration.Encode(parts[0], parts[1], parts[2])
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), total)
			return err
		},
	}
}

func newDurationDecodeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "decode SECONDS",
		Short: "Render total seconds the way the configured picker shows it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := strconv.Atoi(args[0])
			if err != nil || total < 0 {
				return fmt.Errorf("%w: %q", duration.ErrInvalidDuration, args[0])
			}

			kind := app.picker
			if kind == "" {
				cfg, _, err := app.loadConfig()
				if err != nil {
					return err
				}
				kind = cfg.Picker
			}

			var out string
			switch kind {
			case duration.PickerSlider:
				out = duration.FormatSeconds(total)
			case duration.PickerWheel, "":
				out = duration.Decompose(total).String()
			default:
				return fmt.Errorf("%w: %q", duration.ErrUnknownPicker, kind)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}
