package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/decker502/snapdrawer/pkg/sim"
)

// ErrGoldenMismatch 回放记录与 golden 文件不一致
var ErrGoldenMismatch = errors.New("transcript differs from golden file")

func (c *CLI) replayCommand() *cobra.Command {
	var (
		golden string
		update bool
	)
	cmd := &cobra.Command{
		Use:   "replay <script>",
		Short: "Replay a gesture script and print its transcript",
		Long: `Replay runs a YAML gesture script against a drawer with a simulated clock.

Without --golden the transcript is printed. With --golden it is compared to
the file and the differences are printed; --update rewrites the file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := sim.LoadScript(args[0])
			if err != nil {
				return err
			}
			c.Logger.Debug("replaying", "script", script.Name, "steps", len(script.Steps))

			transcript, err := sim.Run(script)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if golden == "" {
				fmt.Fprint(out, transcript.String())
				return nil
			}

			diff, err := sim.CompareGolden(golden, transcript, update)
			if err != nil {
				return err
			}
			if diff != "" {
				fmt.Fprint(out, diff)
				printError(out, "%s", golden)
				return ErrGoldenMismatch
			}
			if update {
				c.Logger.Info("golden updated", "path", golden)
			}
			printSuccess(out, "%s (%d lines)", script.Name, len(transcript.Lines))
			return nil
		},
	}
	cmd.Flags().StringVar(&golden, "golden", "", "golden transcript to compare against")
	cmd.Flags().BoolVar(&update, "update", false, "rewrite the golden file with the new transcript")
	return cmd
}
