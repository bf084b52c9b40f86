package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/decker502/snapdrawer/pkg/config"
)

func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config>",
		Short: "Validate a drawer config file (YAML or TOML)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			c.Logger.Debug("loading config", "path", path, "format", config.FormatForPath(path))

			fc, err := config.LoadDrawerConfig(path)
			if err != nil {
				printError(cmd.ErrOrStderr(), "%s", path)
				return err
			}
			cfg, err := fc.Build()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printSuccess(out, "%s", path)
			fmt.Fprintln(out, styleTitle.Render("drawer"))
			positions := make([]string, 0, len(cfg.SnapSet))
			for _, p := range cfg.SnapSet {
				positions = append(positions, p.String())
			}
			printField(out, "orientation", cfg.Orientation)
			printField(out, "snap set", strings.Join(positions, ", "))
			printField(out, "initial", cfg.InitialPosition)
			printField(out, "collapsed extent", cfg.CollapsedExtent)
			printField(out, "partial extent", cfg.PartiallyOpenExtent)
			printField(out, "open extent", openExtentLabel(cfg.OpenExtent))
			printField(out, "inset", cfg.InsetMode)
			printField(out, "velocity threshold", cfg.VelocityThreshold)
			printField(out, "animation", cfg.AnimationDuration)
			printField(out, "persist position", fc.PersistPosition)
			return nil
		},
	}
}

func openExtentLabel(v float64) string {
	if v <= 0 {
		return "fill"
	}
	return fmt.Sprintf("%g", v)
}
