package cli

import (
	"github.com/spf13/cobra"

	"github.com/decker502/snapdrawer/pkg/config"
	"github.com/decker502/snapdrawer/pkg/preview"
)

func (c *CLI) previewCommand() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview a drawer interactively in the terminal",
		Long: `Preview renders a bottom drawer over the terminal.

Drag it with the mouse, press 1-4 to jump between positions, c to conceal,
o to tap the overlay and q to quit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc := config.DefaultDrawerConfig()
			if configPath != "" {
				loaded, err := config.LoadDrawerConfig(configPath)
				if err != nil {
					return err
				}
				fc = *loaded
			}
			cfg, err := fc.Build()
			if err != nil {
				return err
			}
			c.Logger.Debug("starting preview", "config", configPath)
			return preview.Run(cfg)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "drawer config file (YAML or TOML)")
	return cmd
}
