package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/engihub/internal/app"
)

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	d, err := buildDeps(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	return app.Run(app.Options{
		Gateway: d.gateway,
		Model:   d.provider.ModelID(),
		Logger:  d.logger,
	})
}
