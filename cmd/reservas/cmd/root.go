package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "reservas",
	Short: "Room and court reservation portals",
	Long: `reservas serves the two web front-ends of the reservation system.

Available commands:
  student     Serve the student portal (default port 3000)
  admin       Serve the administrator panel (default port 3001)
  services    Print the resolved upstream service table

Use "reservas [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
