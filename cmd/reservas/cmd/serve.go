package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nfrund/reservas/internal/config"
	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/internal/logging"
	"github.com/nfrund/reservas/internal/server"
)

func init() {
	rootCmd.AddCommand(
		newPortalCmd(domain.StudentPortal, "Serve the student portal"),
		newPortalCmd(domain.AdminPortal, "Serve the administrator panel"),
	)
}

// newPortalCmd builds the command serving portal.
func newPortalCmd(portal domain.Portal, short string) *cobra.Command {
	var port int

	c := &cobra.Command{
		Use:   portal.Name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(portal)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				if port <= 0 || port > 65535 {
					return fmt.Errorf("invalid --port %d", port)
				}
				cfg.Port = port
			}
			logging.New(cfg.LogFormat, cfg.LogLevel)

			srv, err := server.New(cfg, server.ModulesFor(portal)...)
			if err != nil {
				slog.Error("Failed to create server", "error", err)
				return err
			}
			if err := srv.RegisterRoutes(cmd.Context()); err != nil {
				slog.Error("Failed to register routes", "error", err)
				return err
			}
			return srv.Start(cmd.Context())
		},
	}
	c.Flags().IntVar(&port, "port", portal.DefaultPort, "listen port, overrides PORT")
	return c
}
