package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nfrund/reservas/internal/config"
	"github.com/nfrund/reservas/internal/domain"
)

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "Print the upstream service table",
	Long: `Prints every upstream service with the environment variable that
overrides it and the base URL both portals will call, after loading .env.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(domain.StudentPortal)
		if err != nil {
			return err
		}
		return printServices(cmd.OutOrStdout(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(servicesCmd)
}

func printServices(out io.Writer, cfg *config.Config) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SERVICE\tVARIABLE\tURL")
	for _, s := range cfg.Services.Names() {
		u, _ := cfg.Services.URL(s)
		fmt.Fprintf(w, "%s\t%s\t%s\n", s, config.ServiceEnv(s), u)
	}
	return w.Flush()
}
