package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newResolveCmd(env func(*cobra.Command) (*Env, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve free text to a canonical port or carrier",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "port <query>",
		Short:   "Resolve a port name or UN/LOCODE",
		Example: "  schedulectl resolve port \"port said\"\n  schedulectl resolve port egaly",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := env(cmd)
			if err != nil {
				return err
			}
			p, err := e.Ports.Resolve(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", p.Locode, p.Name, p.Country)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "carrier <query>",
		Short:   "Resolve a carrier name or SCAC",
		Example: "  schedulectl resolve carrier maersk\n  schedulectl resolve carrier MSCU",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := env(cmd)
			if err != nil {
				return err
			}
			c, err := e.Carriers.Resolve(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", c.SCAC, c.Name)
			return nil
		},
	})

	return cmd
}
