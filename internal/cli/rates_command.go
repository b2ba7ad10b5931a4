package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// newRatesCommand creates the rates command group
func (r *RootCommand) newRatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Manage the rate catalog",
		Long: `Manage the rate catalog.

Rates are per 8-hour day. The catalog is derived from the session log;
additions are only persisted once a session at the new rate is recorded.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all known rates",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.config.Database.QueryTimeout)
			defer cancel()

			if err := r.app.catalog.LoadFromStore(ctx); err != nil {
				return r.app.errors.Handle("load rates", err)
			}

			rates := r.app.catalog.Rates()
			if len(rates) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No rates recorded yet.")
				return nil
			}

			for _, rate := range rates {
				fmt.Fprintf(cmd.OutOrStdout(), "%g\n", rate)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <value>",
		Short: "Validate a new rate against the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rate, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("failed to parse rate: %q is not a number", args[0])
			}

			ctx, cancel := context.WithTimeout(context.Background(), r.config.Database.QueryTimeout)
			defer cancel()

			if err := r.app.catalog.LoadFromStore(ctx); err != nil {
				return r.app.errors.Handle("load rates", err)
			}

			rates, err := r.app.catalog.AddRate(rate)
			if err != nil {
				return r.app.errors.Handle("add rate", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Rate catalog now has %d entries:\n", len(rates))
			for _, value := range rates {
				fmt.Fprintf(cmd.OutOrStdout(), "%g\n", value)
			}
			return nil
		},
	})

	return cmd
}
