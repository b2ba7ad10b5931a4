package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"ttb/internal/billing"
	"ttb/internal/domain"
)

// newTotalsCommand creates the totals command
func (r *RootCommand) newTotalsCommand() *cobra.Command {
	var currencyFlag string

	cmd := &cobra.Command{
		Use:   "totals <project> <rate>",
		Short: "Show cumulative time and billable amount for a project",
		Long: `Show cumulative time and billable amount for a project.

All recorded minutes for the project are summed and billed at the given
per-8-hour-day rate. A project with no recorded sessions reports zero.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			project := args[0]

			rate, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("failed to parse rate: %q is not a number", args[1])
			}

			currency := r.config.Display.DefaultCurrency
			if currencyFlag != "" {
				currency = domain.Currency(currencyFlag)
				if !currency.IsValid() {
					return fmt.Errorf("unsupported currency %q (use EUR, USD, GBP, JPY or CNY)", currencyFlag)
				}
			}

			ctx, cancel := context.WithTimeout(context.Background(), r.config.Database.QueryTimeout)
			defer cancel()

			totals, err := r.app.aggregator.ComputeTotals(ctx, project, rate)
			if err != nil {
				return r.app.errors.Handle("compute totals", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Project:        %s\n", totals.Project)
			fmt.Fprintf(out, "Total time:     %s\n", billing.FormatDuration(totals.Duration()))
			fmt.Fprintf(out, "Amount to bill: %s\n", billing.FormatAmount(totals.TotalAmount, currency))
			return nil
		},
	}

	cmd.Flags().StringVar(&currencyFlag, "currency", "", "Billing currency (default: configured currency)")

	return cmd
}
