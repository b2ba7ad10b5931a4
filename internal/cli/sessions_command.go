package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ttb/internal/domain"
)

// newSessionsCommand creates the sessions command group
func (r *RootCommand) newSessionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Inspect the session log",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all recorded sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.config.Database.QueryTimeout)
			defer cancel()

			dbSessions, err := r.app.store.ListSessions(ctx)
			if err != nil {
				return r.app.errors.Handle("list sessions", err)
			}

			records, err := domain.NewSessionMapper().FromDatabaseSlice(dbSessions)
			if err != nil {
				return r.app.errors.Handle("list sessions", err)
			}

			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No sessions recorded yet.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tPROJECT\tSTART\tEND\tMINUTES\tRATE\tCURRENCY")
			for _, record := range records {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%g\t%s\n",
					record.Date.Format(r.config.Display.DateFormat),
					record.Project,
					record.Start.Format("15:04:05"),
					record.End.Format("15:04:05"),
					record.DurationMinutes,
					record.Rate,
					record.Currency,
				)
			}
			return w.Flush()
		},
	})

	return cmd
}
