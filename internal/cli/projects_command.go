package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// newProjectsCommand creates the projects command group
func (r *RootCommand) newProjectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Manage the project catalog",
		Long: `Manage the project catalog.

The catalog is derived from the session log: every project that appears in a
recorded session is listed. Additions are checked against the catalog but are
only persisted once a session for the new project is recorded.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all known projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.config.Database.QueryTimeout)
			defer cancel()

			if err := r.app.catalog.LoadFromStore(ctx); err != nil {
				return r.app.errors.Handle("load projects", err)
			}

			projects := r.app.catalog.Projects()
			if len(projects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No projects recorded yet.")
				return nil
			}

			for _, project := range projects {
				fmt.Fprintln(cmd.OutOrStdout(), project)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Validate a new project name against the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.config.Database.QueryTimeout)
			defer cancel()

			if err := r.app.catalog.LoadFromStore(ctx); err != nil {
				return r.app.errors.Handle("load projects", err)
			}

			projects, err := r.app.catalog.AddProject(args[0])
			if err != nil {
				return r.app.errors.Handle("add project", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Project catalog now has %d entries:\n", len(projects))
			for _, project := range projects {
				fmt.Fprintln(cmd.OutOrStdout(), project)
			}
			return nil
		},
	})

	return cmd
}
