package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"ai-architect-console/internal/models"
	"ai-architect-console/internal/pages"
	"github.com/spf13/cobra"
)

const cliPromptPreviewLen = 40

func newProjectsCommand(flags *globalFlags) *cobra.Command {
	projects := &cobra.Command{
		Use:   "projects",
		Short: "Query projects",
	}
	projects.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			list, err := a.client.ListProjects(cmd.Context())
			if err != nil {
				return err
			}
			return printProjects(cmd.OutOrStdout(), list, a.locale)
		},
	})
	return projects
}

func newCreationsCommand(flags *globalFlags) *cobra.Command {
	creations := &cobra.Command{
		Use:   "creations",
		Short: "Query image creations",
	}
	creations.AddCommand(&cobra.Command{
		Use:   "list <projectId>",
		Short: "List a project's image creations, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := pages.ParseProjectID(args[0])
			if err != nil {
				return fmt.Errorf("%q: %w", args[0], err)
			}
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			list, err := a.client.ListImageCreations(cmd.Context(), projectID)
			if err != nil {
				return err
			}
			return printCreations(cmd.OutOrStdout(), pages.SortNewestFirst(list), a.locale)
		},
	})
	return creations
}

func printProjects(out io.Writer, projects []models.Project, locale pages.Locale) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCREATED\tDESCRIPTION")
	for _, p := range projects {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", p.ID, p.Name, locale.Date(p.CreatedAt), pages.Truncate(p.Description, 60))
	}
	return w.Flush()
}

func printCreations(out io.Writer, creations []models.ImageCreation, locale pages.Locale) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tTYPE\tCREATED\tOUTPUT\tPROMPT")
	for _, c := range creations {
		output := "-"
		if c.HasOutputImage() {
			output = c.OutputImageFileName
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Status, c.InputType.Label(), locale.DateTime(c.CreatedAt), output,
			pages.Truncate(c.PromptText, cliPromptPreviewLen))
	}
	return w.Flush()
}
