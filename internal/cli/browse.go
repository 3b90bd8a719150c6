package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gitea-tools/triage/internal/app"
	"github.com/gitea-tools/triage/internal/tui"
	"github.com/gitea-tools/triage/internal/usecase"
)

// newBrowseCommand creates the browse command, an interactive view over
// the same search the search command runs.
func newBrowseCommand(c *app.Container) *cobra.Command {
	var flags searchFlags

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse search results interactively",
		Long: `Run a cross-repository search and browse the results in an
interactive list. Press enter for details, esc to go back, and q to quit.`,
		GroupID: groupReport,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := usecase.NewSearchIssues(c.Forge)
			out, err := uc.Execute(cmd.Context(), usecase.SearchIssuesInput{
				Options: flags.options(c),
			})
			if err != nil {
				return err
			}
			if len(out.Issues) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No results")
				return nil
			}

			p := tea.NewProgram(tui.New(out.Issues), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	flags.register(cmd)
	return cmd
}
