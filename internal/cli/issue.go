package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gitea-tools/triage/internal/app"
	"github.com/gitea-tools/triage/internal/domain"
	"github.com/gitea-tools/triage/internal/usecase"
)

// newIssueCommand creates the issue command for showing one issue or
// pull request.
func newIssueCommand(c *app.Container) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "issue <owner/repo/issues/number>",
		Short: "Show one issue or pull request",
		Long: `Show one issue or pull request by its full reference, for example:

  triage issue blender/blender/issues/104297`,
		GroupID: groupLookup,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := usecase.NewShowIssue(c.Forge)
			out, err := uc.Execute(cmd.Context(), usecase.ShowIssueInput{IssueRef: args[0]})
			if err != nil {
				return err
			}
			return renderRaw(cmd.OutOrStdout(), output, out.Issue.Raw, func(w io.Writer) error {
				return printIssue(w, out.Issue)
			})
		},
	}

	addOutputFlag(cmd, &output)
	return cmd
}

func printIssue(w io.Writer, issue *domain.Issue) error {
	fmt.Fprintf(w, "#%d [%s] %s\n", issue.Number, issue.Kind(), issue.Title)
	fmt.Fprintf(w, "State:   %s\n", issue.State)
	if issue.User != nil {
		fmt.Fprintf(w, "Author:  %s\n", issue.User.UserName)
	}
	if len(issue.Labels) > 0 {
		names := make([]string, 0, len(issue.Labels))
		for _, label := range issue.Labels {
			names = append(names, label.Name)
		}
		fmt.Fprintf(w, "Labels:  %s\n", strings.Join(names, ", "))
	}
	fmt.Fprintf(w, "Created: %s\n", formatTime(issue.CreatedAt))
	fmt.Fprintf(w, "Updated: %s\n", formatTime(issue.UpdatedAt))
	if issue.HTMLURL != "" {
		fmt.Fprintf(w, "URL:     %s\n", issue.HTMLURL)
	}
	return nil
}
