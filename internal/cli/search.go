package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gitea-tools/triage/internal/app"
	"github.com/gitea-tools/triage/internal/domain"
	"github.com/gitea-tools/triage/internal/usecase"
)

// searchFlags is the flag surface shared by search and browse.
type searchFlags struct {
	Type     string
	Since    string
	Before   string
	State    string
	Labels   []string
	Token    string
	Created  bool
	Reviewed bool
}

func (f *searchFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Type, "type", "", `Restrict to "issue" or "pull"`)
	cmd.Flags().StringVar(&f.Since, "since", "", "Only results updated after this RFC 3339 time")
	cmd.Flags().StringVar(&f.Before, "before", "", "Only results updated before this RFC 3339 time")
	cmd.Flags().StringVar(&f.State, "state", "all", "Issue state: open, closed, or all")
	cmd.Flags().StringArrayVar(&f.Labels, "label", nil, "Only results carrying this label (repeatable)")
	cmd.Flags().BoolVar(&f.Created, "created", false, "Only results created by the authenticated user")
	cmd.Flags().BoolVar(&f.Reviewed, "reviewed", false, "Only pulls reviewed by the authenticated user")
	cmd.Flags().StringVar(&f.Token, "token", "", "Access token (default: from configuration)")
}

func (f *searchFlags) options(c *app.Container) domain.SearchOptions {
	token := f.Token
	if token == "" {
		token = c.Config.Gitea.AccessToken
	}
	return domain.SearchOptions{
		Type:     f.Type,
		Since:    f.Since,
		Before:   f.Before,
		State:    f.State,
		Labels:   f.Labels,
		Token:    token,
		Created:  f.Created,
		Reviewed: f.Reviewed,
	}
}

// newSearchCommand creates the search command for the cross-repository
// issue search.
func newSearchCommand(c *app.Container) *cobra.Command {
	var flags searchFlags
	var output string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search issues and pulls across repositories",
		Long: `Search issues and pull requests across all repositories the access
token grants access to.

Examples:
  # Everything updated in one week
  triage search --since 2024-03-01T00:00:00Z --before 2024-03-08T00:00:00Z

  # Open pulls you created
  triage search --type pull --state open --created

  # Bugs carrying one of the given labels
  triage search --type issue --label "Type/Bug" --label "Priority/High"`,
		GroupID: groupReport,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := usecase.NewSearchIssues(c.Forge)
			out, err := uc.Execute(cmd.Context(), usecase.SearchIssuesInput{
				Options:  flags.options(c),
				Verbose:  verbose,
				Progress: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}

			docs := make([]json.RawMessage, 0, len(out.Issues))
			for _, issue := range out.Issues {
				docs = append(docs, issue.Raw)
			}
			return renderRaw(cmd.OutOrStdout(), output, rawArray(docs), func(w io.Writer) error {
				return printIssues(w, out.Issues)
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Report search scope, parameters, and totals to stderr")
	addOutputFlag(cmd, &output)
	return cmd
}

func printIssues(w io.Writer, issues []*domain.Issue) error {
	if len(issues) == 0 {
		fmt.Fprintln(w, "No results")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tNUMBER\tSTATE\tUPDATED\tTITLE\tLABELS")
	for _, issue := range issues {
		names := make([]string, 0, len(issue.Labels))
		for _, label := range issue.Labels {
			names = append(names, label.Name)
		}
		fmt.Fprintf(tw, "%s\t#%d\t%s\t%s\t%s\t%s\n",
			issue.Kind(), issue.Number, issue.State,
			formatTime(issue.UpdatedAt), firstLine(issue.Title), strings.Join(names, ","))
	}
	return tw.Flush()
}
