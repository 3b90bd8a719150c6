package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gitea-tools/triage/internal/app"
	"github.com/gitea-tools/triage/internal/domain"
	"github.com/gitea-tools/triage/internal/usecase"
)

// newActivityCommand creates the activity command for listing a user's
// activity feed.
func newActivityCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Date   string
		Output string
	}

	cmd := &cobra.Command{
		Use:   "activity [username]",
		Short: "List a user's activity feed for one day",
		Long: `List the activity feed entries a user performed on one day.

Without a username the locally configured one is used (see whoami).
Without --date the feed covers today.`,
		GroupID: groupReport,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var username string
			if len(args) > 0 {
				username = args[0]
			}

			resolver := usecase.NewResolveUsername(c.Resolver, c.Config.Defaults.Username)
			uc := usecase.NewUserActivity(c.Forge, resolver, c.Clock)
			out, err := uc.Execute(cmd.Context(), usecase.UserActivityInput{
				Username: username,
				Date:     opts.Date,
			})
			if err != nil {
				return err
			}

			docs := make([]json.RawMessage, 0, len(out.Activities))
			for _, activity := range out.Activities {
				docs = append(docs, activity.Raw)
			}
			return renderRaw(cmd.OutOrStdout(), opts.Output, rawArray(docs), func(w io.Writer) error {
				return printActivities(w, out)
			})
		},
	}

	cmd.Flags().StringVar(&opts.Date, "date", "", "Day to cover, formatted YYYY-MM-DD (default: today)")
	addOutputFlag(cmd, &opts.Output)
	return cmd
}

func printActivities(w io.Writer, out *usecase.UserActivityOutput) error {
	if len(out.Activities) == 0 {
		fmt.Fprintf(w, "No activity for %s on %s\n", out.Username, out.Date)
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tOP\tREPO\tREF")
	for _, activity := range out.Activities {
		repo := "-"
		if activity.Repo != nil {
			repo = activity.Repo.FullName
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			formatTime(activity.Created), activity.OpType, repo, refOrDash(activity))
	}
	return tw.Flush()
}

func refOrDash(activity *domain.Activity) string {
	if activity.RefName == "" {
		return "-"
	}
	return activity.RefName
}
