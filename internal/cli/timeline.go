package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/gitea-tools/triage/internal/app"
	"github.com/gitea-tools/triage/internal/domain"
	"github.com/gitea-tools/triage/internal/usecase"
)

// newTimelineCommand creates the timeline command for the filtered
// per-issue event digest.
func newTimelineCommand(c *app.Container) *cobra.Command {
	var opts struct {
		User   string
		Since  string
		Before string
		Labels []string
		Types  []string
		Output string
	}

	cmd := &cobra.Command{
		Use:   "timeline <owner/repo/issues/number>",
		Short: "List one user's label and type events on an issue",
		Long: `List the timeline events a user performed on one issue, keeping
label applications matching --label and events matching --type.

Examples:
  # Labels bob applied, and his closes
  triage timeline blender/blender/issues/104297 --user bob --label "Type/Bug" --type close

  # Commit references within one week
  triage timeline blender/blender/issues/104297 --user bob --type commit_ref \
    --since 2024-03-01 --before 2024-03-08`,
		GroupID: groupReport,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			since, err := parseTimeFlag(opts.Since)
			if err != nil {
				return err
			}
			before, err := parseTimeFlag(opts.Before)
			if err != nil {
				return err
			}

			resolver := usecase.NewResolveUsername(c.Resolver, c.Config.Defaults.Username)
			uc := usecase.NewTimelineEvents(c.Forge, resolver)
			out, err := uc.Execute(cmd.Context(), usecase.TimelineEventsInput{
				IssueRef: args[0],
				Username: opts.User,
				Since:    since,
				Before:   before,
				Labels:   opts.Labels,
				Types:    opts.Types,
			})
			if err != nil {
				return err
			}

			docs := make([]json.RawMessage, 0, len(out.Events))
			for _, event := range out.Events {
				docs = append(docs, event.Raw)
			}
			return renderRaw(cmd.OutOrStdout(), opts.Output, rawArray(docs), func(w io.Writer) error {
				return printEvents(w, out)
			})
		},
	}

	cmd.Flags().StringVarP(&opts.User, "user", "u", "", "Username whose events to keep (default: see whoami)")
	cmd.Flags().StringVar(&opts.Since, "since", "", "Only events after this time (YYYY-MM-DD or RFC 3339)")
	cmd.Flags().StringVar(&opts.Before, "before", "", "Only events before this time (YYYY-MM-DD or RFC 3339)")
	cmd.Flags().StringArrayVar(&opts.Labels, "label", nil, "Keep label events applying this label (repeatable)")
	cmd.Flags().StringArrayVar(&opts.Types, "type", nil, "Keep events of this type, e.g. close, commit_ref (repeatable)")
	addOutputFlag(cmd, &opts.Output)
	return cmd
}

// parseTimeFlag parses a --since/--before value. Both a bare day and a
// full RFC 3339 timestamp are accepted.
func parseTimeFlag(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid time %q (want YYYY-MM-DD or RFC 3339)", value)
}

func printEvents(w io.Writer, out *usecase.TimelineEventsOutput) error {
	if len(out.Events) == 0 {
		fmt.Fprintf(w, "No matching events by %s\n", out.Username)
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tTYPE\tDETAIL")
	for _, event := range out.Events {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", formatTime(event.CreatedAt), event.Type, eventDetail(event))
	}
	return tw.Flush()
}

func eventDetail(event *domain.Event) string {
	switch {
	case event.Type == domain.EventTypeLabel && event.Label != nil:
		return event.Label.Name
	case event.Body != "":
		return firstLine(event.Body)
	default:
		return "-"
	}
}
