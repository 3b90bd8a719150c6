package domain

import (
	"encoding/json"
	"slices"
	"time"
)

// Timeline event types the triage reports care about. The service emits
// more; unknown types pass through the entities untouched.
const (
	EventTypeComment   = "comment"
	EventTypeLabel     = "label"
	EventTypeClose     = "close"
	EventTypeReopen    = "reopen"
	EventTypeCommitRef = "commit_ref"
)

// Event is one entry on an issue timeline. User is nil for events with
// no author (for example automatic cross-references).
type Event struct {
	Raw       json.RawMessage `json:"-"`
	User      *Actor          `json:"user"`
	Label     *Label          `json:"label"`
	Type      string          `json:"type"`
	Body      string          `json:"body"`
	CreatedAt time.Time       `json:"created_at"`
	ID        int64           `json:"id"`
}

// UnmarshalJSON decodes the inspected fields and keeps the raw document.
func (e *Event) UnmarshalJSON(data []byte) error {
	type event Event
	var v event
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*e = Event(v)
	e.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// EventFilter selects timeline events authored by Username that either
// applied one of the Labels or match one of the Types.
type EventFilter struct {
	Username string
	Labels   []string
	Types    []string
}

// FilterEvents applies f to events, preserving input order. Nil entries
// and events without an author are skipped. A "label" event matches when
// its label name is in f.Labels; the label check takes precedence over
// the type check.
func FilterEvents(events []*Event, f EventFilter) []*Event {
	result := make([]*Event, 0, len(events))
	for _, event := range events {
		if event == nil {
			continue
		}
		if event.User == nil || event.User.UserName != f.Username {
			continue
		}
		switch {
		case event.Type == EventTypeLabel && event.Label != nil && slices.Contains(f.Labels, event.Label.Name):
		case slices.Contains(f.Types, event.Type):
		default:
			continue
		}
		result = append(result, event)
	}
	return result
}
