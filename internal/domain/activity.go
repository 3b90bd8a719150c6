package domain

import (
	"encoding/json"
	"time"
)

// ActivityRepo is the repository sub-document of an activity feed entry.
type ActivityRepo struct {
	FullName string `json:"full_name"`
	ID       int64  `json:"id"`
}

// Activity is one entry of a user's activity feed.
type Activity struct {
	Raw     json.RawMessage `json:"-"`
	ActUser *Actor          `json:"act_user"`
	Repo    *ActivityRepo   `json:"repo"`
	OpType  string          `json:"op_type"`
	RefName string          `json:"ref_name"`
	Content string          `json:"content"`
	Created time.Time       `json:"created"`
	ID      int64           `json:"id"`
}

// UnmarshalJSON decodes the inspected fields and keeps the raw document.
func (a *Activity) UnmarshalJSON(data []byte) error {
	type activity Activity
	var v activity
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*a = Activity(v)
	a.Raw = append(json.RawMessage(nil), data...)
	return nil
}
