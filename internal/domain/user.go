package domain

import "encoding/json"

// User is a Gitea user profile. Only the fields the triage commands
// inspect are decoded; Raw retains the service's document unmodified.
type User struct {
	Raw       json.RawMessage `json:"-"`
	UserName  string          `json:"username"`
	Login     string          `json:"login"`
	FullName  string          `json:"full_name"`
	Email     string          `json:"email"`
	AvatarURL string          `json:"avatar_url"`
	ID        int64           `json:"id"`
}

// UnmarshalJSON decodes the inspected fields and keeps the raw document.
func (u *User) UnmarshalJSON(data []byte) error {
	type user User
	var v user
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*u = User(v)
	u.Raw = append(json.RawMessage(nil), data...)
	return nil
}
