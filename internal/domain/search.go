package domain

import (
	"net/url"
	"strings"
)

// SearchOptions are the filters for the cross-repository issue search.
// Zero values mean "not set" and are dropped from the query string.
type SearchOptions struct {
	Type     string   // "issue" or "pull"; empty searches both
	Since    string   // RFC 3339; only results updated after this time
	Before   string   // RFC 3339; only results updated before this time
	State    string   // "open", "closed", or "all"
	Labels   []string // results carrying any of these labels
	Token    string   // access token forwarded as a query parameter
	Created  bool     // only results created by the authenticated user
	Reviewed bool     // only pulls reviewed by the authenticated user
}

// Params builds the query parameter set. Absent and empty values are
// dropped; booleans encode as the literal strings "true"/"false", with
// false treated as absent.
func (o SearchOptions) Params() url.Values {
	params := url.Values{}
	set := func(key, value string) {
		if value != "" {
			params.Set(key, value)
		}
	}
	set("type", o.Type)
	set("since", o.Since)
	set("before", o.Before)
	set("state", o.State)
	set("labels", strings.Join(o.Labels, ","))
	if o.Created {
		params.Set("created", "true")
	}
	if o.Reviewed {
		params.Set("reviewed", "true")
	}
	set("access_token", o.Token)
	return params
}

// RedactedParams returns the parameter set without the type selector and
// the access token, for verbose reporting.
func (o SearchOptions) RedactedParams() url.Values {
	params := o.Params()
	params.Del("type")
	params.Del("access_token")
	return params
}

// Scope describes what the search covers, for verbose reporting.
func (o SearchOptions) Scope() string {
	if o.Type != "" {
		return o.Type
	}
	return "issues and pulls"
}
