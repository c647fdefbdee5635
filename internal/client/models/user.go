// Package models defines the wire models exchanged with the portfolio service.
package models

import "encoding/json"

// User is the authenticated identity returned by login and signup. It is
// stored and echoed back to the UI; fields the service adds later are kept
// in Extra so a round trip through durable storage loses nothing.
type User struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name,omitempty"`
	ProfileImage string `json:"profile_image,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

var userFields = []string{"id", "email", "name", "profile_image"}

func (u *User) UnmarshalJSON(b []byte) error {
	type plain User
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(b, &all); err != nil {
		return err
	}
	for _, k := range userFields {
		delete(all, k)
	}
	if len(all) > 0 {
		p.Extra = all
	}
	*u = User(p)
	return nil
}

func (u User) MarshalJSON() ([]byte, error) {
	type plain User
	b, err := json.Marshal(plain(u))
	if err != nil || len(u.Extra) == 0 {
		return b, err
	}
	merged := make(map[string]json.RawMessage, len(u.Extra)+len(userFields))
	for k, v := range u.Extra {
		merged[k] = v
	}
	var known map[string]json.RawMessage
	if err := json.Unmarshal(b, &known); err != nil {
		return nil, err
	}
	for k, v := range known {
		merged[k] = v
	}
	return json.Marshal(merged)
}

// AuthPayload is the data part of a login or signup reply.
type AuthPayload struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
