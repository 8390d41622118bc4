package entity

import (
	"encoding/json"

	"github.com/sangkips/kasirpos/internal/domain/enum"
)

// User represents an operator resolved from the user directory. Role is
// derived deterministically from identity at authentication time, never
// stored independently or mutable by the user.
type User struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     enum.Role `json:"role"`
	Avatar   string    `json:"avatar,omitempty"`

	// PasswordHash is only populated on directory records, never on
	// profiles returned to clients or cached in sessions.
	PasswordHash string `json:"-"`
}

// Profile returns a copy safe to serialize into responses and the local
// session cache.
func (u *User) Profile() *User {
	p := *u
	p.PasswordHash = ""
	return &p
}

// MarshalProfile serializes the profile for the session cache.
func (u *User) MarshalProfile() (string, error) {
	data, err := json.Marshal(u.Profile())
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// UnmarshalProfile restores a cached profile.
func UnmarshalProfile(data string) (*User, error) {
	var u User
	if err := json.Unmarshal([]byte(data), &u); err != nil {
		return nil, err
	}
	return &u, nil
}
