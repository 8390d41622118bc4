package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// Role represents an operator role resolved from identity
type Role int

const (
	RoleUser  Role = 0
	RoleStaff Role = 1
	RoleAdmin Role = 2
)

func (r Role) String() string {
	return [...]string{"user", "staff", "admin"}[r]
}

// IsAdmin reports whether the role carries admin capabilities
// (manage catalog, view sales ledger).
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *Role) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*r = Role(i)
		return nil
	}
	*r = ParseRole(str)
	return nil
}

// ParseRole maps a role name to a Role. Unknown names map to the
// non-privileged RoleUser.
func ParseRole(s string) Role {
	switch s {
	case "admin":
		return RoleAdmin
	case "staff":
		return RoleStaff
	default:
		return RoleUser
	}
}

func (r Role) Value() (driver.Value, error) {
	return int64(r), nil
}

func (r *Role) Scan(value interface{}) error {
	if value == nil {
		*r = RoleUser
		return nil
	}
	switch v := value.(type) {
	case int64:
		*r = Role(v)
	case int:
		*r = Role(v)
	}
	return nil
}
