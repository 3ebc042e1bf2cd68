package enum

import "encoding/json"

// Role represents a user's role as reported by the POS API
type Role int

const (
	RoleStaff Role = iota
	RoleManager
	RoleAdmin
)

func (r Role) String() string {
	names := [...]string{"staff", "manager", "admin"}
	if int(r) < 0 || int(r) >= len(names) {
		return "staff"
	}
	return names[r]
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

// ParseRole maps an API role string to a Role, defaulting to staff.
func ParseRole(s string) Role {
	switch s {
	case "admin":
		return RoleAdmin
	case "manager":
		return RoleManager
	default:
		return RoleStaff
	}
}
