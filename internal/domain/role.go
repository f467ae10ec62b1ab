package domain

import "fmt"

// Role is the closed set of account roles. The store keeps it as a plain
// string column, so ParseRole guards every place a role enters the system.
type Role string

const (
	RoleAdmin      Role = "Admin"
	RoleSubscriber Role = "Subscriber"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleSubscriber:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (r Role) String() string {
	return string(r)
}
