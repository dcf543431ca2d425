package types

import "github.com/google/uuid"

// Principal is the authenticated caller. Services receive it as an
// explicit argument; nothing reads auth state ambiently.
type Principal struct {
	ID       uuid.UUID
	Username string
	Roles    []string
}

func (p Principal) HasRole(authority string) bool {
	for _, r := range p.Roles {
		if r == authority {
			return true
		}
	}
	return false
}
