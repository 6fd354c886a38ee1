package model

import (
	"fmt"
	"strings"
)

// Role is the closed set of roles a user can hold. Raw strings are parsed
// into a Role at the authentication boundary; everything past that point
// only ever sees one of the three known values.
type Role string

const (
	RoleAdmin            Role = "ADMIN"
	RoleBaseCommander    Role = "BASE_COMMANDER"
	RoleLogisticsOfficer Role = "LOGISTICS_OFFICER"
)

// ParseRole normalizes and validates a raw role string.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleBaseCommander:
		return RoleBaseCommander, nil
	case RoleLogisticsOfficer:
		return RoleLogisticsOfficer, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleBaseCommander || r == RoleLogisticsOfficer
}
