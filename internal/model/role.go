package model

import (
	"fmt"
	"strings"
)

// Role is a logical sensor measurement, independent of how a given export
// spells its column.
type Role string

const (
	// RoleMoisture is soil moisture in percent.
	RoleMoisture Role = "moisture"
	// RoleTemperature is air temperature.
	RoleTemperature Role = "temperature"
	// RoleHumidity is relative air humidity.
	RoleHumidity Role = "humidity"
	// RoleYield is crop yield.
	RoleYield Role = "yield"
	// RoleStatus is the textual field status.
	RoleStatus Role = "status"
	// RoleIrrigation flags rows where irrigation is needed.
	RoleIrrigation Role = "irrigation"
	// RoleHeatStress flags rows with heat stress.
	RoleHeatStress Role = "heat_stress"
)

var allRoles = []Role{
	RoleMoisture,
	RoleTemperature,
	RoleHumidity,
	RoleYield,
	RoleStatus,
	RoleIrrigation,
	RoleHeatStress,
}

// Roles returns every role in declaration order.
func Roles() []Role {
	out := make([]Role, len(allRoles))
	copy(out, allRoles)
	return out
}

// ParseRole converts a role name into a Role.
func ParseRole(s string) (Role, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, r := range allRoles {
		if string(r) == name {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// RoleBinding maps roles onto the columns of one dataset. A role missing from
// the binding is unresolved.
type RoleBinding struct {
	columns map[Role]string
}

// NewRoleBinding builds a binding from a role→column map.
func NewRoleBinding(columns map[Role]string) RoleBinding {
	b := RoleBinding{columns: make(map[Role]string, len(columns))}
	for role, col := range columns {
		b.columns[role] = col
	}
	return b
}

// Column returns the column bound to role.
func (b RoleBinding) Column(role Role) (string, bool) {
	col, ok := b.columns[role]
	return col, ok
}

// Resolved returns the bound roles in declaration order.
func (b RoleBinding) Resolved() []Role {
	var out []Role
	for _, r := range allRoles {
		if _, ok := b.columns[r]; ok {
			out = append(out, r)
		}
	}
	return out
}

// Unresolved returns the roles with no bound column, in declaration order.
func (b RoleBinding) Unresolved() []Role {
	var out []Role
	for _, r := range allRoles {
		if _, ok := b.columns[r]; !ok {
			out = append(out, r)
		}
	}
	return out
}

// Map returns the binding keyed by role name; unresolved roles map to "".
func (b RoleBinding) Map() map[string]string {
	out := make(map[string]string, len(allRoles))
	for _, r := range allRoles {
		out[string(r)] = b.columns[r]
	}
	return out
}
