// Code generated by "core generate"; DO NOT EDIT.

package mesh

import (
	"cogentcore.org/core/enums"
)

var _RoleValues = []Role{0, 1, 2, 3}

// RoleN is the highest valid value for type Role, plus one.
const RoleN Role = 4

var _RoleValueMap = map[string]Role{`Hull`: 0, `Greeble`: 1, `Engine`: 2, `Glow`: 3}

var _RoleDescMap = map[Role]string{0: `Hull is the base plating of the ship body.`, 1: `Greeble is raised surface detail: panels, antennas, turrets, domes, and similar clutter.`, 2: `Engine is engine housing and nozzle structure.`, 3: `Glow is emissive geometry: exhaust burn surfaces and glow discs.`}

var _RoleMap = map[Role]string{0: `Hull`, 1: `Greeble`, 2: `Engine`, 3: `Glow`}

// String returns the string representation of this Role value.
func (i Role) String() string { return enums.String(i, _RoleMap) }

// SetString sets the Role value from its string representation,
// and returns an error if the string is invalid.
func (i *Role) SetString(s string) error { return enums.SetString(i, s, _RoleValueMap, "Role") }

// Int64 returns the Role value as an int64.
func (i Role) Int64() int64 { return int64(i) }

// SetInt64 sets the Role value from an int64.
func (i *Role) SetInt64(in int64) { *i = Role(in) }

// Desc returns the description of the Role value.
func (i Role) Desc() string { return enums.Desc(i, _RoleDescMap) }

// RoleValues returns all possible values for the type Role.
func RoleValues() []Role { return _RoleValues }

// Values returns all possible values for the type Role.
func (i Role) Values() []enums.Enum { return enums.Values(_RoleValues) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Role) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Role) UnmarshalText(text []byte) error { return enums.UnmarshalText(i, text, "Role") }
