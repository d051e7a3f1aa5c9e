package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Role is the closed set of account roles. The zero value is not a valid role.
type Role uint8

const (
	RoleResident Role = iota + 1
	RoleAdmin
	RoleSecurity
)

var roleNames = map[Role]string{
	RoleResident: "resident",
	RoleAdmin:    "admin",
	RoleSecurity: "security",
}

// ParseRole converts a stored or submitted role name into a Role
func ParseRole(name string) (Role, error) {
	for role, n := range roleNames {
		if n == name {
			return role, nil
		}
	}
	return 0, fmt.Errorf("invalid role %q", name)
}

// String returns the role name as persisted and serialized
func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return ""
}

// Valid reports whether r is one of the defined roles
func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

// MarshalJSON implements json.Marshaler
func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (r *Role) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("role must be a string: %w", err)
	}
	role, err := ParseRole(name)
	if err != nil {
		return err
	}
	*r = role
	return nil
}

// Value implements driver.Valuer
func (r Role) Value() (driver.Value, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid role %d", r)
	}
	return r.String(), nil
}

// Scan implements sql.Scanner
func (r *Role) Scan(value interface{}) error {
	var name string
	switch v := value.(type) {
	case string:
		name = v
	case []byte:
		name = string(v)
	default:
		return fmt.Errorf("cannot scan %T into Role", value)
	}
	role, err := ParseRole(name)
	if err != nil {
		return err
	}
	*r = role
	return nil
}

// GormDataType stores roles as strings
func (Role) GormDataType() string {
	return "string"
}
