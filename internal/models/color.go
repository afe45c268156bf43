// Package models defines the shared value types of the swatch playground.
package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownRole is returned when a role name is not one of the five color set roles.
var ErrUnknownRole = errors.New("unknown color role")

// Color is a string-encoded color value such as "#6200ee".
type Color string

// String implements fmt.Stringer.
func (c Color) String() string {
	return string(c)
}

// Role names one of the five semantic slots in a ColorSet.
type Role string

const (
	RoleContainer Role = "container"
	RoleAccent    Role = "accent"
	RoleHigh      Role = "high"
	RoleMedium    Role = "medium"
	RoleLow       Role = "low"
)

// Roles lists every role in display order.
var Roles = []Role{RoleContainer, RoleAccent, RoleHigh, RoleMedium, RoleLow}

// OnRoles lists the roles that are contrast-evaluated against the container.
var OnRoles = []Role{RoleAccent, RoleHigh, RoleMedium, RoleLow}

// ParseRole converts a role name into a Role.
func ParseRole(name string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(name)))
	for _, candidate := range Roles {
		if role == candidate {
			return role, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, name)
}

// IsOnRole reports whether the role is drawn on top of the container.
func (r Role) IsOnRole() bool {
	for _, candidate := range OnRoles {
		if r == candidate {
			return true
		}
	}
	return false
}

// ColorSet is the five-role palette a user themes. It is a value type:
// every edit produces a new ColorSet.
type ColorSet struct {
	Container Color `json:"container" yaml:"container" mapstructure:"container"`
	Accent    Color `json:"accent" yaml:"accent" mapstructure:"accent"`
	High      Color `json:"high" yaml:"high" mapstructure:"high"`
	Medium    Color `json:"medium" yaml:"medium" mapstructure:"medium"`
	Low       Color `json:"low" yaml:"low" mapstructure:"low"`
}

// DefaultColorSet is the Material baseline used for new sets.
var DefaultColorSet = ColorSet{
	Container: "#ffffff",
	Accent:    "#6200ee",
	High:      "#212121",
	Medium:    "#424242",
	Low:       "#999",
}

// Get returns the color assigned to role, or "" for an unknown role.
func (s ColorSet) Get(role Role) Color {
	switch role {
	case RoleContainer:
		return s.Container
	case RoleAccent:
		return s.Accent
	case RoleHigh:
		return s.High
	case RoleMedium:
		return s.Medium
	case RoleLow:
		return s.Low
	default:
		return ""
	}
}

// With returns a copy of the set with role set to value.
// An unknown role returns the set unchanged.
func (s ColorSet) With(role Role, value Color) ColorSet {
	switch role {
	case RoleContainer:
		s.Container = value
	case RoleAccent:
		s.Accent = value
	case RoleHigh:
		s.High = value
	case RoleMedium:
		s.Medium = value
	case RoleLow:
		s.Low = value
	}
	return s
}

// Validate checks that all five roles carry a color.
func (s ColorSet) Validate() error {
	validation := &ValidationErrors{}
	for _, role := range Roles {
		if strings.TrimSpace(string(s.Get(role))) == "" {
			validation.AddMessage(string(role), "color is required")
		}
	}
	return validation.Err()
}
