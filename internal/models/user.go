package models

import (
	"errors"
	"strings"
)

type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleManager Role = "Manager"
	RoleUser    Role = "User"
)

var ErrInvalidRole = errors.New("invalid role")

// Roles lists the selectable roles in the order the login form shows them.
var Roles = []Role{RoleAdmin, RoleManager, RoleUser}

// ParseRole accepts any casing of a known role ("admin", "ADMIN", "Admin").
func ParseRole(s string) (Role, error) {
	s = strings.TrimSpace(s)
	for _, r := range Roles {
		if strings.EqualFold(s, string(r)) {
			return r, nil
		}
	}
	return "", ErrInvalidRole
}

type User struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
	Online bool   `json:"online"`
}

// Status is the label shown in the users table.
func (u User) Status() string {
	if u.Online {
		return "Online"
	}
	return "Offline"
}
