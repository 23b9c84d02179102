package models

import "strings"

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin   RoleType = "admin"
	RoleStudent RoleType = "student"
	RoleTeacher RoleType = "teacher"
	RoleHead    RoleType = "head"
)

// IsValid reports whether r is one of the known roles
func (r RoleType) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStudent, RoleTeacher, RoleHead:
		return true
	}
	return false
}

// Matches compares roles ignoring case
func (r RoleType) Matches(other string) bool {
	return strings.EqualFold(string(r), other)
}
