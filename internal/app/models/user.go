package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID              string    `json:"id" db:"id" example:"507f1f77bcf86cd799439011"`
	Name            string    `json:"name" db:"name" example:"Jane Doe"`
	Email           string    `json:"email" db:"email" example:"jane@school.edu"`
	Password        string    `json:"-" db:"password"` // bcrypt hash, never serialized
	Role            RoleType  `json:"role" db:"role" example:"student"`
	AssignedClasses []string  `json:"assignedClasses" db:"assigned_classes"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}

// HasClass reports whether classID is among the user's assigned classes
func (u *User) HasClass(classID string) bool {
	for _, id := range u.AssignedClasses {
		if id == classID {
			return true
		}
	}
	return false
}
