package dto

import "github.com/yigit/classroom/internal/app/models"

// CreateStudentRequest is the admin payload for adding a student.
// Fields are validated by the service after trimming.
type CreateStudentRequest struct {
	Name     string `json:"name" example:"Jane Doe"`
	Email    string `json:"email" example:"jane@school.edu"`
	Password string `json:"password" example:"correct-horse"`
}

// UserResponse holds the public fields of a user
type UserResponse struct {
	ID              string          `json:"id" example:"507f1f77bcf86cd799439011"`
	Name            string          `json:"name" example:"Jane Doe"`
	Email           string          `json:"email" example:"jane@school.edu"`
	Role            models.RoleType `json:"role" example:"student"`
	AssignedClasses []string        `json:"assignedClasses"`
}

// NewUserResponse strips private fields from user
func NewUserResponse(user *models.User) UserResponse {
	classes := user.AssignedClasses
	if classes == nil {
		classes = []string{}
	}
	return UserResponse{
		ID:              user.ID,
		Name:            user.Name,
		Email:           user.Email,
		Role:            user.Role,
		AssignedClasses: classes,
	}
}
