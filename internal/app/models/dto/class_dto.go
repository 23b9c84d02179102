package dto

// CreateClassRequest is the admin payload for creating a class
type CreateClassRequest struct {
	Name      string   `json:"name" binding:"required,max=200" example:"Algebra 10-B"`
	TeacherID *string  `json:"teacherId" binding:"omitempty,len=24,hexadecimal" example:"507f1f77bcf86cd799439011"`
	Students  []string `json:"students" binding:"omitempty,dive,len=24,hexadecimal"`
	Schedule  string   `json:"schedule" binding:"max=200" example:"Mon/Wed 09:00"`
	HeadID    *string  `json:"headId" binding:"omitempty,len=24,hexadecimal" example:"507f1f77bcf86cd799439012"`
}

// DeleteClassResponse reports the removed class
type DeleteClassResponse struct {
	DeletedClassID string `json:"deletedClassId" example:"507f1f77bcf86cd799439011"`
}
