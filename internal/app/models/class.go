package models

import "time"

// Class is a group of students under a teacher and a head
type Class struct {
	ID        string    `json:"id" db:"id" example:"507f1f77bcf86cd799439011"`
	Name      string    `json:"name" db:"name" example:"Algebra 10-B"`
	TeacherID *string   `json:"teacherId,omitempty" db:"teacher_id"`
	Students  []string  `json:"students" db:"students"`
	Schedule  string    `json:"schedule" db:"schedule" example:"Mon/Wed 09:00"`
	HeadID    *string   `json:"headId,omitempty" db:"head_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// StudentCount returns the number of enrolled students
func (c *Class) StudentCount() int {
	return len(c.Students)
}
