package models

import (
	"encoding/json"
	"time"
)

// Submission is a single student's answer set for a quiz or assignment
type Submission struct {
	StudentID   string          `json:"studentId"`
	SubmittedAt time.Time       `json:"submittedAt"`
	Answers     json.RawMessage `json:"answers,omitempty" swaggertype:"object"`
}

// Quiz belongs to a class; its questions are stored as opaque JSON
type Quiz struct {
	ID          string          `json:"id" db:"id" example:"507f1f77bcf86cd799439011"`
	ClassID     string          `json:"classId" db:"class_id"`
	Title       string          `json:"title" db:"title" example:"Chapter 3 quiz"`
	Questions   json.RawMessage `json:"questions" db:"questions" swaggertype:"array,object"`
	Submissions []Submission    `json:"submissions" db:"submissions"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
}

// Assignment belongs to a class and collects submissions
type Assignment struct {
	ID          string       `json:"id" db:"id"`
	ClassID     string       `json:"classId" db:"class_id"`
	Title       string       `json:"title" db:"title"`
	Submissions []Submission `json:"submissions" db:"submissions"`
	CreatedAt   time.Time    `json:"createdAt" db:"created_at"`
}
