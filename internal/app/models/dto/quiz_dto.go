package dto

import "encoding/json"

// CreateQuizRequest is the teacher payload for a new quiz.
// Presence of each field is checked by the service.
type CreateQuizRequest struct {
	ClassID   string          `json:"classId" example:"507f1f77bcf86cd799439011"`
	Title     string          `json:"title" example:"Chapter 3 quiz"`
	Questions json.RawMessage `json:"questions" swaggertype:"array,object"`
}
