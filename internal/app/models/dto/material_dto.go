package dto

import (
	"mime/multipart"
	"time"
)

// MaterialResponse is a material as listed to students
type MaterialResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	FileURL    string    `json:"fileUrl"`
	ClassName  string    `json:"className" example:"Algebra 10-B"`
	ClassID    string    `json:"classId"`
	UploadedBy string    `json:"uploadedBy" example:"John Smith"`
	CreatedAt  time.Time `json:"createdAt"`
}

// MaterialListResponse wraps the materials visible to a student
type MaterialListResponse struct {
	Count     int                `json:"count" example:"2"`
	Materials []MaterialResponse `json:"materials"`
}

// UploadMaterialRequest is the multipart form for a teacher upload
type UploadMaterialRequest struct {
	ClassID string                `form:"classId" binding:"required,len=24,hexadecimal"`
	Title   string                `form:"title" binding:"required,max=255"`
	File    *multipart.FileHeader `form:"file" binding:"required" swaggerignore:"true"`
}
