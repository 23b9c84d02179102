package models

import "time"

// Material is an uploaded lecture resource tied to a class
type Material struct {
	ID         string    `json:"id" db:"id" example:"507f1f77bcf86cd799439011"`
	ClassID    string    `json:"classId" db:"class_id"`
	Title      string    `json:"title" db:"title" example:"Week 1 slides"`
	FileURL    string    `json:"fileUrl" db:"file_url" example:"http://localhost:8080/uploads/materials/3f1c.pdf"`
	UploadedBy string    `json:"uploadedBy" db:"uploaded_by"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// MaterialDetails is a material joined with its class and uploader names.
// Empty names mean the relation did not resolve.
type MaterialDetails struct {
	Material
	ClassName    string `db:"class_name"`
	UploaderName string `db:"uploader_name"`
}
