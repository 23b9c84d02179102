package dto

// DashboardStatistics aggregates counts across all classes of a head
type DashboardStatistics struct {
	TotalClasses     int     `json:"totalClasses" example:"3"`
	TotalStudents    int     `json:"totalStudents" example:"72"`
	TotalQuizzes     int     `json:"totalQuizzes" example:"9"`
	TotalAssignments int     `json:"totalAssignments" example:"12"`
	AverageProgress  float64 `json:"averageProgress" example:"64.25"`
}

// ClassOverview is the per-class summary row of the dashboard
type ClassOverview struct {
	ClassID      string  `json:"classId"`
	ClassName    string  `json:"className"`
	TeacherID    *string `json:"teacherId"`
	StudentCount int     `json:"studentCount"`
	Schedule     string  `json:"schedule"`
}

// ClassProgress is the per-class completion record of the dashboard
type ClassProgress struct {
	ClassID         string  `json:"classId"`
	ClassName       string  `json:"className"`
	StudentCount    int     `json:"studentCount"`
	QuizCount       int     `json:"quizCount"`
	AssignmentCount int     `json:"assignmentCount"`
	CompletionRate  float64 `json:"completionRate" example:"50"`
}

// DashboardResponse is the head dashboard payload
type DashboardResponse struct {
	Statistics    DashboardStatistics `json:"statistics"`
	ClassOverview []ClassOverview     `json:"classOverview"`
	ProgressData  []ClassProgress     `json:"progressData"`
}
