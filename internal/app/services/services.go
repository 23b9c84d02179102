package services

// Services defined in this package:
// - AuthService: exchanges credentials for an access token
// - StudentService: admin-driven student account creation
// - ClassService: class creation and deletion with assigned-class bookkeeping
// - DashboardService: head dashboard aggregation
// - MaterialService: lecture material upload and student listing
// - QuizService: quiz creation and deletion
