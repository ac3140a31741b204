package dto

// CreateEnrollmentRequest is the payload for enrolling a student in a
// course. Grade is optional; ungraded enrollments carry null.
type CreateEnrollmentRequest struct {
	StudentID int64   `json:"student_id" binding:"required"`
	CourseID  int64   `json:"course_id" binding:"required"`
	Grade     *string `json:"grade"`
}

// UpdateEnrollmentRequest updates the grade of an enrollment. Only the
// grade is mutable; the student and course references are fixed at
// creation.
type UpdateEnrollmentRequest struct {
	Grade *string `json:"grade"`
}
