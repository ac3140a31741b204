package models

import "time"

// Enrollment links one student to one course with an optional grade.
// It is the only relationship entity in the schema; both references are
// enforced by foreign keys at write time.
type Enrollment struct {
	ID        int64     `json:"id"`
	StudentID int64     `json:"student_id"`
	CourseID  int64     `json:"course_id"`
	Grade     *string   `json:"grade"` // nullable, present only once graded
	CreatedAt time.Time `json:"created_at"`
}
