package models

// CourseGrade is one joined (course, grade) tuple for a student's
// enrollment. Grade is nil when the enrollment has not been graded.
type CourseGrade struct {
	Title   string  `json:"title"`
	Credits int32   `json:"credits"`
	Grade   *string `json:"grade"`
}

// StudentCourses is the composite view of one student plus the courses
// they are enrolled in, ordered by course title. It is never persisted;
// it is assembled fresh per request and discarded with the response.
type StudentCourses struct {
	Student *Student       `json:"student"`
	Courses []*CourseGrade `json:"courses"`
}
