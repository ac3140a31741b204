package dto

import "github.com/ecakir/edurecords/internal/app/models"

// CourseResponse is the wire shape the course service exposes for a
// course row on read endpoints.
type CourseResponse struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Credits  int32  `json:"credits"`
	Lecturer string `json:"lecturer"`
}

// NewCourseResponse maps a course model to its wire shape
func NewCourseResponse(c *models.Course) *CourseResponse {
	return &CourseResponse{
		ID:       c.ID,
		Title:    c.Title,
		Credits:  c.Credits,
		Lecturer: c.Lecturer,
	}
}

// NewCourseListResponse maps a list of course models to wire shapes
func NewCourseListResponse(courses []*models.Course) []*CourseResponse {
	out := make([]*CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, NewCourseResponse(c))
	}
	return out
}

// CreateCourseRequest is the payload for creating a course.
// Credits is a pointer so a missing field is rejected rather than
// silently defaulting to zero.
type CreateCourseRequest struct {
	Title    string `json:"title" binding:"required"`
	Credits  *int32 `json:"credits" binding:"required"`
	Lecturer string `json:"lecturer" binding:"required"`
}

// UpdateCourseRequest is the payload for updating a course
type UpdateCourseRequest struct {
	Title    string `json:"title" binding:"required"`
	Credits  *int32 `json:"credits" binding:"required"`
	Lecturer string `json:"lecturer" binding:"required"`
}
