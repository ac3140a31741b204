package dto

import "github.com/ecakir/edurecords/internal/app/models"

// MessageResponse is the standard message payload for errors and plain
// acknowledgements, matching the `{"message": ...}` wire contract.
type MessageResponse struct {
	Message string `json:"message"`
}

// NewMessageResponse creates a message payload
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}

// StudentCoursesResponse is the gateway's merged payload for the
// combined endpoint: the student record from the student service plus
// the enrolled course tuples from the course service.
type StudentCoursesResponse struct {
	Student         interface{} `json:"student"`
	CoursesEnrolled interface{} `json:"courses_enrolled"`
}

// CompositeResponse is the composite view as served by the services
// that own the join (course service and GraphQL layer).
type CompositeResponse struct {
	Student *StudentResponse      `json:"student"`
	Courses []*models.CourseGrade `json:"courses"`
}
