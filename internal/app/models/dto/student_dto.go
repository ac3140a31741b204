package dto

import "github.com/ecakir/edurecords/internal/app/models"

// StudentResponse is the wire shape the student service exposes for a
// student row. created_at stays internal to the store.
type StudentResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewStudentResponse maps a student model to its wire shape
func NewStudentResponse(s *models.Student) *StudentResponse {
	return &StudentResponse{
		ID:    s.ID,
		Name:  s.Name,
		Email: s.Email,
	}
}

// NewStudentListResponse maps a list of student models to wire shapes
func NewStudentListResponse(students []*models.Student) []*StudentResponse {
	out := make([]*StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, NewStudentResponse(s))
	}
	return out
}

// CreateStudentRequest is the payload for registering a new student
type CreateStudentRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}
