package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ecakir/edurecords/internal/app/models"
	"github.com/ecakir/edurecords/internal/pkg/apperrors"
)

// StudentRepo is the accessor surface the student service depends on
type StudentRepo interface {
	GetAll(ctx context.Context) ([]*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	Create(ctx context.Context, name, email string) (*models.Student, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// StudentService handles student-related operations
type StudentService struct {
	studentRepo StudentRepo
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo StudentRepo) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
	}
}

// ListStudents retrieves all students
func (s *StudentService) ListStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	return students, nil
}

// GetStudent retrieves a student by ID
func (s *StudentService) GetStudent(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("student ID must be positive")
	}

	return s.studentRepo.GetByID(ctx, id)
}

// CreateStudent registers a new student
func (s *StudentService) CreateStudent(ctx context.Context, name, email string) (*models.Student, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.NewValidationError("name cannot be empty")
	}
	if strings.TrimSpace(email) == "" {
		return nil, apperrors.NewValidationError("email cannot be empty")
	}

	return s.studentRepo.Create(ctx, name, email)
}

// DeleteStudent removes a student by ID. Returns ErrStudentNotFound
// when no row was removed.
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("student ID must be positive")
	}

	deleted, err := s.studentRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	if !deleted {
		return apperrors.ErrStudentNotFound
	}
	return nil
}
