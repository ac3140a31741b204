package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ecakir/edurecords/internal/app/models"
	"github.com/ecakir/edurecords/internal/pkg/apperrors"
)

// CourseRepo is the accessor surface the course service depends on
type CourseRepo interface {
	GetAll(ctx context.Context) ([]*models.Course, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	Create(ctx context.Context, title string, credits int32, lecturer string) (*models.Course, error)
	Update(ctx context.Context, id int64, title string, credits int32, lecturer string) (*models.Course, error)
	Delete(ctx context.Context, id int64) (bool, error)
	GetGradesByStudent(ctx context.Context, studentID int64) ([]*models.CourseGrade, error)
}

// CourseService handles course-related operations
type CourseService struct {
	courseRepo CourseRepo
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo CourseRepo) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
	}
}

// validateCourse checks course fields before a write. Credits must be a
// positive integer.
func (s *CourseService) validateCourse(title string, credits int32, lecturer string) error {
	if strings.TrimSpace(title) == "" {
		return apperrors.NewValidationError("title cannot be empty")
	}
	if credits <= 0 {
		return apperrors.NewValidationError("credits must be a positive integer")
	}
	if strings.TrimSpace(lecturer) == "" {
		return apperrors.NewValidationError("lecturer cannot be empty")
	}
	return nil
}

// ListCourses retrieves all courses
func (s *CourseService) ListCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	return courses, nil
}

// GetCourse retrieves a course by ID
func (s *CourseService) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("course ID must be positive")
	}

	return s.courseRepo.GetByID(ctx, id)
}

// CreateCourse creates a new course and returns the stored row
func (s *CourseService) CreateCourse(ctx context.Context, title string, credits int32, lecturer string) (*models.Course, error) {
	if err := s.validateCourse(title, credits, lecturer); err != nil {
		return nil, err
	}

	return s.courseRepo.Create(ctx, title, credits, lecturer)
}

// UpdateCourse updates an existing course and returns the post-mutation row
func (s *CourseService) UpdateCourse(ctx context.Context, id int64, title string, credits int32, lecturer string) (*models.Course, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("course ID must be positive")
	}
	if err := s.validateCourse(title, credits, lecturer); err != nil {
		return nil, err
	}

	return s.courseRepo.Update(ctx, id, title, credits, lecturer)
}

// DeleteCourse removes a course by ID. Returns true if a row was
// removed, false when the ID matched nothing.
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, apperrors.NewValidationError("course ID must be positive")
	}

	return s.courseRepo.Delete(ctx, id)
}

// ListCoursesByStudent retrieves the joined (title, credits, grade)
// tuples for a student's enrollments, ordered by course title. An
// unknown student yields an empty list here; existence checking is the
// composite resolver's concern.
func (s *CourseService) ListCoursesByStudent(ctx context.Context, studentID int64) ([]*models.CourseGrade, error) {
	if studentID <= 0 {
		return nil, apperrors.NewValidationError("student ID must be positive")
	}

	grades, err := s.courseRepo.GetGradesByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing courses by student: %w", err)
	}
	return grades, nil
}
