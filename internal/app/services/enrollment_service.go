package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ecakir/edurecords/internal/app/models"
	"github.com/ecakir/edurecords/internal/pkg/apperrors"
)

// EnrollmentRepo is the accessor surface the enrollment service depends on
type EnrollmentRepo interface {
	GetAll(ctx context.Context) ([]*models.Enrollment, error)
	GetByID(ctx context.Context, id int64) (*models.Enrollment, error)
	Create(ctx context.Context, studentID, courseID int64, grade *string) (*models.Enrollment, error)
	UpdateGrade(ctx context.Context, id int64, grade *string) (*models.Enrollment, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// StudentGetter resolves a student reference by identifier
type StudentGetter interface {
	GetByID(ctx context.Context, id int64) (*models.Student, error)
}

// CourseGetter resolves a course reference by identifier
type CourseGetter interface {
	GetByID(ctx context.Context, id int64) (*models.Course, error)
}

// EnrollmentService handles enrollment-related operations, including
// the tolerant resolution of an enrollment's student and course
// references used by the GraphQL field resolvers.
type EnrollmentService struct {
	enrollmentRepo EnrollmentRepo
	studentRepo    StudentGetter
	courseRepo     CourseGetter
	logger         zerolog.Logger
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(enrollmentRepo EnrollmentRepo, studentRepo StudentGetter, courseRepo CourseGetter, lgr zerolog.Logger) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
		logger:         lgr,
	}
}

// ListEnrollments retrieves all enrollments
func (s *EnrollmentService) ListEnrollments(ctx context.Context) ([]*models.Enrollment, error) {
	enrollments, err := s.enrollmentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments: %w", err)
	}
	return enrollments, nil
}

// GetEnrollment retrieves an enrollment by ID
func (s *EnrollmentService) GetEnrollment(ctx context.Context, id int64) (*models.Enrollment, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("enrollment ID must be positive")
	}

	return s.enrollmentRepo.GetByID(ctx, id)
}

// CreateEnrollment enrolls a student in a course. A nonexistent student
// or course reference propagates as ErrForeignKeyViolation.
func (s *EnrollmentService) CreateEnrollment(ctx context.Context, studentID, courseID int64, grade *string) (*models.Enrollment, error) {
	if studentID <= 0 || courseID <= 0 {
		return nil, apperrors.NewValidationError("student ID and course ID must be positive")
	}

	return s.enrollmentRepo.Create(ctx, studentID, courseID, grade)
}

// UpdateEnrollment sets the grade of an enrollment
func (s *EnrollmentService) UpdateEnrollment(ctx context.Context, id int64, grade *string) (*models.Enrollment, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("enrollment ID must be positive")
	}

	return s.enrollmentRepo.UpdateGrade(ctx, id, grade)
}

// DeleteEnrollment removes an enrollment by ID. Returns
// ErrEnrollmentNotFound when no row was removed.
func (s *EnrollmentService) DeleteEnrollment(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("enrollment ID must be positive")
	}

	deleted, err := s.enrollmentRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("error deleting enrollment: %w", err)
	}
	if !deleted {
		return apperrors.ErrEnrollmentNotFound
	}
	return nil
}

// ResolveStudent resolves the student referenced by an enrollment.
// This is the tolerant policy: a failed lookup, whatever the cause,
// resolves to an absent value instead of failing the caller. The error
// is logged server-side only.
func (s *EnrollmentService) ResolveStudent(ctx context.Context, enrollment *models.Enrollment) *models.Student {
	student, err := s.studentRepo.GetByID(ctx, enrollment.StudentID)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Int64("enrollment_id", enrollment.ID).
			Int64("student_id", enrollment.StudentID).
			Msg("Failed to resolve student for enrollment")
		return nil
	}
	return student
}

// ResolveCourse resolves the course referenced by an enrollment, with
// the same tolerant policy as ResolveStudent.
func (s *EnrollmentService) ResolveCourse(ctx context.Context, enrollment *models.Enrollment) *models.Course {
	course, err := s.courseRepo.GetByID(ctx, enrollment.CourseID)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Int64("enrollment_id", enrollment.ID).
			Int64("course_id", enrollment.CourseID).
			Msg("Failed to resolve course for enrollment")
		return nil
	}
	return course
}
