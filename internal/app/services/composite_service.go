package services

import (
	"context"
	"fmt"

	"github.com/ecakir/edurecords/internal/app/models"
	"github.com/ecakir/edurecords/internal/pkg/apperrors"
)

// GradesByStudentLister retrieves the joined course/grade tuples for a
// student's enrollments.
type GradesByStudentLister interface {
	GetGradesByStudent(ctx context.Context, studentID int64) ([]*models.CourseGrade, error)
}

// CompositeService produces the composite student-with-courses view.
// Both the course service's by-user REST path and the GraphQL
// studentCourses query go through this one resolver so the two
// protocols cannot drift apart.
type CompositeService struct {
	studentRepo StudentGetter
	courseRepo  GradesByStudentLister
}

// NewCompositeService creates a new composite service instance
func NewCompositeService(studentRepo StudentGetter, courseRepo GradesByStudentLister) *CompositeService {
	return &CompositeService{
		studentRepo: studentRepo,
		courseRepo:  courseRepo,
	}
}

// ResolveStudentCourses assembles the composite view for one student.
// This is the strict policy: a missing student fails the whole
// operation with ErrStudentNotFound before the course fetch is
// attempted, and a failure of the course fetch fails the whole
// composite rather than returning a partial result.
//
// The two reads are not wrapped in a transaction; a concurrent deletion
// between them can yield a view referencing just-deleted rows.
func (s *CompositeService) ResolveStudentCourses(ctx context.Context, studentID int64) (*models.StudentCourses, error) {
	if studentID <= 0 {
		return nil, apperrors.NewValidationError("student ID must be positive")
	}

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	courses, err := s.courseRepo.GetGradesByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error resolving courses for student %d: %w", studentID, err)
	}

	if courses == nil {
		courses = []*models.CourseGrade{}
	}

	return &models.StudentCourses{
		Student: student,
		Courses: courses,
	}, nil
}
