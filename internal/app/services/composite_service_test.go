package services

import (
	"context"
	"errors"
	"testing"

	"github.com/ecakir/edurecords/internal/app/models"
	"github.com/ecakir/edurecords/internal/pkg/apperrors"
)

func TestCompositeService_ResolveStudentCourses(t *testing.T) {
	gradeA := "A"
	students := &mockStudentRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.Student, error) {
			return &models.Student{ID: id, Name: "Elif", Email: "elif@example.com"}, nil
		},
	}
	courses := &mockCourseRepo{
		getGradesByStudentFn: func(ctx context.Context, studentID int64) ([]*models.CourseGrade, error) {
			return []*models.CourseGrade{
				{Title: "Algorithms", Credits: 4, Grade: &gradeA},
				{Title: "Databases", Credits: 3, Grade: nil},
			}, nil
		},
	}

	svc := NewCompositeService(students, courses)

	view, err := svc.ResolveStudentCourses(context.Background(), 1)
	if err != nil {
		t.Fatalf("ResolveStudentCourses returned error: %v", err)
	}
	if view.Student.Name != "Elif" {
		t.Errorf("expected student Elif, got %s", view.Student.Name)
	}
	if len(view.Courses) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(view.Courses))
	}
	// Rows arrive ordered by course title and the order is preserved
	if view.Courses[0].Title != "Algorithms" || view.Courses[1].Title != "Databases" {
		t.Errorf("course order not preserved: %s, %s", view.Courses[0].Title, view.Courses[1].Title)
	}
	if view.Courses[1].Grade != nil {
		t.Error("expected ungraded enrollment to carry nil grade")
	}
}

// A missing student fails the whole composite before the course fetch
// is attempted.
func TestCompositeService_ResolveStudentCourses_MissingStudent(t *testing.T) {
	courseFetchCalled := false
	students := &mockStudentRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.Student, error) {
			return nil, apperrors.ErrStudentNotFound
		},
	}
	courses := &mockCourseRepo{
		getGradesByStudentFn: func(ctx context.Context, studentID int64) ([]*models.CourseGrade, error) {
			courseFetchCalled = true
			return nil, nil
		},
	}

	svc := NewCompositeService(students, courses)

	_, err := svc.ResolveStudentCourses(context.Background(), 42)
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
	if courseFetchCalled {
		t.Error("course fetch should not run when the student is missing")
	}
}

// A course fetch failure fails the whole composite; no partial view.
func TestCompositeService_ResolveStudentCourses_CourseFetchFails(t *testing.T) {
	fetchErr := errors.New("connection reset")
	students := &mockStudentRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.Student, error) {
			return &models.Student{ID: id, Name: "Elif"}, nil
		},
	}
	courses := &mockCourseRepo{
		getGradesByStudentFn: func(ctx context.Context, studentID int64) ([]*models.CourseGrade, error) {
			return nil, fetchErr
		},
	}

	svc := NewCompositeService(students, courses)

	view, err := svc.ResolveStudentCourses(context.Background(), 1)
	if !errors.Is(err, fetchErr) {
		t.Fatalf("expected wrapped fetch error, got %v", err)
	}
	if view != nil {
		t.Error("expected no partial view on course fetch failure")
	}
}

func TestCompositeService_ResolveStudentCourses_NoEnrollments(t *testing.T) {
	students := &mockStudentRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.Student, error) {
			return &models.Student{ID: id, Name: "Mert"}, nil
		},
	}
	courses := &mockCourseRepo{
		getGradesByStudentFn: func(ctx context.Context, studentID int64) ([]*models.CourseGrade, error) {
			return nil, nil
		},
	}

	svc := NewCompositeService(students, courses)

	view, err := svc.ResolveStudentCourses(context.Background(), 2)
	if err != nil {
		t.Fatalf("ResolveStudentCourses returned error: %v", err)
	}
	if view.Courses == nil {
		t.Fatal("expected non-nil empty course list")
	}
	if len(view.Courses) != 0 {
		t.Errorf("expected empty course list, got %d rows", len(view.Courses))
	}
}

func TestCompositeService_ResolveStudentCourses_InvalidID(t *testing.T) {
	svc := NewCompositeService(&mockStudentRepo{}, &mockCourseRepo{})

	_, err := svc.ResolveStudentCourses(context.Background(), -1)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error for non-positive ID, got %v", err)
	}
}
