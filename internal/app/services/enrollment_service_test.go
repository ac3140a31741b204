package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ecakir/edurecords/internal/app/models"
	"github.com/ecakir/edurecords/internal/pkg/apperrors"
)

// --- mocks ---

type mockEnrollmentRepo struct {
	getAllFn      func(ctx context.Context) ([]*models.Enrollment, error)
	getByIDFn     func(ctx context.Context, id int64) (*models.Enrollment, error)
	createFn      func(ctx context.Context, studentID, courseID int64, grade *string) (*models.Enrollment, error)
	updateGradeFn func(ctx context.Context, id int64, grade *string) (*models.Enrollment, error)
	deleteFn      func(ctx context.Context, id int64) (bool, error)
}

func (m *mockEnrollmentRepo) GetAll(ctx context.Context) ([]*models.Enrollment, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

func (m *mockEnrollmentRepo) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, apperrors.ErrEnrollmentNotFound
}

func (m *mockEnrollmentRepo) Create(ctx context.Context, studentID, courseID int64, grade *string) (*models.Enrollment, error) {
	if m.createFn != nil {
		return m.createFn(ctx, studentID, courseID, grade)
	}
	return &models.Enrollment{ID: 1, StudentID: studentID, CourseID: courseID, Grade: grade}, nil
}

func (m *mockEnrollmentRepo) UpdateGrade(ctx context.Context, id int64, grade *string) (*models.Enrollment, error) {
	if m.updateGradeFn != nil {
		return m.updateGradeFn(ctx, id, grade)
	}
	return &models.Enrollment{ID: id, Grade: grade}, nil
}

func (m *mockEnrollmentRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return false, nil
}

func newEnrollmentService(enr *mockEnrollmentRepo, students *mockStudentRepo, courses *mockCourseRepo) *EnrollmentService {
	return NewEnrollmentService(enr, students, courses, zerolog.Nop())
}

// --- tests ---

func TestEnrollmentService_CreateEnrollment_ForeignKeyViolation(t *testing.T) {
	repo := &mockEnrollmentRepo{
		createFn: func(ctx context.Context, studentID, courseID int64, grade *string) (*models.Enrollment, error) {
			return nil, apperrors.ErrForeignKeyViolation
		},
	}

	svc := newEnrollmentService(repo, &mockStudentRepo{}, &mockCourseRepo{})

	_, err := svc.CreateEnrollment(context.Background(), 999, 1, nil)
	if !errors.Is(err, apperrors.ErrForeignKeyViolation) {
		t.Fatalf("expected ErrForeignKeyViolation for missing reference, got %v", err)
	}
}

func TestEnrollmentService_CreateEnrollment_UngradedByDefault(t *testing.T) {
	var gotGrade *string
	repo := &mockEnrollmentRepo{
		createFn: func(ctx context.Context, studentID, courseID int64, grade *string) (*models.Enrollment, error) {
			gotGrade = grade
			return &models.Enrollment{ID: 1, StudentID: studentID, CourseID: courseID, Grade: grade}, nil
		},
	}

	svc := newEnrollmentService(repo, &mockStudentRepo{}, &mockCourseRepo{})

	enrollment, err := svc.CreateEnrollment(context.Background(), 1, 2, nil)
	if err != nil {
		t.Fatalf("CreateEnrollment returned error: %v", err)
	}
	if gotGrade != nil || enrollment.Grade != nil {
		t.Error("expected nil grade to pass through unchanged")
	}
}

func TestEnrollmentService_UpdateEnrollment_SetsGrade(t *testing.T) {
	grade := "A"
	repo := &mockEnrollmentRepo{
		updateGradeFn: func(ctx context.Context, id int64, g *string) (*models.Enrollment, error) {
			return &models.Enrollment{ID: id, StudentID: 1, CourseID: 2, Grade: g}, nil
		},
	}

	svc := newEnrollmentService(repo, &mockStudentRepo{}, &mockCourseRepo{})

	enrollment, err := svc.UpdateEnrollment(context.Background(), 3, &grade)
	if err != nil {
		t.Fatalf("UpdateEnrollment returned error: %v", err)
	}
	if enrollment.Grade == nil || *enrollment.Grade != "A" {
		t.Errorf("expected grade A, got %v", enrollment.Grade)
	}
}

func TestEnrollmentService_DeleteEnrollment_NotFound(t *testing.T) {
	repo := &mockEnrollmentRepo{
		deleteFn: func(ctx context.Context, id int64) (bool, error) {
			return false, nil
		},
	}

	svc := newEnrollmentService(repo, &mockStudentRepo{}, &mockCourseRepo{})

	err := svc.DeleteEnrollment(context.Background(), 44)
	if !errors.Is(err, apperrors.ErrEnrollmentNotFound) {
		t.Fatalf("expected ErrEnrollmentNotFound when no row removed, got %v", err)
	}
}

// A failed reference lookup resolves to nil instead of an error; the
// caller renders an absent value.
func TestEnrollmentService_ResolveStudent_Tolerant(t *testing.T) {
	students := &mockStudentRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.Student, error) {
			return nil, errors.New("connection refused")
		},
	}

	svc := newEnrollmentService(&mockEnrollmentRepo{}, students, &mockCourseRepo{})

	student := svc.ResolveStudent(context.Background(), &models.Enrollment{ID: 1, StudentID: 5})
	if student != nil {
		t.Fatalf("expected nil student on lookup failure, got %+v", student)
	}
}

func TestEnrollmentService_ResolveStudent_Found(t *testing.T) {
	students := &mockStudentRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.Student, error) {
			return &models.Student{ID: id, Name: "Elif"}, nil
		},
	}

	svc := newEnrollmentService(&mockEnrollmentRepo{}, students, &mockCourseRepo{})

	student := svc.ResolveStudent(context.Background(), &models.Enrollment{ID: 1, StudentID: 5})
	if student == nil || student.ID != 5 {
		t.Fatalf("expected student 5, got %+v", student)
	}
}

func TestEnrollmentService_ResolveCourse_Tolerant(t *testing.T) {
	courses := &mockCourseRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.Course, error) {
			return nil, apperrors.ErrCourseNotFound
		},
	}

	svc := newEnrollmentService(&mockEnrollmentRepo{}, &mockStudentRepo{}, courses)

	course := svc.ResolveCourse(context.Background(), &models.Enrollment{ID: 1, CourseID: 9})
	if course != nil {
		t.Fatalf("expected nil course on lookup failure, got %+v", course)
	}
}
