package graph

import (
	"context"
	"strconv"
	"time"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/ecakir/edurecords/internal/app/models"
	"github.com/ecakir/edurecords/internal/pkg/apperrors"
)

// StudentReader is the student surface the resolvers depend on
type StudentReader interface {
	ListStudents(ctx context.Context) ([]*models.Student, error)
	GetStudent(ctx context.Context, id int64) (*models.Student, error)
}

// CourseMutator is the course surface the resolvers depend on
type CourseMutator interface {
	ListCourses(ctx context.Context) ([]*models.Course, error)
	GetCourse(ctx context.Context, id int64) (*models.Course, error)
	CreateCourse(ctx context.Context, title string, credits int32, lecturer string) (*models.Course, error)
	UpdateCourse(ctx context.Context, id int64, title string, credits int32, lecturer string) (*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) (bool, error)
}

// EnrollmentMutator is the enrollment surface the resolvers depend on.
// ResolveStudent and ResolveCourse carry the tolerant policy: a missing
// reference yields nil, never an error.
type EnrollmentMutator interface {
	ListEnrollments(ctx context.Context) ([]*models.Enrollment, error)
	GetEnrollment(ctx context.Context, id int64) (*models.Enrollment, error)
	CreateEnrollment(ctx context.Context, studentID, courseID int64, grade *string) (*models.Enrollment, error)
	UpdateEnrollment(ctx context.Context, id int64, grade *string) (*models.Enrollment, error)
	DeleteEnrollment(ctx context.Context, id int64) error
	ResolveStudent(ctx context.Context, enrollment *models.Enrollment) *models.Student
	ResolveCourse(ctx context.Context, enrollment *models.Enrollment) *models.Course
}

// CompositeResolver is the composite surface the resolvers depend on
type CompositeResolver interface {
	ResolveStudentCourses(ctx context.Context, studentID int64) (*models.StudentCourses, error)
}

// Resolver is the root resolver. It delegates to the same services the
// REST controllers use.
type Resolver struct {
	students    StudentReader
	courses     CourseMutator
	enrollments EnrollmentMutator
	composite   CompositeResolver
}

// NewResolver creates the root resolver with its service dependencies
func NewResolver(students StudentReader, courses CourseMutator, enrollments EnrollmentMutator, composite CompositeResolver) *Resolver {
	return &Resolver{
		students:    students,
		courses:     courses,
		enrollments: enrollments,
		composite:   composite,
	}
}

func parseID(id graphql.ID) (int64, error) {
	n, err := strconv.ParseInt(string(id), 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationError("invalid identifier")
	}
	return n, nil
}

func toID(n int64) graphql.ID {
	return graphql.ID(strconv.FormatInt(n, 10))
}

// --- Query ---

// Students resolves the students query
func (r *Resolver) Students(ctx context.Context) ([]*studentResolver, error) {
	students, err := r.students.ListStudents(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*studentResolver, 0, len(students))
	for _, s := range students {
		out = append(out, &studentResolver{s})
	}
	return out, nil
}

// Student resolves the student query
func (r *Resolver) Student(ctx context.Context, args struct{ ID graphql.ID }) (*studentResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}

	student, err := r.students.GetStudent(ctx, id)
	if err != nil {
		return nil, err
	}
	return &studentResolver{student}, nil
}

// Courses resolves the courses query
func (r *Resolver) Courses(ctx context.Context) ([]*courseResolver, error) {
	courses, err := r.courses.ListCourses(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*courseResolver, 0, len(courses))
	for _, c := range courses {
		out = append(out, &courseResolver{c})
	}
	return out, nil
}

// Course resolves the course query
func (r *Resolver) Course(ctx context.Context, args struct{ ID graphql.ID }) (*courseResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}

	course, err := r.courses.GetCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	return &courseResolver{course}, nil
}

// Enrollments resolves the enrollments query
func (r *Resolver) Enrollments(ctx context.Context) ([]*enrollmentResolver, error) {
	enrollments, err := r.enrollments.ListEnrollments(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*enrollmentResolver, 0, len(enrollments))
	for _, e := range enrollments {
		out = append(out, &enrollmentResolver{enrollment: e, svc: r.enrollments})
	}
	return out, nil
}

// Enrollment resolves the enrollment query
func (r *Resolver) Enrollment(ctx context.Context, args struct{ ID graphql.ID }) (*enrollmentResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}

	enrollment, err := r.enrollments.GetEnrollment(ctx, id)
	if err != nil {
		return nil, err
	}
	return &enrollmentResolver{enrollment: enrollment, svc: r.enrollments}, nil
}

// StudentCourses resolves the composite query. Strict policy: a
// missing student fails the whole query.
func (r *Resolver) StudentCourses(ctx context.Context, args struct{ StudentID graphql.ID }) (*studentCoursesResolver, error) {
	id, err := parseID(args.StudentID)
	if err != nil {
		return nil, err
	}

	view, err := r.composite.ResolveStudentCourses(ctx, id)
	if err != nil {
		return nil, err
	}
	return &studentCoursesResolver{view}, nil
}

// --- Mutation ---

// CourseInput mirrors the CourseInput GraphQL input object
type CourseInput struct {
	Title    string
	Credits  int32
	Lecturer string
}

// EnrollmentInput mirrors the EnrollmentInput GraphQL input object
type EnrollmentInput struct {
	StudentID graphql.ID
	CourseID  graphql.ID
	Grade     *string
}

// GradeInput mirrors the GradeInput GraphQL input object
type GradeInput struct {
	Grade *string
}

// CreateCourse resolves the createCourse mutation
func (r *Resolver) CreateCourse(ctx context.Context, args struct{ Input CourseInput }) (*courseResolver, error) {
	course, err := r.courses.CreateCourse(ctx, args.Input.Title, args.Input.Credits, args.Input.Lecturer)
	if err != nil {
		return nil, err
	}
	return &courseResolver{course}, nil
}

// UpdateCourse resolves the updateCourse mutation
func (r *Resolver) UpdateCourse(ctx context.Context, args struct {
	ID    graphql.ID
	Input CourseInput
}) (*courseResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}

	course, err := r.courses.UpdateCourse(ctx, id, args.Input.Title, args.Input.Credits, args.Input.Lecturer)
	if err != nil {
		return nil, err
	}
	return &courseResolver{course}, nil
}

// DeleteCourse resolves the deleteCourse mutation. Deleting a
// nonexistent course raises a field error rather than returning false.
func (r *Resolver) DeleteCourse(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return false, err
	}

	deleted, err := r.courses.DeleteCourse(ctx, id)
	if err != nil {
		return false, err
	}
	if !deleted {
		return false, apperrors.ErrCourseNotFound
	}
	return true, nil
}

// CreateEnrollment resolves the createEnrollment mutation
func (r *Resolver) CreateEnrollment(ctx context.Context, args struct{ Input EnrollmentInput }) (*enrollmentResolver, error) {
	studentID, err := parseID(args.Input.StudentID)
	if err != nil {
		return nil, err
	}
	courseID, err := parseID(args.Input.CourseID)
	if err != nil {
		return nil, err
	}

	enrollment, err := r.enrollments.CreateEnrollment(ctx, studentID, courseID, args.Input.Grade)
	if err != nil {
		return nil, err
	}
	return &enrollmentResolver{enrollment: enrollment, svc: r.enrollments}, nil
}

// UpdateEnrollment resolves the updateEnrollment mutation
func (r *Resolver) UpdateEnrollment(ctx context.Context, args struct {
	ID    graphql.ID
	Input GradeInput
}) (*enrollmentResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}

	enrollment, err := r.enrollments.UpdateEnrollment(ctx, id, args.Input.Grade)
	if err != nil {
		return nil, err
	}
	return &enrollmentResolver{enrollment: enrollment, svc: r.enrollments}, nil
}

// DeleteEnrollment resolves the deleteEnrollment mutation
func (r *Resolver) DeleteEnrollment(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return false, err
	}

	if err := r.enrollments.DeleteEnrollment(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

// --- Type resolvers ---

type studentResolver struct {
	student *models.Student
}

func (r *studentResolver) ID() graphql.ID {
	return toID(r.student.ID)
}

func (r *studentResolver) Name() string {
	return r.student.Name
}

func (r *studentResolver) Email() string {
	return r.student.Email
}

func (r *studentResolver) CreatedAt() string {
	return r.student.CreatedAt.Format(time.RFC3339)
}

type courseResolver struct {
	course *models.Course
}

func (r *courseResolver) ID() graphql.ID {
	return toID(r.course.ID)
}

func (r *courseResolver) Title() string {
	return r.course.Title
}

func (r *courseResolver) Credits() int32 {
	return r.course.Credits
}

func (r *courseResolver) Lecturer() string {
	return r.course.Lecturer
}

func (r *courseResolver) CreatedAt() string {
	return r.course.CreatedAt.Format(time.RFC3339)
}

type enrollmentResolver struct {
	enrollment *models.Enrollment
	svc        EnrollmentMutator
}

func (r *enrollmentResolver) ID() graphql.ID {
	return toID(r.enrollment.ID)
}

func (r *enrollmentResolver) StudentID() graphql.ID {
	return toID(r.enrollment.StudentID)
}

func (r *enrollmentResolver) CourseID() graphql.ID {
	return toID(r.enrollment.CourseID)
}

func (r *enrollmentResolver) Grade() *string {
	return r.enrollment.Grade
}

func (r *enrollmentResolver) CreatedAt() string {
	return r.enrollment.CreatedAt.Format(time.RFC3339)
}

// Student resolves the enrollment's student reference lazily, per
// returned row. Tolerant policy: a failed lookup resolves to null
// instead of aborting the response.
func (r *enrollmentResolver) Student(ctx context.Context) *studentResolver {
	student := r.svc.ResolveStudent(ctx, r.enrollment)
	if student == nil {
		return nil
	}
	return &studentResolver{student}
}

// Course resolves the enrollment's course reference with the same
// tolerant policy as Student.
func (r *enrollmentResolver) Course(ctx context.Context) *courseResolver {
	course := r.svc.ResolveCourse(ctx, r.enrollment)
	if course == nil {
		return nil
	}
	return &courseResolver{course}
}

type studentCoursesResolver struct {
	view *models.StudentCourses
}

func (r *studentCoursesResolver) Student() *studentResolver {
	return &studentResolver{r.view.Student}
}

func (r *studentCoursesResolver) Courses() []*courseGradeResolver {
	out := make([]*courseGradeResolver, 0, len(r.view.Courses))
	for _, cg := range r.view.Courses {
		out = append(out, &courseGradeResolver{cg})
	}
	return out
}

type courseGradeResolver struct {
	grade *models.CourseGrade
}

func (r *courseGradeResolver) Title() string {
	return r.grade.Title
}

func (r *courseGradeResolver) Credits() int32 {
	return r.grade.Credits
}

func (r *courseGradeResolver) Grade() *string {
	return r.grade.Grade
}
