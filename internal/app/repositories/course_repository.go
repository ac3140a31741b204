package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecakir/edurecords/internal/app/models"
	"github.com/ecakir/edurecords/internal/pkg/apperrors"
	"github.com/ecakir/edurecords/internal/pkg/dberrors"
)

// CourseRepository owns read/write access to the courses table and the
// enrollment join used by the composite view.
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// GetAll retrieves all courses
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	query := `
		SELECT course_id, title, credits, lecturer, created_at
		FROM courses
		ORDER BY course_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.Title,
			&course.Credits,
			&course.Lecturer,
			&course.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT course_id, title, credits, lecturer, created_at
		FROM courses
		WHERE course_id = $1
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Title,
		&course.Credits,
		&course.Lecturer,
		&course.CreatedAt,
	)

	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// Create inserts a new course. The returned row comes fresh from the
// store via RETURNING, so store-side defaults such as created_at are
// reflected rather than echoed input.
func (r *CourseRepository) Create(ctx context.Context, title string, credits int32, lecturer string) (*models.Course, error) {
	query := `
		INSERT INTO courses (title, credits, lecturer)
		VALUES ($1, $2, $3)
		RETURNING course_id, title, credits, lecturer, created_at
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, title, credits, lecturer).Scan(
		&course.ID,
		&course.Title,
		&course.Credits,
		&course.Lecturer,
		&course.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	return &course, nil
}

// Update replaces a course's mutable fields and returns the
// post-mutation row from the store.
func (r *CourseRepository) Update(ctx context.Context, id int64, title string, credits int32, lecturer string) (*models.Course, error) {
	query := `
		UPDATE courses
		SET title = $1, credits = $2, lecturer = $3
		WHERE course_id = $4
		RETURNING course_id, title, credits, lecturer, created_at
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, title, credits, lecturer, id).Scan(
		&course.ID,
		&course.Title,
		&course.Credits,
		&course.Lecturer,
		&course.CreatedAt,
	)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error updating course: %w", err)
	}

	return &course, nil
}

// Delete removes a course by ID. Returns true if a row was removed,
// false when the ID matched nothing. Enrollments referencing the course
// are removed by the ON DELETE CASCADE constraint.
func (r *CourseRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE course_id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("error deleting course: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}

// GetGradesByStudent retrieves the joined (title, credits, grade)
// tuples for every enrollment of the given student, ordered by course
// title so composite output is deterministic.
func (r *CourseRepository) GetGradesByStudent(ctx context.Context, studentID int64) ([]*models.CourseGrade, error) {
	query := `
		SELECT c.title, c.credits, e.grade
		FROM enrollments e
		JOIN courses c ON e.course_id = c.course_id
		WHERE e.student_id = $1
		ORDER BY c.title
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses by student: %w", err)
	}
	defer rows.Close()

	var grades []*models.CourseGrade
	for rows.Next() {
		var cg models.CourseGrade
		if err := rows.Scan(&cg.Title, &cg.Credits, &cg.Grade); err != nil {
			return nil, fmt.Errorf("error scanning course grade row: %w", err)
		}
		grades = append(grades, &cg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course grade rows: %w", err)
	}

	return grades, nil
}
