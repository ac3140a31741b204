package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecakir/edurecords/internal/app/models"
	"github.com/ecakir/edurecords/internal/pkg/apperrors"
	"github.com/ecakir/edurecords/internal/pkg/dberrors"
)

// EnrollmentRepository owns read/write access to the enrollments table
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

// GetAll retrieves all enrollments
func (r *EnrollmentRepository) GetAll(ctx context.Context) ([]*models.Enrollment, error) {
	query := `
		SELECT enrollment_id, student_id, course_id, grade, created_at
		FROM enrollments
		ORDER BY enrollment_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		var enrollment models.Enrollment
		if err := rows.Scan(
			&enrollment.ID,
			&enrollment.StudentID,
			&enrollment.CourseID,
			&enrollment.Grade,
			&enrollment.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning enrollment row: %w", err)
		}
		enrollments = append(enrollments, &enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating enrollment rows: %w", err)
	}

	return enrollments, nil
}

// GetByID retrieves an enrollment by ID
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	query := `
		SELECT enrollment_id, student_id, course_id, grade, created_at
		FROM enrollments
		WHERE enrollment_id = $1
	`

	var enrollment models.Enrollment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&enrollment.ID,
		&enrollment.StudentID,
		&enrollment.CourseID,
		&enrollment.Grade,
		&enrollment.CreatedAt,
	)

	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}

	return &enrollment, nil
}

// Create inserts a new enrollment. A foreign key violation on either
// reference surfaces as apperrors.ErrForeignKeyViolation so callers can
// report "Student or Course does not exist" instead of a generic
// failure. No row is persisted in that case.
func (r *EnrollmentRepository) Create(ctx context.Context, studentID, courseID int64, grade *string) (*models.Enrollment, error) {
	query := `
		INSERT INTO enrollments (student_id, course_id, grade)
		VALUES ($1, $2, $3)
		RETURNING enrollment_id, student_id, course_id, grade, created_at
	`

	var enrollment models.Enrollment
	err := r.db.QueryRow(ctx, query, studentID, courseID, grade).Scan(
		&enrollment.ID,
		&enrollment.StudentID,
		&enrollment.CourseID,
		&enrollment.Grade,
		&enrollment.CreatedAt,
	)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("error creating enrollment: %w", err)
	}

	return &enrollment, nil
}

// UpdateGrade sets the grade of an enrollment. Only the grade is
// mutable after creation.
func (r *EnrollmentRepository) UpdateGrade(ctx context.Context, id int64, grade *string) (*models.Enrollment, error) {
	query := `
		UPDATE enrollments
		SET grade = $1
		WHERE enrollment_id = $2
		RETURNING enrollment_id, student_id, course_id, grade, created_at
	`

	var enrollment models.Enrollment
	err := r.db.QueryRow(ctx, query, grade, id).Scan(
		&enrollment.ID,
		&enrollment.StudentID,
		&enrollment.CourseID,
		&enrollment.Grade,
		&enrollment.CreatedAt,
	)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error updating enrollment: %w", err)
	}

	return &enrollment, nil
}

// Delete removes an enrollment by ID. Returns true if a row was removed.
func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM enrollments WHERE enrollment_id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("error deleting enrollment: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}
