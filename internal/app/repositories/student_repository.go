package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecakir/edurecords/internal/app/models"
	"github.com/ecakir/edurecords/internal/pkg/apperrors"
	"github.com/ecakir/edurecords/internal/pkg/dberrors"
)

// StudentRepository owns read/write access to the students table
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// GetAll retrieves all students
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `
		SELECT student_id, name, email, created_at
		FROM students
		ORDER BY student_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.Name,
			&student.Email,
			&student.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// GetByID retrieves a student by ID. Returns apperrors.ErrStudentNotFound
// when no row matches; infrastructure failures are wrapped and never
// reported as not-found.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT student_id, name, email, created_at
		FROM students
		WHERE student_id = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.Name,
		&student.Email,
		&student.CreatedAt,
	)

	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// Create inserts a new student and returns the stored row, including
// the store-assigned identifier and creation timestamp.
func (r *StudentRepository) Create(ctx context.Context, name, email string) (*models.Student, error) {
	query := `
		INSERT INTO students (name, email)
		VALUES ($1, $2)
		RETURNING student_id, name, email, created_at
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, name, email).Scan(
		&student.ID,
		&student.Name,
		&student.Email,
		&student.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	return &student, nil
}

// Delete removes a student by ID. Returns true if a row was removed.
// Dependent enrollments are removed by the ON DELETE CASCADE constraint.
func (r *StudentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE student_id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("error deleting student: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}
