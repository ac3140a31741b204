package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// CreateDefaultData inserts a small set of demo students, courses and
// enrollments so the composite endpoints return something meaningful on
// a fresh database. Idempotent: existing rows are left untouched.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (students/courses/enrollments)...")

	var finalErr error

	students := []struct {
		name  string
		email string
	}{
		{"Ahmet Yilmaz", "ahmet.yilmaz@example.edu"},
		{"Maria Santos", "maria.santos@example.edu"},
		{"Budi Pratama", "budi.pratama@example.edu"},
	}

	studentIDs := make(map[string]int64)
	for _, s := range students {
		id, err := upsertStudent(ctx, dbPool, s.name, s.email)
		if err != nil {
			lgr.Error().Err(err).Str("email", s.email).Msg("Error seeding student")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		studentIDs[s.email] = id
	}

	courses := []struct {
		title    string
		credits  int32
		lecturer string
	}{
		{"Algorithms", 4, "Dr. A. Karatas"},
		{"Databases", 3, "Dr. L. Hartono"},
		{"Operating Systems", 4, "Prof. N. Wijaya"},
	}

	courseIDs := make(map[string]int64)
	for _, c := range courses {
		id, err := upsertCourse(ctx, dbPool, c.title, c.credits, c.lecturer)
		if err != nil {
			lgr.Error().Err(err).Str("title", c.title).Msg("Error seeding course")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		courseIDs[c.title] = id
	}

	gradeA := "A"
	enrollments := []struct {
		studentEmail string
		courseTitle  string
		grade        *string
	}{
		{"ahmet.yilmaz@example.edu", "Algorithms", &gradeA},
		{"ahmet.yilmaz@example.edu", "Databases", nil},
		{"maria.santos@example.edu", "Operating Systems", nil},
	}

	for _, e := range enrollments {
		studentID, ok := studentIDs[e.studentEmail]
		if !ok {
			continue
		}
		courseID, ok := courseIDs[e.courseTitle]
		if !ok {
			continue
		}
		if err := upsertEnrollment(ctx, dbPool, studentID, courseID, e.grade); err != nil {
			lgr.Error().Err(err).
				Str("student", e.studentEmail).
				Str("course", e.courseTitle).
				Msg("Error seeding enrollment")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}

func upsertStudent(ctx context.Context, dbPool *pgxpool.Pool, name, email string) (int64, error) {
	var id int64
	err := dbPool.QueryRow(ctx,
		`SELECT student_id FROM students WHERE email = $1`, email).Scan(&id)
	if err == nil {
		return id, nil
	}

	err = dbPool.QueryRow(ctx,
		`INSERT INTO students (name, email) VALUES ($1, $2) RETURNING student_id`,
		name, email).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert student %s: %w", email, err)
	}
	return id, nil
}

func upsertCourse(ctx context.Context, dbPool *pgxpool.Pool, title string, credits int32, lecturer string) (int64, error) {
	var id int64
	err := dbPool.QueryRow(ctx,
		`SELECT course_id FROM courses WHERE title = $1`, title).Scan(&id)
	if err == nil {
		return id, nil
	}

	err = dbPool.QueryRow(ctx,
		`INSERT INTO courses (title, credits, lecturer) VALUES ($1, $2, $3) RETURNING course_id`,
		title, credits, lecturer).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert course %s: %w", title, err)
	}
	return id, nil
}

func upsertEnrollment(ctx context.Context, dbPool *pgxpool.Pool, studentID, courseID int64, grade *string) error {
	var exists bool
	err := dbPool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM enrollments WHERE student_id = $1 AND course_id = $2)`,
		studentID, courseID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check enrollment existence: %w", err)
	}
	if exists {
		return nil
	}

	_, err = dbPool.Exec(ctx,
		`INSERT INTO enrollments (student_id, course_id, grade) VALUES ($1, $2, $3)`,
		studentID, courseID, grade)
	if err != nil {
		return fmt.Errorf("failed to insert enrollment: %w", err)
	}
	return nil
}
