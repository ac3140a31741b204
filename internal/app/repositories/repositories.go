package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances. The pool is passed
// in explicitly; no package-level connection state exists.
type Repositories struct {
	StudentRepository    *StudentRepository
	CourseRepository     *CourseRepository
	EnrollmentRepository *EnrollmentRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentRepository(db),
		CourseRepository:     NewCourseRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
	}
}
