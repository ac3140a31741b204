package services

// Services defined in this package:
// - StudentService: read/write operations for students
// - CourseService: CRUD for courses plus the enrollment join by student
// - EnrollmentService: CRUD for enrollments and tolerant per-field
//   resolution of their student/course references
// - CompositeService: the composite resolver producing one student plus
//   their enrolled courses, shared by the REST and GraphQL surfaces
