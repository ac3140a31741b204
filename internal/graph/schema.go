package graph

import graphql "github.com/graph-gophers/graphql-go"

// Schema is the GraphQL SDL for the education-records graph. It exposes
// the same entities and composite view as the REST services; the
// composite studentCourses query goes through the same resolver as the
// REST path.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Query {
		students: [Student!]!
		student(id: ID!): Student!
		courses: [Course!]!
		course(id: ID!): Course!
		enrollments: [Enrollment!]!
		enrollment(id: ID!): Enrollment!
		studentCourses(studentId: ID!): StudentCourses!
	}

	type Mutation {
		createCourse(input: CourseInput!): Course!
		updateCourse(id: ID!, input: CourseInput!): Course!
		deleteCourse(id: ID!): Boolean!
		createEnrollment(input: EnrollmentInput!): Enrollment!
		updateEnrollment(id: ID!, input: GradeInput!): Enrollment!
		deleteEnrollment(id: ID!): Boolean!
	}

	type Student {
		id: ID!
		name: String!
		email: String!
		createdAt: String!
	}

	type Course {
		id: ID!
		title: String!
		credits: Int!
		lecturer: String!
		createdAt: String!
	}

	type Enrollment {
		id: ID!
		studentId: ID!
		courseId: ID!
		grade: String
		createdAt: String!
		student: Student
		course: Course
	}

	type CourseGrade {
		title: String!
		credits: Int!
		grade: String
	}

	type StudentCourses {
		student: Student!
		courses: [CourseGrade!]!
	}

	input CourseInput {
		title: String!
		credits: Int!
		lecturer: String!
	}

	input EnrollmentInput {
		studentId: ID!
		courseId: ID!
		grade: String
	}

	input GradeInput {
		grade: String
	}
`

// NewSchema parses the SDL against the root resolver.
func NewSchema(resolver *Resolver) (*graphql.Schema, error) {
	return graphql.ParseSchema(Schema, resolver)
}
