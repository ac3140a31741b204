package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ecakir/edurecords/internal/app/controllers"
	"github.com/ecakir/edurecords/internal/metrics"
)

// SetupStudentRoutes configures the student service's routes
func SetupStudentRoutes(router *gin.Engine, studentController *controllers.StudentController) {
	users := router.Group("/users")
	{
		users.GET("", studentController.ListStudents)
		users.GET("/:id", studentController.GetStudent)
		users.POST("", studentController.CreateStudent)
		users.DELETE("/:id", studentController.DeleteStudent)
	}

	router.GET("/health", healthHandler)
}

// SetupCourseRoutes configures the course service's routes, including
// the enrollment endpoints and the by-user integration endpoint.
func SetupCourseRoutes(
	router *gin.Engine,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
) {
	courses := router.Group("/courses")
	{
		courses.GET("", courseController.ListCourses)
		// Registered before /:id so "by-user" is not parsed as a course ID
		courses.GET("/by-user/:userId", courseController.ListCoursesByStudent)
		courses.GET("/:id", courseController.GetCourse)
		courses.POST("", courseController.CreateCourse)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
	}

	enrollments := router.Group("/enrollments")
	{
		enrollments.GET("", enrollmentController.ListEnrollments)
		enrollments.GET("/:id", enrollmentController.GetEnrollment)
		enrollments.POST("", enrollmentController.CreateEnrollment)
		enrollments.PUT("/:id", enrollmentController.UpdateEnrollment)
		enrollments.DELETE("/:id", enrollmentController.DeleteEnrollment)
	}

	router.GET("/health", healthHandler)
}

// SetupGatewayRoutes configures the API gateway's routes
func SetupGatewayRoutes(router *gin.Engine, gatewayController *controllers.GatewayController, registry *prometheus.Registry) {
	gw := router.Group("/gateway")
	{
		gw.GET("/users", gatewayController.GetUsers)
		gw.GET("/courses", gatewayController.GetCourses)
		gw.GET("/user-courses/:userId", gatewayController.GetUserCourses)
	}

	if registry != nil {
		router.GET("/metrics", gin.WrapH(metrics.Handler(registry)))
	}
	router.GET("/health", healthHandler)
}

// SetupGraphQLRoutes configures the GraphQL layer's routes
func SetupGraphQLRoutes(router *gin.Engine, schema *graphql.Schema) {
	router.POST("/graphql", gin.WrapH(&relay.Handler{Schema: schema}))
	router.GET("/health", healthHandler)
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
