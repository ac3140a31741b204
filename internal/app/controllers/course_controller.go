package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ecakir/edurecords/internal/app/models"
	"github.com/ecakir/edurecords/internal/app/models/dto"
	"github.com/ecakir/edurecords/internal/middleware"
)

// CourseService is the service surface the course controller depends on
type CourseService interface {
	ListCourses(ctx context.Context) ([]*models.Course, error)
	GetCourse(ctx context.Context, id int64) (*models.Course, error)
	CreateCourse(ctx context.Context, title string, credits int32, lecturer string) (*models.Course, error)
	UpdateCourse(ctx context.Context, id int64, title string, credits int32, lecturer string) (*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) (bool, error)
	ListCoursesByStudent(ctx context.Context, studentID int64) ([]*models.CourseGrade, error)
}

// CourseController handles the course service's REST endpoints
type CourseController struct {
	courseService CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// ListCourses handles GET /courses
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.courseService.ListCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCourseListResponse(courses))
}

// GetCourse handles GET /courses/:id
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Course ID must be a valid number"))
		return
	}

	course, err := c.courseService.GetCourse(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCourseResponse(course))
}

// ListCoursesByStudent handles GET /courses/by-user/:userId, the
// integration endpoint the gateway's combined view is built from. An
// unknown student yields an empty array, matching the join semantics.
func (c *CourseController) ListCoursesByStudent(ctx *gin.Context) {
	studentID, err := strconv.ParseInt(ctx.Param("userId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("User ID must be a valid number"))
		return
	}

	grades, err := c.courseService.ListCoursesByStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if grades == nil {
		grades = []*models.CourseGrade{}
	}
	ctx.JSON(http.StatusOK, grades)
}

// CreateCourse handles POST /courses
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid course data"))
		return
	}

	course, err := c.courseService.CreateCourse(ctx, req.Title, *req.Credits, req.Lecturer)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, course)
}

// UpdateCourse handles PUT /courses/:id
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Course ID must be a valid number"))
		return
	}

	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid course data"))
		return
	}

	course, err := c.courseService.UpdateCourse(ctx, id, req.Title, *req.Credits, req.Lecturer)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, course)
}

// DeleteCourse handles DELETE /courses/:id
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Course ID must be a valid number"))
		return
	}

	deleted, err := c.courseService.DeleteCourse(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if !deleted {
		ctx.JSON(http.StatusNotFound, dto.NewMessageResponse("Course not found"))
		return
	}

	ctx.Status(http.StatusNoContent)
}
