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

// EnrollmentService is the service surface the enrollment controller depends on
type EnrollmentService interface {
	ListEnrollments(ctx context.Context) ([]*models.Enrollment, error)
	GetEnrollment(ctx context.Context, id int64) (*models.Enrollment, error)
	CreateEnrollment(ctx context.Context, studentID, courseID int64, grade *string) (*models.Enrollment, error)
	UpdateEnrollment(ctx context.Context, id int64, grade *string) (*models.Enrollment, error)
	DeleteEnrollment(ctx context.Context, id int64) error
}

// EnrollmentController handles the enrollment REST endpoints on the
// course service.
type EnrollmentController struct {
	enrollmentService EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// ListEnrollments handles GET /enrollments
func (c *EnrollmentController) ListEnrollments(ctx *gin.Context) {
	enrollments, err := c.enrollmentService.ListEnrollments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if enrollments == nil {
		enrollments = []*models.Enrollment{}
	}
	ctx.JSON(http.StatusOK, enrollments)
}

// GetEnrollment handles GET /enrollments/:id
func (c *EnrollmentController) GetEnrollment(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Enrollment ID must be a valid number"))
		return
	}

	enrollment, err := c.enrollmentService.GetEnrollment(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, enrollment)
}

// CreateEnrollment handles POST /enrollments. A reference to a
// nonexistent student or course responds 400 with the specific
// "Student or Course does not exist" message.
func (c *EnrollmentController) CreateEnrollment(ctx *gin.Context) {
	var req dto.CreateEnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid enrollment data"))
		return
	}

	enrollment, err := c.enrollmentService.CreateEnrollment(ctx, req.StudentID, req.CourseID, req.Grade)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, enrollment)
}

// UpdateEnrollment handles PUT /enrollments/:id (grade only)
func (c *EnrollmentController) UpdateEnrollment(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Enrollment ID must be a valid number"))
		return
	}

	var req dto.UpdateEnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid enrollment data"))
		return
	}

	enrollment, err := c.enrollmentService.UpdateEnrollment(ctx, id, req.Grade)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, enrollment)
}

// DeleteEnrollment handles DELETE /enrollments/:id
func (c *EnrollmentController) DeleteEnrollment(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Enrollment ID must be a valid number"))
		return
	}

	if err := c.enrollmentService.DeleteEnrollment(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
