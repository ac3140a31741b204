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

// StudentService is the service surface the student controller depends on
type StudentService interface {
	ListStudents(ctx context.Context) ([]*models.Student, error)
	GetStudent(ctx context.Context, id int64) (*models.Student, error)
	CreateStudent(ctx context.Context, name, email string) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
}

// StudentController handles the student service's REST endpoints
type StudentController struct {
	studentService StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// ListStudents handles GET /users
func (c *StudentController) ListStudents(ctx *gin.Context) {
	students, err := c.studentService.ListStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStudentListResponse(students))
}

// GetStudent handles GET /users/:id
func (c *StudentController) GetStudent(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("User ID must be a valid number"))
		return
	}

	student, err := c.studentService.GetStudent(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStudentResponse(student))
}

// CreateStudent handles POST /users
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid student data"))
		return
	}

	student, err := c.studentService.CreateStudent(ctx, req.Name, req.Email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, student)
}

// DeleteStudent handles DELETE /users/:id
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("User ID must be a valid number"))
		return
	}

	if err := c.studentService.DeleteStudent(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
