package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecakir/edurecords/internal/app/models/dto"
	"github.com/ecakir/edurecords/internal/pkg/apperrors"
)

// Fixed gateway failure messages. Upstream error internals are never
// forwarded to the caller.
const (
	msgStudentFetchFailed = "Failed to fetch student data"
	msgCourseFetchFailed  = "Failed to fetch course data"
	msgIntegrationFailed  = "Failed to process integrated student data"
)

// UpstreamClient is the fan-out surface the gateway controller depends on
type UpstreamClient interface {
	FetchStudents(ctx context.Context) (json.RawMessage, error)
	FetchStudent(ctx context.Context, id string) (json.RawMessage, error)
	FetchCourses(ctx context.Context) (json.RawMessage, error)
	FetchCoursesByStudent(ctx context.Context, id string) (json.RawMessage, error)
}

// GatewayController is the stateless front door: it shapes requests,
// fans out to the owning services and passes or merges responses. No
// business logic lives here.
type GatewayController struct {
	client UpstreamClient
}

// NewGatewayController creates a new GatewayController
func NewGatewayController(client UpstreamClient) *GatewayController {
	return &GatewayController{
		client: client,
	}
}

// GetUsers handles GET /gateway/users as a pass-through to the student
// service's list endpoint.
func (c *GatewayController) GetUsers(ctx *gin.Context) {
	body, err := c.client.FetchStudents(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewMessageResponse(msgStudentFetchFailed))
		return
	}

	ctx.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// GetCourses handles GET /gateway/courses as a pass-through to the
// course service's list endpoint.
func (c *GatewayController) GetCourses(ctx *gin.Context) {
	body, err := c.client.FetchCourses(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewMessageResponse(msgCourseFetchFailed))
		return
	}

	ctx.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// GetUserCourses handles GET /gateway/user-courses/:userId. It fetches
// the student from the student service, then the enrolled courses from
// the course service, and merges both into one payload. The two calls
// are issued sequentially; neither result feeds the other.
//
// A missing student surfaces as 404 rather than being collapsed into
// the generic 500, so callers can tell "no such student" apart from an
// integration failure.
func (c *GatewayController) GetUserCourses(ctx *gin.Context) {
	userID := ctx.Param("userId")

	student, err := c.client.FetchStudent(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUpstreamNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewMessageResponse("User not found"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewMessageResponse(msgIntegrationFailed))
		return
	}

	courses, err := c.client.FetchCoursesByStudent(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewMessageResponse(msgIntegrationFailed))
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentCoursesResponse{
		Student:         student,
		CoursesEnrolled: courses,
	})
}
