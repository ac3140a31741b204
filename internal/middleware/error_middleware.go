package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecakir/edurecords/internal/app/models/dto"
	"github.com/ecakir/edurecords/internal/pkg/apperrors"
	"github.com/ecakir/edurecords/internal/pkg/logger"
)

// HandleAPIError maps typed application errors to HTTP responses.
// NotFound and foreign key violations surface with their specific
// messages; anything unclassified degrades to a generic 500 with the
// details logged server-side only.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, dto.NewMessageResponse("User not found"))

	case errors.Is(err, apperrors.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, dto.NewMessageResponse("Course not found"))

	case errors.Is(err, apperrors.ErrEnrollmentNotFound):
		c.JSON(http.StatusNotFound, dto.NewMessageResponse("Enrollment not found"))

	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewMessageResponse("Resource not found"))

	case errors.Is(err, apperrors.ErrForeignKeyViolation):
		c.JSON(http.StatusBadRequest, dto.NewMessageResponse("Student or Course does not exist"))

	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewMessageResponse(err.Error()))

	default:
		logger.Error().
			Err(err).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error in request")
		c.JSON(http.StatusInternalServerError, dto.NewMessageResponse("Internal Server Error"))
	}
}
