// Package gateway contains the HTTP client the API gateway uses to
// call the student and course services. One attempt per request, no
// retries; upstream failures surface as typed errors so the controller
// can keep internals out of the response.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/ecakir/edurecords/internal/metrics"
	"github.com/ecakir/edurecords/internal/pkg/apperrors"
)

// Upstream service names used for logging and metric labels.
const (
	serviceStudent = "student"
	serviceCourse  = "course"
)

// Client calls the owning services on behalf of the gateway.
type Client struct {
	httpClient     *http.Client
	studentBaseURL string
	courseBaseURL  string
	logger         zerolog.Logger
	metrics        metrics.Recorder
}

// NewClient creates a gateway client with explicit upstream base URLs.
func NewClient(httpClient *http.Client, studentBaseURL, courseBaseURL string, lgr zerolog.Logger, rec metrics.Recorder) *Client {
	if rec == nil {
		rec = metrics.NopRecorder{}
	}
	return &Client{
		httpClient:     httpClient,
		studentBaseURL: studentBaseURL,
		courseBaseURL:  courseBaseURL,
		logger:         lgr,
		metrics:        rec,
	}
}

// get performs a single upstream GET and returns the response body on
// 200. A 404 maps to ErrUpstreamNotFound, any other failure to
// ErrUpstream; the underlying detail stays in the server-side log.
func (c *Client) get(ctx context.Context, service, url string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build upstream request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.RecordUpstreamLatency(service, time.Since(start))
	if err != nil {
		c.metrics.RecordUpstreamCall(service, metrics.OutcomeUnreachable)
		c.logger.Error().
			Err(err).
			Str("service", service).
			Str("url", url).
			Msg("Upstream service unreachable")
		return nil, apperrors.ErrUpstream
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			c.metrics.RecordUpstreamCall(service, metrics.OutcomeError)
			c.logger.Error().
				Err(err).
				Str("service", service).
				Msg("Failed to read upstream response body")
			return nil, apperrors.ErrUpstream
		}
		c.metrics.RecordUpstreamCall(service, metrics.OutcomeSuccess)
		return json.RawMessage(body), nil

	case resp.StatusCode == http.StatusNotFound:
		c.metrics.RecordUpstreamCall(service, metrics.OutcomeNotFound)
		return nil, apperrors.ErrUpstreamNotFound

	default:
		c.metrics.RecordUpstreamCall(service, metrics.OutcomeError)
		c.logger.Error().
			Str("service", service).
			Str("url", url).
			Int("status", resp.StatusCode).
			Msg("Upstream service returned error status")
		return nil, apperrors.ErrUpstream
	}
}

// FetchStudents retrieves all students from the student service.
func (c *Client) FetchStudents(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, serviceStudent, c.studentBaseURL+"/users")
}

// FetchStudent retrieves one student by ID from the student service.
func (c *Client) FetchStudent(ctx context.Context, id string) (json.RawMessage, error) {
	return c.get(ctx, serviceStudent, fmt.Sprintf("%s/users/%s", c.studentBaseURL, id))
}

// FetchCourses retrieves all courses from the course service.
func (c *Client) FetchCourses(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, serviceCourse, c.courseBaseURL+"/courses")
}

// FetchCoursesByStudent retrieves the course/grade tuples for one
// student's enrollments from the course service.
func (c *Client) FetchCoursesByStudent(ctx context.Context, id string) (json.RawMessage, error) {
	return c.get(ctx, serviceCourse, fmt.Sprintf("%s/courses/by-user/%s", c.courseBaseURL, id))
}
