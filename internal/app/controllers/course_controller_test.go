package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ecakir/edurecords/internal/app/models"
	"github.com/ecakir/edurecords/internal/pkg/apperrors"
)

// --- mocks ---

type mockCourseService struct {
	listCoursesFn          func(ctx context.Context) ([]*models.Course, error)
	getCourseFn            func(ctx context.Context, id int64) (*models.Course, error)
	createCourseFn         func(ctx context.Context, title string, credits int32, lecturer string) (*models.Course, error)
	updateCourseFn         func(ctx context.Context, id int64, title string, credits int32, lecturer string) (*models.Course, error)
	deleteCourseFn         func(ctx context.Context, id int64) (bool, error)
	listCoursesByStudentFn func(ctx context.Context, studentID int64) ([]*models.CourseGrade, error)
}

func (m *mockCourseService) ListCourses(ctx context.Context) ([]*models.Course, error) {
	return m.listCoursesFn(ctx)
}

func (m *mockCourseService) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	return m.getCourseFn(ctx, id)
}

func (m *mockCourseService) CreateCourse(ctx context.Context, title string, credits int32, lecturer string) (*models.Course, error) {
	return m.createCourseFn(ctx, title, credits, lecturer)
}

func (m *mockCourseService) UpdateCourse(ctx context.Context, id int64, title string, credits int32, lecturer string) (*models.Course, error) {
	return m.updateCourseFn(ctx, id, title, credits, lecturer)
}

func (m *mockCourseService) DeleteCourse(ctx context.Context, id int64) (bool, error) {
	return m.deleteCourseFn(ctx, id)
}

func (m *mockCourseService) ListCoursesByStudent(ctx context.Context, studentID int64) ([]*models.CourseGrade, error) {
	return m.listCoursesByStudentFn(ctx, studentID)
}

func newCourseRouter(svc *mockCourseService) *gin.Engine {
	router := newTestRouter()
	controller := NewCourseController(svc)
	courses := router.Group("/courses")
	courses.GET("", controller.ListCourses)
	courses.GET("/by-user/:userId", controller.ListCoursesByStudent)
	courses.GET("/:id", controller.GetCourse)
	courses.POST("", controller.CreateCourse)
	courses.PUT("/:id", controller.UpdateCourse)
	courses.DELETE("/:id", controller.DeleteCourse)
	return router
}

// --- tests ---

func TestCourseController_ListCourses_WireShape(t *testing.T) {
	svc := &mockCourseService{
		listCoursesFn: func(ctx context.Context) ([]*models.Course, error) {
			return []*models.Course{
				{ID: 1, Title: "Algorithms", Credits: 4, Lecturer: "Dr. A. Karatas"},
			}, nil
		},
	}

	w := performRequest(newCourseRouter(svc), http.MethodGet, "/courses", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var payload []map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("expected a bare JSON array, got: %s", w.Body.String())
	}
	for _, key := range []string{"id", "title", "credits", "lecturer"} {
		if _, ok := payload[0][key]; !ok {
			t.Errorf("expected key %q in course payload", key)
		}
	}
	if _, ok := payload[0]["created_at"]; ok {
		t.Error("created_at must not leak into the wire payload")
	}
}

// An unknown student yields an empty array, not a 404; existence
// checking belongs to the composite resolver.
func TestCourseController_ListCoursesByStudent_UnknownStudent(t *testing.T) {
	svc := &mockCourseService{
		listCoursesByStudentFn: func(ctx context.Context, studentID int64) ([]*models.CourseGrade, error) {
			return nil, nil
		},
	}

	w := performRequest(newCourseRouter(svc), http.MethodGet, "/courses/by-user/999", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body := w.Body.String(); body != "[]" {
		t.Errorf("expected empty JSON array, got %s", body)
	}
}

func TestCourseController_ListCoursesByStudent_GradeShape(t *testing.T) {
	gradeA := "A"
	svc := &mockCourseService{
		listCoursesByStudentFn: func(ctx context.Context, studentID int64) ([]*models.CourseGrade, error) {
			return []*models.CourseGrade{
				{Title: "Algorithms", Credits: 4, Grade: &gradeA},
				{Title: "Databases", Credits: 3, Grade: nil},
			}, nil
		},
	}

	w := performRequest(newCourseRouter(svc), http.MethodGet, "/courses/by-user/1", "")

	var payload []struct {
		Title   string  `json:"title"`
		Credits int32   `json:"credits"`
		Grade   *string `json:"grade"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode payload: %v", err)
	}
	if len(payload) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(payload))
	}
	if payload[0].Grade == nil || *payload[0].Grade != "A" {
		t.Errorf("expected grade A on first row, got %v", payload[0].Grade)
	}
	if payload[1].Grade != nil {
		t.Error("expected null grade on ungraded enrollment")
	}
}

func TestCourseController_CreateCourse_MissingCredits(t *testing.T) {
	svc := &mockCourseService{
		createCourseFn: func(ctx context.Context, title string, credits int32, lecturer string) (*models.Course, error) {
			t.Fatal("service should not be called when credits is missing")
			return nil, nil
		},
	}

	body := `{"title":"Algorithms","lecturer":"Dr. A. Karatas"}`
	w := performRequest(newCourseRouter(svc), http.MethodPost, "/courses", body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCourseController_CreateCourse_InvalidCredits(t *testing.T) {
	svc := &mockCourseService{
		createCourseFn: func(ctx context.Context, title string, credits int32, lecturer string) (*models.Course, error) {
			return nil, apperrors.NewValidationError("credits must be a positive integer")
		},
	}

	body := `{"title":"Algorithms","credits":-1,"lecturer":"Dr. A. Karatas"}`
	w := performRequest(newCourseRouter(svc), http.MethodPost, "/courses", body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if msg := decodeMessage(t, w); msg != "credits must be a positive integer" {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestCourseController_UpdateCourse(t *testing.T) {
	svc := &mockCourseService{
		updateCourseFn: func(ctx context.Context, id int64, title string, credits int32, lecturer string) (*models.Course, error) {
			return &models.Course{ID: id, Title: title, Credits: credits, Lecturer: lecturer}, nil
		},
	}

	body := `{"title":"Advanced Algorithms","credits":4,"lecturer":"Dr. A. Karatas"}`
	w := performRequest(newCourseRouter(svc), http.MethodPut, "/courses/1", body)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body: %s)", w.Code, w.Body.String())
	}
}

func TestCourseController_DeleteCourse_NotFound(t *testing.T) {
	svc := &mockCourseService{
		deleteCourseFn: func(ctx context.Context, id int64) (bool, error) {
			return false, nil
		},
	}

	w := performRequest(newCourseRouter(svc), http.MethodDelete, "/courses/77", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if msg := decodeMessage(t, w); msg != "Course not found" {
		t.Errorf("expected message %q, got %q", "Course not found", msg)
	}
}

func TestCourseController_DeleteCourse(t *testing.T) {
	svc := &mockCourseService{
		deleteCourseFn: func(ctx context.Context, id int64) (bool, error) {
			return true, nil
		},
	}

	w := performRequest(newCourseRouter(svc), http.MethodDelete, "/courses/1", "")

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
