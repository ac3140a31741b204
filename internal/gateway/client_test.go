package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ecakir/edurecords/internal/pkg/apperrors"
)

func newTestClient(studentURL, courseURL string) *Client {
	return NewClient(&http.Client{}, studentURL, courseURL, zerolog.Nop(), nil)
}

func TestClient_FetchStudents(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"name":"Elif","email":"elif@example.com"}]`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, srv.URL)

	body, err := client.FetchStudents(context.Background())
	if err != nil {
		t.Fatalf("FetchStudents returned error: %v", err)
	}
	if gotPath != "/users" {
		t.Errorf("expected request to /users, got %s", gotPath)
	}
	if string(body) != `[{"id":1,"name":"Elif","email":"elif@example.com"}]` {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestClient_FetchStudent_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"User not found"}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, srv.URL)

	_, err := client.FetchStudent(context.Background(), "42")
	if !errors.Is(err, apperrors.ErrUpstreamNotFound) {
		t.Fatalf("expected ErrUpstreamNotFound, got %v", err)
	}
}

func TestClient_FetchCoursesByStudent_Path(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, srv.URL)

	if _, err := client.FetchCoursesByStudent(context.Background(), "7"); err != nil {
		t.Fatalf("FetchCoursesByStudent returned error: %v", err)
	}
	if gotPath != "/courses/by-user/7" {
		t.Errorf("expected request to /courses/by-user/7, got %s", gotPath)
	}
}

// A non-404 error status maps to the generic upstream error; the status
// code itself stays server-side.
func TestClient_UpstreamErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, srv.URL)

	_, err := client.FetchCourses(context.Background())
	if !errors.Is(err, apperrors.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
	if errors.Is(err, apperrors.ErrUpstreamNotFound) {
		t.Error("a 500 must not be classified as not-found")
	}
}

// One attempt per request: an unreachable upstream fails immediately.
func TestClient_UpstreamUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed before use

	client := newTestClient(srv.URL, srv.URL)

	_, err := client.FetchStudents(context.Background())
	if !errors.Is(err, apperrors.ErrUpstream) {
		t.Fatalf("expected ErrUpstream for unreachable service, got %v", err)
	}
}
