package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func newFakeAPI(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/blog", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"blogs": [
				{"id": "7b0d2cc7-7b52-4a3c-9f53-6a2f4d2ba001", "title": "Getting Started with Go",
				 "excerpt": "A gentle introduction...", "author": "Jane", "tags": "Go, Tutorial",
				 "readTime": 4, "createdAt": "2024-01-15T10:00:00Z", "updatedAt": "2024-01-15T10:00:00Z"}
			],
			"pagination": {"page": 1, "limit": 10, "total": 1, "totalPages": 1},
			"filters": {"search": "", "tag": ""}
		}`))
	})
	mux.HandleFunc("/api/blog/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/api/blog/")
		if id != "7b0d2cc7-7b52-4a3c-9f53-6a2f4d2ba001" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "7b0d2cc7-7b52-4a3c-9f53-6a2f4d2ba001", "title": "Getting Started with Go",
			"content": "Go is a statically typed language.", "author": "Jane", "tags": "Go, Tutorial",
			"readTime": 4, "createdAt": "2024-01-15T10:00:00Z", "updatedAt": "2024-01-15T10:00:00Z"}`))
	})
	mux.HandleFunc("/api/projects", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"projects": [{"id": "aa0d2cc7-7b52-4a3c-9f53-6a2f4d2ba002",
			"title": "URL Shortener", "description": "A tiny URL shortener",
			"githubLink": "https://github.com/example/shortener",
			"createdAt": "2024-01-15T10:00:00Z", "updatedAt": "2024-01-15T10:00:00Z"}], "total": 1}`))
	})

	return httptest.NewServer(mux)
}

func newPageRouter(baseURL string) http.Handler {
	r := chi.NewRouter()
	NewHandler(baseURL).Routes(r)
	return r
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestBlogIndexPage(t *testing.T) {
	apiServer := newFakeAPI(t)
	defer apiServer.Close()

	router := newPageRouter(apiServer.URL)
	w := get(t, router, "/blog")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Getting Started with Go") {
		t.Error("expected post title in page body")
	}
	if !strings.Contains(body, "picsum.photos") {
		t.Error("expected placeholder image in page body")
	}
}

func TestBlogDetailPage(t *testing.T) {
	apiServer := newFakeAPI(t)
	defer apiServer.Close()

	router := newPageRouter(apiServer.URL)
	w := get(t, router, "/blog/7b0d2cc7-7b52-4a3c-9f53-6a2f4d2ba001")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Go is a statically typed language.") {
		t.Error("expected post content in page body")
	}
}

func TestBlogDetailPageNotFound(t *testing.T) {
	apiServer := newFakeAPI(t)
	defer apiServer.Close()

	router := newPageRouter(apiServer.URL)
	w := get(t, router, "/blog/00000000-0000-0000-0000-000000000000")

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Post not found") {
		t.Error("expected not-found fallback in page body")
	}
}

func TestBlogIndexPageAPIDown(t *testing.T) {
	apiServer := newFakeAPI(t)
	apiServer.Close() // connection refused from here on

	router := newPageRouter(apiServer.URL)
	w := get(t, router, "/blog")

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Something went wrong") {
		t.Error("expected error fallback in page body")
	}
}

func TestProjectsPage(t *testing.T) {
	apiServer := newFakeAPI(t)
	defer apiServer.Close()

	router := newPageRouter(apiServer.URL)
	w := get(t, router, "/about/projects")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "URL Shortener") {
		t.Error("expected project title in page body")
	}
}

func TestContactFormIsClientSideOnly(t *testing.T) {
	router := newPageRouter("http://localhost:0")
	w := get(t, router, "/about/contacts")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "contact-form") {
		t.Error("expected the contact form in page body")
	}
	// The form has no action/backend target; submission is simulated in JS.
	if strings.Contains(body, `action="`) {
		t.Error("contact form should not post anywhere")
	}
}
