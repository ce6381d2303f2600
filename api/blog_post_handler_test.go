package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-blog-backend/database"
	"github.com/rpupo63/portfolio-blog-backend/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}

	// A single connection keeps the in-memory database alive for the whole test.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("getting sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrating schema: %v", err)
	}

	return newRouter(database.New(db), withConfig(map[string]string{}), withStartupTime(time.Now()))
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling request body: %v", err)
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createPost(t *testing.T, router http.Handler, body map[string]any) models.BlogPost {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/blog", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("create returned %d: %s", w.Code, w.Body.String())
	}

	var post models.BlogPost
	if err := json.Unmarshal(w.Body.Bytes(), &post); err != nil {
		t.Fatalf("decoding created post: %v", err)
	}
	return post
}

func TestCreateBlogPostEndToEnd(t *testing.T) {
	router := newTestRouter(t)

	post := createPost(t, router, map[string]any{
		"title":   "Hello World Example",
		"content": "This is enough content.",
	})

	if post.Slug != "hello-world-example" {
		t.Errorf("slug = %q, want hello-world-example", post.Slug)
	}
	if post.Published {
		t.Error("published should default to false")
	}
	if post.Author != "Anonymous" {
		t.Errorf("author = %q, want Anonymous", post.Author)
	}
	if post.ReadTime < 1 {
		t.Errorf("readTime = %d, want >= 1", post.ReadTime)
	}
	if post.Excerpt != "This is enough content...." {
		t.Errorf("excerpt = %q", post.Excerpt)
	}
	if post.Views != 0 {
		t.Errorf("views = %d, want 0", post.Views)
	}
	if post.ID == uuid.Nil {
		t.Error("expected a generated id")
	}
}

func TestCreateBlogPostValidationBoundaries(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name       string
		title      string
		content    string
		wantStatus int
	}{
		{"title too short", "ab", "valid content here", http.StatusBadRequest},
		{"title at minimum", "abc", "valid content here", http.StatusCreated},
		{"title too long", string(bytes.Repeat([]byte("a"), 201)), "valid content here", http.StatusBadRequest},
		{"title at maximum", string(bytes.Repeat([]byte("a"), 200)), "valid content here", http.StatusCreated},
		{"content too short", "Valid Title", "123456789", http.StatusBadRequest},
		{"content at minimum", "Valid Title", "1234567890", http.StatusCreated},
		{"missing title", "", "valid content here", http.StatusBadRequest},
		{"missing content", "Valid Title", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, "/api/blog", map[string]any{
				"title":   tt.title,
				"content": tt.content,
			})
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d: %s", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestCreateBlogPostAcceptsTagsAsArrayOrString(t *testing.T) {
	router := newTestRouter(t)

	arrayPost := createPost(t, router, map[string]any{
		"title":   "Tags As Array",
		"content": "some content about tags",
		"tags":    []string{"Go", "Web Development"},
	})
	if arrayPost.Tags != "Go, Web Development" {
		t.Errorf("tags = %q, want %q", arrayPost.Tags, "Go, Web Development")
	}

	// A raw string is stored as-is, without normalization.
	stringPost := createPost(t, router, map[string]any{
		"title":   "Tags As String",
		"content": "some content about tags",
		"tags":    "Python,AI ",
	})
	if stringPost.Tags != "Python,AI " {
		t.Errorf("tags = %q, want %q", stringPost.Tags, "Python,AI ")
	}
}

func TestListBlogPostsFiltersByTag(t *testing.T) {
	router := newTestRouter(t)

	createPost(t, router, map[string]any{
		"title":   "Python Basics",
		"content": "an introduction to python",
		"tags":    []string{"Python", "Tutorial"},
	})
	createPost(t, router, map[string]any{
		"title":   "Go Concurrency",
		"content": "goroutines and channels explained",
		"tags":    []string{"Go"},
	})

	w := doJSON(t, router, http.MethodGet, "/api/blog?tag=python", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list returned %d", w.Code)
	}

	var response BlogPostCollection
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("decoding list response: %v", err)
	}

	if len(response.Blogs) != 1 {
		t.Fatalf("got %d posts, want 1", len(response.Blogs))
	}
	if response.Blogs[0].Title != "Python Basics" {
		t.Errorf("title = %q", response.Blogs[0].Title)
	}
	if response.Filters.Tag != "python" {
		t.Errorf("filters.tag = %q", response.Filters.Tag)
	}
	if response.Pagination.Total != 1 {
		t.Errorf("pagination.total = %d, want 1", response.Pagination.Total)
	}
}

func TestListBlogPostsSearchIsCaseInsensitive(t *testing.T) {
	router := newTestRouter(t)

	createPost(t, router, map[string]any{
		"title":   "Mastering TypeScript",
		"content": "static typing for javascript",
	})
	createPost(t, router, map[string]any{
		"title":   "Cooking With Rust",
		"content": "memory safety in the kitchen",
	})

	w := doJSON(t, router, http.MethodGet, "/api/blog?search=TYPESCRIPT", nil)
	var response BlogPostCollection
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("decoding list response: %v", err)
	}

	if len(response.Blogs) != 1 || response.Blogs[0].Title != "Mastering TypeScript" {
		t.Errorf("unexpected search result: %+v", response.Blogs)
	}
}

func TestListBlogPostsPagination(t *testing.T) {
	router := newTestRouter(t)

	for i := 0; i < 5; i++ {
		createPost(t, router, map[string]any{
			"title":   fmt.Sprintf("Post Number %d", i),
			"content": "pagination test content",
		})
	}

	w := doJSON(t, router, http.MethodGet, "/api/blog?page=2&limit=2", nil)
	var response BlogPostCollection
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("decoding list response: %v", err)
	}

	if len(response.Blogs) != 2 {
		t.Errorf("got %d posts on page 2, want 2", len(response.Blogs))
	}
	if response.Pagination.Total != 5 {
		t.Errorf("total = %d, want 5", response.Pagination.Total)
	}
	if response.Pagination.TotalPages != 3 {
		t.Errorf("totalPages = %d, want 3", response.Pagination.TotalPages)
	}
	if response.Pagination.Page != 2 || response.Pagination.Limit != 2 {
		t.Errorf("pagination echo = %+v", response.Pagination)
	}
}

func TestGetBlogPostNotFound(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/blog/"+uuid.NewString(), nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestUpdateBlogPostPartial(t *testing.T) {
	router := newTestRouter(t)

	post := createPost(t, router, map[string]any{
		"title":   "Original Title Here",
		"content": "the original content body",
	})

	w := doJSON(t, router, http.MethodPut, "/api/blog/"+post.ID.String(), map[string]any{
		"published": true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update returned %d: %s", w.Code, w.Body.String())
	}

	var updated models.BlogPost
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decoding updated post: %v", err)
	}

	if !updated.Published {
		t.Error("published should be true after update")
	}
	if updated.Title != post.Title {
		t.Errorf("title changed: %q -> %q", post.Title, updated.Title)
	}
	if updated.Content != post.Content {
		t.Errorf("content changed: %q -> %q", post.Content, updated.Content)
	}
}

func TestUpdateBlogPostValidatesSuppliedFields(t *testing.T) {
	router := newTestRouter(t)

	post := createPost(t, router, map[string]any{
		"title":   "A Perfectly Fine Title",
		"content": "perfectly fine content",
	})

	w := doJSON(t, router, http.MethodPut, "/api/blog/"+post.ID.String(), map[string]any{
		"title": "ab",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}

	w = doJSON(t, router, http.MethodPut, "/api/blog/"+post.ID.String(), map[string]any{
		"content": "too short",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestUpdateBlogPostNotFound(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPut, "/api/blog/"+uuid.NewString(), map[string]any{
		"published": true,
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestDeleteBlogPost(t *testing.T) {
	router := newTestRouter(t)

	post := createPost(t, router, map[string]any{
		"title":   "Short Lived Post",
		"content": "this post will be deleted",
	})

	w := doJSON(t, router, http.MethodDelete, "/api/blog/"+post.ID.String(), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete returned %d", w.Code)
	}

	var response map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("decoding delete response: %v", err)
	}
	if response["message"] == "" {
		t.Error("expected a confirmation message")
	}

	w = doJSON(t, router, http.MethodGet, "/api/blog/"+post.ID.String(), nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("get after delete = %d, want 404", w.Code)
	}
}

func TestDeleteBlogPostNotFound(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodDelete, "/api/blog/"+uuid.NewString(), nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404, not 500", w.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("health returned %d", w.Code)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("decoding health response: %v", err)
	}
	if response["status"] != "healthy" {
		t.Errorf("status = %v, want healthy", response["status"])
	}
}
