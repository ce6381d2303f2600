package api

import (
	"encoding/json"
	"strings"

	"github.com/rpupo63/portfolio-blog-backend/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	blogPostHandler blogPostHandler
	projectHandler  projectHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"title"`
	Details string `json:"details,omitempty" example:"Additional error details"`
}

// TagField accepts either a JSON array of strings or a single string and
// normalizes to the comma-joined form the store uses. A raw string is kept
// as-is, without whitespace or case normalization.
type TagField string

func (t *TagField) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = TagField(s)
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*t = TagField(strings.Join(list, ", "))
	return nil
}

// createBlogPostRequest is the body for POST /api/blog. Everything except
// title and content is optional and defaulted server-side.
type createBlogPostRequest struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Excerpt   string   `json:"excerpt"`
	Published bool     `json:"published"`
	Author    string   `json:"author"`
	Tags      TagField `json:"tags"`
	ReadTime  int      `json:"readTime"`
}

// updateBlogPostRequest is the body for PUT /api/blog/{blogID}. Nil fields
// were absent from the request and leave the stored value untouched.
type updateBlogPostRequest struct {
	Title     *string   `json:"title"`
	Content   *string   `json:"content"`
	Excerpt   *string   `json:"excerpt"`
	Published *bool     `json:"published"`
	Author    *string   `json:"author"`
	Tags      *TagField `json:"tags"`
	ReadTime  *int      `json:"readTime"`
}

// Pagination describes one page of a collection response.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// BlogPostFilters echoes back the filters applied to a list request.
type BlogPostFilters struct {
	Search string `json:"search"`
	Tag    string `json:"tag"`
}

// BlogPostCollection is the response envelope for GET /api/blog.
type BlogPostCollection struct {
	Blogs      []models.BlogPost `json:"blogs"`
	Pagination Pagination        `json:"pagination"`
	Filters    BlogPostFilters   `json:"filters"`
}

// ProjectCollection is the response envelope for GET /api/projects.
type ProjectCollection struct {
	Projects []models.Project `json:"projects"`
	Total    int              `json:"total,omitempty"`
}
