package api

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-blog-backend/database"
	"github.com/rpupo63/portfolio-blog-backend/errs"
	"github.com/rpupo63/portfolio-blog-backend/models"
	"github.com/rpupo63/portfolio-blog-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	defaultPage  = 1
	defaultLimit = 10

	minTitleLength   = 3
	maxTitleLength   = 200
	minContentLength = 10

	defaultAuthor = "Anonymous"
)

type blogPostHandler struct {
	responder    Responder
	logger       zerolog.Logger
	blogPostRepo *database.BlogPostRepo
	images       *services.ImageClient
}

func newBlogPostHandler(blogPostRepo *database.BlogPostRepo, images *services.ImageClient) blogPostHandler {
	logger := log.With().Str("handlerName", "blogPostHandler").Logger()

	return blogPostHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		blogPostRepo: blogPostRepo,
		images:       images,
	}
}

// listBlogPosts retrieves one page of blog posts with optional search and tag
// filters. There is no upper bound on limit.
// @Summary List blog posts
// @Description Lists, searches and paginates blog posts
// @Tags Blog Posts
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Param search query string false "Case-insensitive substring match on title, content or excerpt"
// @Param tag query string false "Case-insensitive substring match on the stored tags string"
// @Success 200 {object} BlogPostCollection "One page of blog posts"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching blog posts"
// @Router /api/blog [get]
func (h blogPostHandler) listBlogPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		page := parsePositiveInt(query.Get("page"), defaultPage)
		limit := parsePositiveInt(query.Get("limit"), defaultLimit)
		search := query.Get("search")
		tag := query.Get("tag")

		blogPosts, total, err := h.blogPostRepo.List(database.ListParams{
			Search: search,
			Tag:    tag,
			Offset: (page - 1) * limit,
			Limit:  limit,
		})
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list blog posts", "blog_posts", err))
			return
		}

		blogs := make([]models.BlogPost, 0, len(blogPosts))
		for _, blogPost := range blogPosts {
			blogs = append(blogs, *blogPost)
		}

		response := BlogPostCollection{
			Blogs: blogs,
			Pagination: Pagination{
				Page:       page,
				Limit:      limit,
				Total:      total,
				TotalPages: int(math.Ceil(float64(total) / float64(limit))),
			},
			Filters: BlogPostFilters{
				Search: search,
				Tag:    tag,
			},
		}

		h.responder.WriteJSON(w, response)
	}
}

// getBlogPost retrieves a specific blog post by ID
// @Summary Get blog post
// @Description Retrieves a single blog post by ID
// @Tags Blog Posts
// @Produce json
// @Param blogID path string true "Blog Post ID" format(uuid)
// @Success 200 {object} models.BlogPost "Blog post"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid blogID"
// @Failure 404 {object} ErrorResponse "Not Found - Blog post not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching blog post"
// @Router /api/blog/{blogID} [get]
func (h blogPostHandler) getBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogPost, ok := h.loadBlogPost(w, r)
		if !ok {
			return
		}

		h.responder.WriteJSON(w, blogPost)
	}
}

// createBlogPost creates a new blog post
// @Summary Create blog post
// @Description Creates a new blog post, deriving slug, excerpt and read time when omitted
// @Tags Blog Posts
// @Accept json
// @Produce json
// @Param blogPost body createBlogPostRequest true "Blog post data"
// @Success 201 {object} models.BlogPost "Created blog post"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid blog post data"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating blog post"
// @Router /api/blog [post]
func (h blogPostHandler) createBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var req createBlogPostRequest
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&req); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Title == "" || req.Content == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("title and content are required"))
			return
		}
		if len(req.Title) < minTitleLength || len(req.Title) > maxTitleLength {
			h.responder.WriteError(w, errs.NewBadRequestError("title must be between 3 and 200 characters"))
			return
		}
		if len(req.Content) < minContentLength {
			h.responder.WriteError(w, errs.NewBadRequestError("content must be at least 10 characters long"))
			return
		}

		blogPost := models.BlogPost{
			Title:     req.Title,
			Content:   req.Content,
			Excerpt:   req.Excerpt,
			Slug:      services.Slugify(req.Title),
			Published: req.Published,
			Author:    req.Author,
			Tags:      string(req.Tags),
			ReadTime:  req.ReadTime,
			Views:     0,
		}
		if blogPost.Excerpt == "" {
			blogPost.Excerpt = services.DefaultExcerpt(req.Content)
		}
		if blogPost.Author == "" {
			blogPost.Author = defaultAuthor
		}
		if blogPost.ReadTime == 0 {
			blogPost.ReadTime = services.EstimateReadTime(req.Content)
		}

		// Best-effort decorative lookup: a failed or unconfigured lookup
		// degrades to a placeholder and never fails the create.
		imageQuery := services.GenerateImageQuery(blogPost.Title, services.SplitTags(blogPost.Tags))
		image := h.images.Fetch(imageQuery)
		h.logger.Debug().
			Str("imageQuery", imageQuery).
			Str("imageURL", image.URL).
			Msg("Resolved cover image for new blog post")

		if err := h.blogPostRepo.Add(&blogPost); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create blog post", "blog_post", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, blogPost)
	}
}

// updateBlogPost updates an existing blog post
// @Summary Update blog post
// @Description Applies a partial update to an existing blog post; absent fields are left untouched
// @Tags Blog Posts
// @Accept json
// @Produce json
// @Param blogID path string true "Blog Post ID" format(uuid)
// @Param blogPost body updateBlogPostRequest true "Fields to update"
// @Success 200 {object} models.BlogPost "Updated blog post"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid blog post data"
// @Failure 404 {object} ErrorResponse "Not Found - Blog post not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error updating blog post"
// @Router /api/blog/{blogID} [put]
func (h blogPostHandler) updateBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogPost, ok := h.loadBlogPost(w, r)
		if !ok {
			return
		}

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var req updateBlogPostRequest
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&req); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		// Length bounds are only checked for fields present in the request.
		if req.Title != nil && *req.Title != "" &&
			(len(*req.Title) < minTitleLength || len(*req.Title) > maxTitleLength) {
			h.responder.WriteError(w, errs.NewBadRequestError("title must be between 3 and 200 characters"))
			return
		}
		if req.Content != nil && *req.Content != "" && len(*req.Content) < minContentLength {
			h.responder.WriteError(w, errs.NewBadRequestError("content must be at least 10 characters long"))
			return
		}

		// Fetch-then-merge: two concurrent updates interleave with
		// last-write-wins and no conflict detection.
		if req.Title != nil && *req.Title != "" {
			blogPost.Title = *req.Title
		}
		if req.Content != nil && *req.Content != "" {
			blogPost.Content = *req.Content
		}
		if req.Excerpt != nil {
			blogPost.Excerpt = *req.Excerpt
		}
		if req.Published != nil {
			blogPost.Published = *req.Published
		}
		if req.Author != nil {
			blogPost.Author = *req.Author
		}
		if req.Tags != nil {
			blogPost.Tags = string(*req.Tags)
		}
		if req.ReadTime != nil {
			blogPost.ReadTime = *req.ReadTime
		}

		if err := h.blogPostRepo.Update(blogPost); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update blog post", "blog_post", err))
			return
		}

		h.responder.WriteJSON(w, blogPost)
	}
}

// deleteBlogPost deletes a blog post by ID
// @Summary Delete blog post
// @Description Deletes a blog post from the database by ID
// @Tags Blog Posts
// @Produce json
// @Param blogID path string true "Blog Post ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid blogID"
// @Failure 404 {object} ErrorResponse "Not Found - Blog post not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error deleting blog post"
// @Router /api/blog/{blogID} [delete]
func (h blogPostHandler) deleteBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogPost, ok := h.loadBlogPost(w, r)
		if !ok {
			return
		}

		if err := h.blogPostRepo.Delete(blogPost.ID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete blog post", "blog_post", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"message": "Blog deleted successfully",
		})
	}
}

// loadBlogPost parses the blogID path parameter and fetches the matching post,
// writing the appropriate error response and returning ok=false when it can't.
func (h blogPostHandler) loadBlogPost(w http.ResponseWriter, r *http.Request) (*models.BlogPost, bool) {
	blogIDStr := chi.URLParam(r, "blogID")
	if blogIDStr == "" {
		h.responder.WriteError(w, errs.NewBadRequestError("missing blogID"))
		return nil, false
	}

	blogID, err := uuid.Parse(blogIDStr)
	if err != nil {
		h.responder.WriteError(w, errs.NewBadRequestError("invalid blogID"))
		return nil, false
	}

	blogPost, err := h.blogPostRepo.FindByID(blogID)
	if err != nil {
		h.responder.WriteError(w, wrapDatabaseError("find blog post", "blog_post", err))
		return nil, false
	}
	if blogPost == nil {
		h.responder.WriteError(w, errs.NewNotFoundError("blog post not found"))
		return nil, false
	}

	return blogPost, true
}

// parsePositiveInt parses a query parameter, falling back to the default for
// missing, malformed or non-positive values.
func parsePositiveInt(s string, defaultValue int) int {
	if s == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return defaultValue
	}
	return n
}
